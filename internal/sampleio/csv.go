package sampleio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/eegscope/dsp/signal"
)

// ReadCSV parses "time,value" rows. The first line is a header and is always
// ignored. Lines have no length limit. Blank rows, rows with fewer than two fields and rows whose first
// two fields are not finite numbers are skipped. Extra fields are ignored.
func ReadCSV(r io.Reader) ([]signal.Sample, error) {
	br := bufio.NewReader(r)

	var out []signal.Sample
	header := true
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if line != "" {
			if header {
				header = false
			} else if line = strings.TrimSpace(line); line != "" {
				if s, ok := parseRow(strings.Split(line, ",")); ok {
					out = append(out, s)
				}
			}
		}
		if err != nil {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNoUsableData
	}
	return out, nil
}

// WriteCSV writes the Header line followed by one "time,value" row per
// sample.
func WriteCSV(w io.Writer, samples []signal.Sample) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s,%s\n", Header[0], Header[1]); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range samples {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", formatTime(s.Time), formatValue(s.Value)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return bw.Flush()
}
