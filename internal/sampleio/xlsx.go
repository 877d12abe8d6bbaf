package sampleio

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/eegscope/dsp/signal"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Recording"

// ReadXLSX reads "time,value" rows from the first worksheet with the same
// rules as ReadCSV: the first row is a header, invalid rows are skipped.
func ReadXLSX(r io.Reader) ([]signal.Sample, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in workbook")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}

	var out []signal.Sample
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if s, ok := parseRow(row); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoUsableData
	}
	return out, nil
}

// WriteXLSX writes a workbook with one SheetName worksheet holding the Header
// row and one numeric row per sample.
func WriteXLSX(w io.Writer, samples []signal.Sample) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("name xlsx sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{Header[0], Header[1]}); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, s := range samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{s.Time, s.Value}); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
