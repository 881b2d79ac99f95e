// Package sheet turns uploaded files into the plain text the shipment
// parser reads.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

// ErrNoSheets is returned for a workbook without worksheets.
var ErrNoSheets = errors.New("sheet: workbook has no sheets")

// Read returns the text content of an uploaded file. Excel workbooks are
// flattened with [ReadWorkbook]; anything else is treated as text in UTF-8
// or Windows-1254.
func Read(filename string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("sheet: reading %s: %w", filename, err)
	}
	return shipment.DecodeText(data)
}

// ReadWorkbook flattens the first worksheet: cells are joined with tabs and
// rows with newlines, which is what a copy from the spreadsheet gives.
// Date cells are written as DD.MM.YYYY whatever their number format, so they
// anchor shipments the same way pasted dates do. Blank rows are skipped.
func ReadWorkbook(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("sheet: opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	name := sheets[0]
	rows, err := f.GetRows(name)
	if err != nil {
		return "", fmt.Errorf("sheet: reading rows of %q: %w", name, err)
	}
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", fmt.Errorf("sheet: reading rows of %q: %w", name, err)
	}
	dates := newDateCells(f, name)

	var b strings.Builder
	for i, row := range rows {
		for j := range row {
			if i >= len(raw) || j >= len(raw[i]) {
				continue
			}
			if d, ok := dates.format(i, j, raw[i][j]); ok {
				row[j] = d
			}
		}
		line := strings.Join(row, "\t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// dateCells recognises cells whose number format shows a date.
type dateCells struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	d := &dateCells{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// format returns the DD.MM.YYYY form of the cell at row i, column j when it
// holds a date serial under a date format.
func (d *dateCells) format(i, j int, raw string) (string, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	cell, err := excelize.CoordinatesToCellName(j+1, i+1)
	if err != nil {
		return "", false
	}
	style, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil || !d.isDateStyle(style) {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return "", false
	}
	return t.Format("02.01.2006"), true
}

func (d *dateCells) isDateStyle(idx int) bool {
	if v, ok := d.styles[idx]; ok {
		return v
	}
	v := false
	if st, err := d.f.GetStyle(idx); err == nil && st != nil {
		if st.CustomNumFmt != nil {
			v = isDateFormat(*st.CustomNumFmt)
		} else {
			v = builtinDateFormats[st.NumFmt]
		}
	}
	d.styles[idx] = v
	return v
}

// Built-in number formats that show a calendar date. Time-only formats are
// left out.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormat reports whether a custom number format shows a day or a year.
// Quoted literals, bracketed sections and escaped characters do not count.
func isDateFormat(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			inBracket = c != ']'
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		case c == 'd' || c == 'D' || c == 'y' || c == 'Y':
			return true
		}
	}
	return false
}
