package sheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

func workbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook(t *testing.T) {
	buf := workbook(t, [][]string{
		{"07.10.2025", "Ali Veli", "FATURA", "Gül Sok. No:3", "0532 111 22 33", "ÜA"},
		{},
		{"08.10.2025", "Ayşe Demir", "İRSALİYE", "Moda Cad. No:1", "0216 444 55 66", "ug"},
	})

	text, err := ReadWorkbook(buf)
	require.NoError(t, err)
	assert.Equal(t,
		"07.10.2025\tAli Veli\tFATURA\tGül Sok. No:3\t0532 111 22 33\tÜA\n"+
			"08.10.2025\tAyşe Demir\tİRSALİYE\tModa Cad. No:1\t0216 444 55 66\tug\n",
		text)

	res := shipment.Parse(text)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Ali Veli", res.Records[0].Name)
	assert.Equal(t, shipment.PayerSender, res.Records[1].Payer)
}

func TestReadWorkbook_DateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	short, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	custom := "dd/mm/yyyy"
	long, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)

	rows := []struct {
		date  time.Time
		style int
		cells []interface{}
	}{
		{time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), short, []interface{}{"Ali Veli", "FATURA", "Gül Sok. No:3", "0532 111 22 33", "ÜA", 2}},
		{time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), long, []interface{}{"Ayşe Demir", "İRSALİYE", "Moda Cad. No:1", "0216 444 55 66", "ug", 1}},
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, row.date))
		require.NoError(t, f.SetCellStyle("Sheet1", cell, cell, row.style))
		for c, v := range row.cells {
			cell, err := excelize.CoordinatesToCellName(c+2, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	text, err := ReadWorkbook(buf)
	require.NoError(t, err)
	assert.Equal(t,
		"07.10.2025\tAli Veli\tFATURA\tGül Sok. No:3\t0532 111 22 33\tÜA\t2\n"+
			"08.10.2025\tAyşe Demir\tİRSALİYE\tModa Cad. No:1\t0216 444 55 66\tug\t1\n",
		text)

	res := shipment.Parse(text)
	assert.Equal(t, 2, res.Blocks)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Ali Veli", res.Records[0].Name)
	assert.Equal(t, "0532 111 22 33", res.Records[0].Phone)
	assert.Equal(t, "Ayşe Demir", res.Records[1].Name)
	assert.Equal(t, shipment.PayerSender, res.Records[1].Payer)
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd.mm.yyyy", true},
		{"[$-41F]d mmmm yyyy", true},
		{"yyyy-mm-dd hh:mm", true},
		{"hh:mm:ss", false},
		{"0.00", false},
		{`#,##0 "adet"`, false},
		{`0 \d`, false},
		{"General", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormat(tt.code))
		})
	}
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook(strings.NewReader("07.10.2025 Ali Veli"))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	text, err := Read("liste.XLSX", workbook(t, [][]string{{"07.10.2025", "Ali Veli"}}))
	require.NoError(t, err)
	assert.Equal(t, "07.10.2025\tAli Veli\n", text)

	text, err = Read("liste.txt", strings.NewReader("07.10.2025 Ali Veli"))
	require.NoError(t, err)
	assert.Equal(t, "07.10.2025 Ali Veli", text)

	text, err = Read("liste.csv", bytes.NewReader([]byte{0xDE, 'i', 0xFE, 'l', 'i'}))
	require.NoError(t, err)
	assert.Equal(t, "Şişli", text)
}
