package shipment

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleShipment(t *testing.T) {
	res := Parse("07.10.2025 GÖKBERK ÇIRAKOĞLU FATURA NO:123 Adalet Mah. Sok No:5 0532 111 22 33 ÜA")
	require.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.Blocks)
	assert.Equal(t, 0, res.Dropped)

	rec := res.Records[0]
	assert.Contains(t, rec.Name, "GÖKBERK ÇIRAKOĞLU")
	assert.Equal(t, "0532 111 22 33", rec.Phone)
	assert.Contains(t, rec.Address, "Adalet Mah. Sok No:5")
	assert.Equal(t, PayerRecipient, rec.Payer)
}

func TestParse_TwoShipmentsInOrder(t *testing.T) {
	text := "07.10.2025 AHMET YILMAZ FATURA Bağdat Cad. No:10 Kadıköy 0532 111 22 33 ÜA\r\n" +
		"08.10.2025 Ayşe Demir İRSALİYE Gül Sok. No:3 Çankaya 0216 444 55 66 ug"

	res := Parse(text)
	require.Len(t, res.Records, 2)

	first, second := res.Records[0], res.Records[1]
	assert.Equal(t, Record{
		Name:       "AHMET YILMAZ",
		Phone:      "0532 111 22 33",
		Address:    "Bağdat Cad. No:10 Kadıköy",
		Payer:      PayerRecipient,
		FinalPayer: PayerRecipient,
	}, first)
	assert.Equal(t, Record{
		Name:       "Ayşe Demir",
		Phone:      "0216 444 55 66",
		Address:    "Gül Sok. No:3 Çankaya",
		Payer:      PayerSender,
		FinalPayer: PayerSender,
	}, second)
}

func TestParse_DropsBlocksWithoutName(t *testing.T) {
	text := strings.Join([]string{
		"Tarih Alıcı Adres Telefon",
		"07.10.2025 Ali Veli FATURA Gül Sok. No:3 0532 111 22 33 ug",
		"08.10.2025 SHOWROOM TESLİMAT KARGO",
	}, "\n")

	res := Parse(text)
	assert.Equal(t, 3, res.Blocks)
	assert.Equal(t, 2, res.Dropped)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Ali Veli", res.Records[0].Name)
	assert.Equal(t, PayerSender, res.Records[0].FinalPayer)
}

func TestParse_LowercaseSenderToken(t *testing.T) {
	res := Parse("07.10.2025 Ali Veli FATURA Gül Sok. No:3 ug")
	require.Len(t, res.Records, 1)
	assert.Equal(t, PayerSender, res.Records[0].Payer)
}

func TestParse_DecomposedPayer(t *testing.T) {
	res := Parse("07.10.2025 Ali Veli FATURA Gül Sok. No:3 U\u0308G")
	require.Len(t, res.Records, 1)
	assert.Equal(t, PayerSender, res.Records[0].Payer)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\r\n\r\n"} {
		res := Parse(text)
		assert.Empty(t, res.Records)
		assert.Zero(t, res.Blocks)
		assert.Zero(t, res.Dropped)
	}
}

func TestParse_Idempotent(t *testing.T) {
	text := "07.10.2025 Ali Veli FATURA Gül Sok. No:3 ug\n08.10.2025 Can Öz FATURA Moda Cad. No:1"
	assert.Equal(t, Parse(text), Parse(text))
}

func TestParser_LogsDroppedBlocks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewParser(WithLogger(logger))
	res := p.Parse("07.10.2025 SHOWROOM\n08.10.2025 Ali Veli FATURA Gül Sok. No:3")

	assert.Equal(t, 1, res.Dropped)
	assert.Contains(t, buf.String(), "shipment block has no recipient name")
	assert.Contains(t, buf.String(), "block=0")
}

func TestValidate(t *testing.T) {
	kept, dropped := Validate([]Record{
		{Name: "Ali"},
		{Name: "   "},
		{Address: "Gül Sok."},
		{Name: "Veli"},
	})
	assert.Equal(t, 2, dropped)
	require.Len(t, kept, 2)
	assert.Equal(t, "Ali", kept[0].Name)
	assert.Equal(t, "Veli", kept[1].Name)

	kept, dropped = Validate(nil)
	assert.Empty(t, kept)
	assert.Zero(t, dropped)
}
