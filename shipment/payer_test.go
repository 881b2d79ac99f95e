package shipment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePayer(t *testing.T) {
	tests := []struct {
		token string
		want  PayerCode
	}{
		{"ÜA", PayerRecipient},
		{"üa", PayerRecipient},
		{"UA", PayerRecipient},
		{"ua", PayerRecipient},
		{"ÜG", PayerSender},
		{"üg", PayerSender},
		{"UG", PayerSender},
		{"ug", PayerSender},
		{"", PayerUnknown},
		{"xyz", PayerUnknown},
		{"U\u0308A", PayerRecipient},
		{" ü g ", PayerSender},
		{"ÜAG", PayerUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePayer(tt.token))
		})
	}
}

func TestNormalizePayer_Absent(t *testing.T) {
	var token string
	assert.Equal(t, PayerUnknown, NormalizePayer(token))
}

func TestPayerCode_Strings(t *testing.T) {
	assert.Equal(t, "ÜA", PayerRecipient.String())
	assert.Equal(t, "ÜG", PayerSender.String())
	assert.Equal(t, "", PayerUnknown.String())
	assert.Equal(t, "Ücret Alıcı", PayerRecipient.Title())
	assert.Equal(t, "Ücret Gönderici", PayerSender.Title())
}

func TestDefaultFinalPayer(t *testing.T) {
	assert.Equal(t, PayerRecipient, DefaultFinalPayer(PayerUnknown))
	assert.Equal(t, PayerRecipient, DefaultFinalPayer(PayerRecipient))
	assert.Equal(t, PayerSender, DefaultFinalPayer(PayerSender))
}

func TestRecord_JSON(t *testing.T) {
	rec := Record{Name: "Ali Veli", Payer: PayerUnknown, FinalPayer: PayerSender}
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ali Veli","phone":"","address":"","payer":"","final_payer":"ÜG"}`, string(b))

	var back Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ali Veli","final_payer":"ug"}`), &back))
	assert.Equal(t, PayerSender, back.FinalPayer)
	assert.Equal(t, PayerUnknown, back.Payer)
}
