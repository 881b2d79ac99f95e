package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", NormalizeText("a\r\nb\rc\n"))
	assert.Equal(t, "ÜA", NormalizeText("ÜA"))
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf-8", []byte("Şişli Mah."), "Şişli Mah."},
		{"utf-8 with bom", append([]byte{0xEF, 0xBB, 0xBF}, "Gül Sok."...), "Gül Sok."},
		{"windows-1254", []byte{0xDE, 'i', 0xFE, 'l', 'i', ' ', 0xDD, 'z', 'm', 'i', 'r'}, "Şişli İzmir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
