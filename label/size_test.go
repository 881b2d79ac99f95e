package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want Size
	}{
		{"A4", A4},
		{"a4", A4},
		{" A5 ", A5},
		{"100x150", Size10x15},
		{"100X150", Size10x15},
		{"letter", A5},
		{"", A5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSize(tt.in), tt.in)
	}
}

func TestSize_CSS(t *testing.T) {
	assert.Equal(t, "@page { size: A4; margin: 10mm; }", A4.CSS())
	assert.Equal(t, "@page { size: A5; margin: 8mm; }", A5.CSS())
	assert.Equal(t, "@page { size: 100mm 150mm; margin: 8mm; }", Size10x15.CSS())
	assert.Equal(t, A5.CSS(), Size("").CSS())
}

func TestSize_Dimensions(t *testing.T) {
	w, h := Size10x15.Dimensions()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 15.0, h)

	w, h = Size("").Dimensions()
	assert.Equal(t, 14.8, w)
	assert.Equal(t, 21.0, h)
}

func TestSheet_Scale(t *testing.T) {
	assert.Equal(t, DefaultBadgeScale, Sheet{}.Scale())
	assert.Equal(t, MinBadgeScale, Sheet{BadgeScale: 0.5}.Scale())
	assert.Equal(t, MaxBadgeScale, Sheet{BadgeScale: 3}.Scale())
	assert.Equal(t, 1.3, Sheet{BadgeScale: 1.3}.Scale())
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GÖKBERK ÇIRAKOĞLU", "GÖKBERK_ÇIRAKOĞLU"},
		{"  Ali   Veli  ", "Ali_Veli"},
		{"Ali ! Veli", "Ali_Veli"},
		{"a/b\\c:d", "abcd"},
		{"Ayşe-Nur_K", "Ayşe-Nur_K"},
		{"", "etiket"},
		{"!!!", "etiket"},
		{strings.Repeat("ş", 70), strings.Repeat("ş", 60)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), tt.in)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "etiket_Ali_Veli.pdf", Filename("Ali Veli"))
	assert.Equal(t, "etiket_etiket.pdf", Filename(""))
}
