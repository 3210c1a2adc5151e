package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1000", 100000},
		{"1234.56", 123456},
		{"0.5", 50},
		{".75", 75},
		{"-12.30", -1230},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseCentsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "12,50", "1.-5", ".", "-", "-.", "+5", "1.2a"} {
		_, err := ParseCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "1234.56", FormatCents(123456))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "-12.30", FormatCents(-1230))
}
