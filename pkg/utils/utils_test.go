package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMonth(t *testing.T) {
	tests := []struct {
		from     string
		expected string
	}{
		{from: "2023-01", expected: "2023-02"},
		{from: "2023-02", expected: "2023-03"},
		{from: "2023-07", expected: "2023-08"},
		{from: "2023-12", expected: "2024-01"},
		{from: "2024-01", expected: "2024-02"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			month, err := ParseYearMonth(tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, NextMonth(month).Format(YearMonthLayout))
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	month, err := ParseYearMonth("2023-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), month)

	for _, invalid := range []string{"2023-4", "2023/04", "April 2023", "2023-13", ""} {
		_, err := ParseYearMonth(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := map[string]string{
		"widget":          "Widget",
		"  WIDGET  ":      "Widget",
		"blue widget":     "Blue Widget",
		"o'neil":          "O'Neil",
		"3d printer":      "3D Printer",
		"super-GADGET x2": "Super-Gadget X2",
		"":                "",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, NormalizeLabel(input), input)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatMoney(1234.56))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$1,000,000.10", FormatMoney(1000000.1))
	assert.Equal(t, "-$12.50", FormatMoney(-12.5))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 6.67, RoundWithTwoDecimalPlace(20.0/3))
	assert.Equal(t, -80.0, RoundWithTwoDecimalPlace(-80.000000001))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, id, 12)
	assert.Regexp(t, `^[a-z0-9]+$`, id)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
