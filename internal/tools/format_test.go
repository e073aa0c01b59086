package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-200, "-$200.00"},
		{-0.001, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoney(tt.amount))
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 account", plural(1, "account"))
	assert.Equal(t, "0 accounts", plural(0, "account"))
	assert.Equal(t, "3 categories", plural(3, "category", "categories"))
	assert.Equal(t, "1 category", plural(1, "category", "categories"))
}
