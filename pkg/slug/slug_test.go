package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Breakfast", "breakfast"},
		{"Crème Brûlée", "creme-brulee"},
		{"  quick & easy  ", "quick-easy"},
		{"low_carb", "low_carb"},
		{"Завтрак", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, From(tt.in), "From(%q)", tt.in)
	}
}
