package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name  string
		lower string
		want  int
	}{
		{name: "amount before marker", lower: "3000 aed please", want: 3000},
		{name: "no marker", lower: "my budget is 3000", want: defaultBudget},
		{name: "marker alone", lower: "aed", want: defaultBudget},
		{name: "amount after marker ignored", lower: "aed 3000", want: defaultBudget},
		{name: "thousands separator", lower: "i have 3,000 aed for this trip", want: 3000},
		{name: "no space before marker", lower: "2500aed", want: 2500},
		{name: "digits scattered before marker", lower: "2 people, 4000 aed total", want: 24000},
		{name: "empty message", lower: "", want: defaultBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBudget(tt.lower))
		})
	}
}
