package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "day only",
			input: "05",
			want:  "05",
		},
		{
			name:  "day and partial month",
			input: "051",
			want:  "05/1",
		},
		{
			name:  "day and month",
			input: "0505",
			want:  "05/05",
		},
		{
			name:  "full date",
			input: "05052026",
			want:  "05/05/2026",
		},
		{
			name:  "already formatted stays put",
			input: "05/05/2026",
			want:  "05/05/2026",
		},
		{
			name:  "letters stripped",
			input: "05a05b2026",
			want:  "05/05/2026",
		},
		{
			name:  "extra digits dropped",
			input: "050520269999",
			want:  "05/05/2026",
		},
		{
			name:  "partial year",
			input: "151220",
			want:  "15/12/20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateInput(tt.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$11.99", FormatAmount(11.99))
	assert.Equal(t, "$300.00", FormatAmount(300))
	assert.Equal(t, "$-13372.41", FormatAmount(-13372.41))
	assert.Equal(t, "$0.00", FormatAmount(0))
	assert.Equal(t, "$128.90", FormatAmount(128.9))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Spotify", TruncateString("Spotify", 10))
	assert.Equal(t, "Parcela...", TruncateString("Parcela Notebook", 10))
	assert.Equal(t, "Pa", TruncateString("Parcela", 2))
}
