package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid object untouched",
			input: `{"skills": ["java"], "remote": true}`,
			want:  `{"skills": ["java"], "remote": true}`,
		},
		{
			name:  "unquoted first key",
			input: `{skills": ["java"]}`,
			want:  `{"skills": ["java"]}`,
		},
		{
			name:  "unquoted key after comma",
			input: `{"skills": [], duration_limit": 30}`,
			want:  `{"skills": [], "duration_limit": 30}`,
		},
		{
			name:  "unquoted key after newline",
			input: "{\"traits\": [],\n  remote\": false}",
			want:  "{\"traits\": [],\n  \"remote\": false}",
		},
		{
			name:  "bare literals in arrays survive",
			input: `{"flags": [true, false]}`,
			want:  `{"flags": [true, false]}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestRepairJSONProducesParseableIntent(t *testing.T) {
	raw := `{skills": ["typing"], traits": ["clerical"], duration_limit": 30, remote": true}`

	var got intent
	require.NoError(t, json.Unmarshal([]byte(repairJSON(raw)), &got))

	assert.Equal(t, []string{"typing"}, got.Skills)
	assert.Equal(t, []string{"clerical"}, got.Traits)
	require.NotNil(t, got.DurationLimit)
	assert.Equal(t, 30, *got.DurationLimit)
	require.NotNil(t, got.Remote)
	assert.True(t, *got.Remote)
}
