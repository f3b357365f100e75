package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FormText
	}{
		{name: "string", input: `"12.50"`, want: "12.50"},
		{name: "text is kept as typed", input: `" 7abc"`, want: " 7abc"},
		{name: "integer", input: `3`, want: "3"},
		{name: "decimal", input: `150000.75`, want: "150000.75"},
		{name: "negative", input: `-1`, want: "-1"},
		{name: "null", input: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Price FormText `json:"price"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"price":`+tt.input+`}`), &got))
			assert.Equal(t, tt.want, got.Price)
		})
	}

	t.Run("objects are rejected", func(t *testing.T) {
		var got FormText
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
	})
}
