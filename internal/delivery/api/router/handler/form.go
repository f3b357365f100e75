package handler

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// FormText is a form field that keeps the text exactly as typed. Renderers may send
// either a JSON string or a bare JSON number.
type FormText string

func (t *FormText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*t = FormText(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "form field must be a string or a number")
	}
	*t = FormText(n.String())

	return nil
}
