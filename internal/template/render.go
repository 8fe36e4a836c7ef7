package template

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrUnfilled = errors.New("unfilled field")

// Render substitutes every field with its value from values. A field
// without a value is an error: a rendered script must never ship with a
// placeholder still in it.
func Render(doc Document, values map[string]string) ([]byte, error) {
	var out bytes.Buffer

	for _, seg := range doc.Segments {
		switch s := seg.(type) {
		case TextSegment:
			out.Write(s.Bytes)
		case FieldSegment:
			value, ok := values[s.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnfilled, s.Name)
			}
			out.WriteString(value)
		default:
			return nil, fmt.Errorf("unknown segment type %T", seg)
		}
	}

	return out.Bytes(), nil
}
