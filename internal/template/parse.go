package template

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrMalformedTemplate = errors.New("malformed template")

var (
	fieldOpen  = []byte("{{")
	fieldClose = []byte("}}")
)

// Parse splits template bytes into text segments and field segments.
//
// It is strict: a "{{" must be closed by "}}" on the same line and must
// enclose a valid field name (letters, digits, underscore; no leading
// digit). Surrounding whitespace inside the braces is ignored, so
// "{{ NAME }}" and "{{NAME}}" are the same field.
func Parse(data []byte) (Document, error) {
	var doc Document
	var textBuf bytes.Buffer
	line := 1

	appendText := func() {
		if textBuf.Len() == 0 {
			return
		}
		doc.Segments = append(doc.Segments, TextSegment{Bytes: append([]byte(nil), textBuf.Bytes()...)})
		textBuf.Reset()
	}

	for i := 0; i < len(data); {
		if data[i] == '\n' {
			line++
		}
		if !bytes.HasPrefix(data[i:], fieldOpen) {
			textBuf.WriteByte(data[i])
			i++
			continue
		}

		rest := data[i+len(fieldOpen):]
		lineEnd := bytes.IndexByte(rest, '\n')
		if lineEnd < 0 {
			lineEnd = len(rest)
		}
		end := bytes.Index(rest[:lineEnd], fieldClose)
		if end < 0 {
			return Document{}, fmt.Errorf("%w: line %d: unclosed {{", ErrMalformedTemplate, line)
		}

		name := string(bytes.TrimSpace(rest[:end]))
		if !validFieldName(name) {
			return Document{}, fmt.Errorf("%w: line %d: invalid field name %q", ErrMalformedTemplate, line, name)
		}

		appendText()
		width := len(fieldOpen) + end + len(fieldClose)
		raw := append([]byte(nil), data[i:i+width]...)
		doc.Segments = append(doc.Segments, FieldSegment{Name: name, Raw: raw})
		doc.Fields = append(doc.Fields, FieldRef{SegmentIndex: len(doc.Segments) - 1})
		i += width
	}

	appendText()
	return doc, nil
}

func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
