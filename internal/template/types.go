package template

// Document is a parsed template: literal text interleaved with fields.
type Document struct {
	Segments []Segment
	Fields   []FieldRef
}

type Segment interface{ isSegment() }

type TextSegment struct{ Bytes []byte }

func (TextSegment) isSegment() {}

// FieldSegment is a single {{NAME}} placeholder.
type FieldSegment struct {
	Name string
	Raw  []byte // original bytes, braces included
}

func (FieldSegment) isSegment() {}

// FieldRef points to a field segment inside Document.Segments.
//
// We keep an index list for convenient iteration and stable ordering.
type FieldRef struct {
	SegmentIndex int
}

// FieldNames returns the distinct field names in first-seen order.
func (d Document) FieldNames() []string {
	seen := make(map[string]bool, len(d.Fields))
	names := make([]string, 0, len(d.Fields))
	for _, ref := range d.Fields {
		seg, ok := d.Segments[ref.SegmentIndex].(FieldSegment)
		if !ok {
			continue
		}
		if seen[seg.Name] {
			continue
		}
		seen[seg.Name] = true
		names = append(names, seg.Name)
	}
	return names
}
