package simspace

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ID is the internal, dense identifier assigned to an object when a
// dataset is loaded.
type ID int32

// Label is an optional integer category attached to an object.
type Label int32

// NoLabel marks an object without a category label.
const NoLabel Label = -1

// LabelPrefix introduces an inline label token in a dataset record,
// e.g. "label:3".
const LabelPrefix = "label:"

// Object is the immutable unit of data every Space operates on: an
// identifier, an optional label and an opaque payload whose encoding
// is owned by the Space that created it.
//
// The payload length is fixed at construction and never changes.
type Object struct {
	id    ID
	label Label
	data  []byte
}

// NewObject builds an object from a payload. The payload is copied so
// the caller cannot mutate the object afterwards.
func NewObject(id ID, label Label, data []byte) *Object {
	buf := make([]byte, len(data))
	copy(buf, data)

	return &Object{id: id, label: label, data: buf}
}

// ID returns the object's internal identifier.
func (o *Object) ID() ID { return o.id }

// Label returns the object's label, or NoLabel.
func (o *Object) Label() Label { return o.label }

// Data returns the raw payload. The returned slice aliases the
// object's internal buffer and must not be modified.
func (o *Object) Data() []byte { return o.data }

// DataLength returns the payload length in bytes.
func (o *Object) DataLength() int { return len(o.data) }

func (o *Object) String() string {
	return fmt.Sprintf("Object(id=%d label=%d bytes=%d)", o.id, o.label, len(o.data))
}

// ExtractLabel scans a record line for a "label:<int>" token, removes
// it and returns the parsed label together with the remaining text.
// If no label token is present, NoLabel and the unchanged line are
// returned.
func ExtractLabel(line string) (Label, string, error) {
	i := strings.Index(line, LabelPrefix)
	if i < 0 || (i > 0 && !unicode.IsSpace(rune(line[i-1]))) {
		return NoLabel, line, nil
	}

	j := i + len(LabelPrefix)
	k := j
	for k < len(line) && !unicode.IsSpace(rune(line[k])) {
		k++
	}

	n, err := strconv.Atoi(line[j:k])
	if err != nil {
		return NoLabel, line, fmt.Errorf("invalid label token %q: %w", line[i:k], err)
	}

	rest := strings.TrimSpace(line[:i] + line[k:])

	return Label(n), rest, nil
}

// HasWhitespace reports whether s contains any whitespace rune.
func HasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
