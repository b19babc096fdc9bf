// Package gesture maps a set of selected glove fingers to the canonical
// gesture identifier and back.
//
// An identifier is "G_" followed by one binary digit per finger in the order
// Thumb, Index, Middle, Ring, Pinky. Selecting Index and Middle yields
// "G_01100"; the empty selection yields "G_00000".
package gesture

import (
	"encoding/json"
	"errors"
	"strings"
)

const idPrefix = "G_"

var ErrInvalidID = errors.New("invalid gesture id")

// Selection is a set of fingers stored as a bitmask (bit i = Fingers[i]).
type Selection uint8

// NewSelection builds a selection from fingers; repeats are harmless.
func NewSelection(fingers ...Finger) Selection {
	var s Selection
	for _, f := range fingers {
		s = s.With(f)
	}
	return s
}

func (s Selection) Has(f Finger) bool {
	return f.Valid() && s&(1<<uint(f)) != 0
}

func (s Selection) With(f Finger) Selection {
	if !f.Valid() {
		return s
	}
	return s | 1<<uint(f)
}

func (s Selection) Without(f Finger) Selection {
	if !f.Valid() {
		return s
	}
	return s &^ (1 << uint(f))
}

func (s Selection) Toggle(f Finger) Selection {
	if s.Has(f) {
		return s.Without(f)
	}
	return s.With(f)
}

func (s Selection) Len() int {
	n := 0
	for _, f := range Fingers {
		if s.Has(f) {
			n++
		}
	}
	return n
}

func (s Selection) IsEmpty() bool { return s.Len() == 0 }

// Fingers returns the selected fingers in encoding order.
func (s Selection) Fingers() []Finger {
	out := make([]Finger, 0, len(Fingers))
	for _, f := range Fingers {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Names returns the display names of the selected fingers in encoding order.
func (s Selection) Names() []string {
	fs := s.Fingers()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return names
}

// MarshalJSON encodes the selection as a list of finger slugs.
func (s Selection) MarshalJSON() ([]byte, error) {
	fs := s.Fingers()
	slugs := make([]string, len(fs))
	for i, f := range fs {
		slugs[i] = f.Slug()
	}
	return json.Marshal(slugs)
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	sel, err := ParseFingers(names)
	if err != nil {
		return err
	}
	*s = sel
	return nil
}

// ID is a canonical gesture identifier such as "G_01100".
type ID string

// Encode returns the identifier for sel. It is total: the empty selection
// encodes to "G_00000".
func Encode(sel Selection) ID {
	var b strings.Builder
	b.Grow(len(idPrefix) + len(Fingers))
	b.WriteString(idPrefix)
	for _, f := range Fingers {
		if sel.Has(f) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return ID(b.String())
}

// Decode is the inverse of Encode.
func Decode(id ID) (Selection, error) {
	bits, ok := strings.CutPrefix(string(id), idPrefix)
	if !ok || len(bits) != len(Fingers) {
		return 0, ErrInvalidID
	}
	var sel Selection
	for i, c := range bits {
		switch c {
		case '1':
			sel = sel.With(Fingers[i])
		case '0':
		default:
			return 0, ErrInvalidID
		}
	}
	return sel, nil
}

// Valid reports whether id decodes.
func (id ID) Valid() bool {
	_, err := Decode(id)
	return err == nil
}

// Fingers returns the display names of the fingers set in id, or nil if id
// is malformed.
func (id ID) Fingers() []string {
	sel, err := Decode(id)
	if err != nil {
		return nil
	}
	return sel.Names()
}

// Binary returns the bit pattern separated by spaces, e.g. "0 1 1 0 0".
func (id ID) Binary() string {
	bits := strings.TrimPrefix(string(id), idPrefix)
	return strings.Join(strings.Split(bits, ""), " ")
}

func (id ID) String() string { return string(id) }

// All returns the 32 identifiers in ascending selection order.
func All() []ID {
	ids := make([]ID, 0, 1<<len(Fingers))
	for s := 0; s < 1<<len(Fingers); s++ {
		ids = append(ids, Encode(Selection(s)))
	}
	return ids
}
