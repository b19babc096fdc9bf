package gesture

import (
	"errors"
	"strings"
)

// Finger is one of the five glove sensor slots. The numeric value is the
// finger's position in the encoding order.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
)

// Fingers lists every finger in encoding order.
var Fingers = [...]Finger{Thumb, Index, Middle, Ring, Pinky}

var fingerNames = [...]string{"Thumb", "Index", "Middle", "Ring", "Pinky"}

var ErrUnknownFinger = errors.New("unknown finger")

// String returns the display name, e.g. "Middle".
func (f Finger) String() string {
	if !f.Valid() {
		return "Finger(?)"
	}
	return fingerNames[f]
}

// Slug returns the lower-case identifier used in URLs and JSON, e.g. "middle".
func (f Finger) Slug() string {
	return strings.ToLower(f.String())
}

func (f Finger) Valid() bool {
	return f >= Thumb && f <= Pinky
}

// ParseFinger accepts a display name or slug, case-insensitively.
func ParseFinger(s string) (Finger, error) {
	s = strings.TrimSpace(s)
	for _, f := range Fingers {
		if strings.EqualFold(s, fingerNames[f]) {
			return f, nil
		}
	}
	return 0, ErrUnknownFinger
}

// ParseFingers parses every name in names. Duplicates collapse.
func ParseFingers(names []string) (Selection, error) {
	var sel Selection
	for _, n := range names {
		f, err := ParseFinger(n)
		if err != nil {
			return 0, err
		}
		sel = sel.With(f)
	}
	return sel, nil
}
