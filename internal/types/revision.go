package types

import "strconv"

// NoLetter marks a revision without a trailing letter component.
const NoLetter = -1

// Revision is an ordered tuple of non-negative integers with an
// optional trailing letter-as-ordinal component, parsed from a
// dotted/lettered version string such as "30.0.3" or "25b".
//
// Ordering is lexicographic over the zero-padded numeric tuple; at the
// same numeric value, the absence of a letter sorts before any letter,
// so "25" < "25b" < "26".
type Revision struct {
	Nums   []int
	Letter int
}

// String renders the revision in its canonical dotted form with the
// letter appended when present.
func (r Revision) String() string {
	out := ""
	for i, n := range r.Nums {
		if i > 0 {
			out += "."
		}
		out += strconv.Itoa(n)
	}
	if r.Letter != NoLetter {
		out += string(rune('a' + r.Letter))
	}
	return out
}

// Dotted renders only the numeric components, dot-joined, e.g. the
// "25.1.8937393" form used for ndk install directories.
func (r Revision) Dotted() string {
	out := ""
	for i, n := range r.Nums {
		if i > 0 {
			out += "."
		}
		out += strconv.Itoa(n)
	}
	return out
}

// IsZero reports whether the revision carries no parsed components,
// i.e. the lowest possible value.
func (r Revision) IsZero() bool {
	return len(r.Nums) == 0 && r.Letter == NoLetter
}
