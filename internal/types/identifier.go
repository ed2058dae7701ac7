package types

import "strings"

// Identifier is an ordered sequence of opaque path segments naming a
// package, e.g. ["build-tools", "30.0.3"]. It is rendered ";"-joined
// and is the sole lookup key into the package index.
type Identifier []string

// ParseIdentifier splits an sdk-style path ("build-tools;30.0.3") into
// its segments.
func ParseIdentifier(value string) Identifier {
	return Identifier(strings.Split(strings.TrimSpace(value), ";"))
}

// MakeIdentifier builds an identifier from explicit segments.
func MakeIdentifier(segments ...string) Identifier {
	return Identifier(segments)
}

func (id Identifier) String() string {
	return strings.Join([]string(id), ";")
}

// Family returns the first segment, which names the package family.
func (id Identifier) Family() string {
	if len(id) == 0 {
		return ""
	}
	return id[0]
}

// Version returns the last segment when the identifier carries one
// beyond the family, otherwise the empty string.
func (id Identifier) Version() string {
	if len(id) < 2 {
		return ""
	}
	return id[len(id)-1]
}
