package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"sdkmanager/internal/types"
)

// revisionPattern accepts a dotted numeric prefix with an optional
// single trailing letter, e.g. "30.0.3", "25b", "9".
var revisionPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)*)\s*([a-z])?`)

// ParseRevision parses a dotted/lettered version string into a
// Revision. It fails only when no numeric component is recognizable;
// callers treat that as the lowest possible revision, never as fatal.
func ParseRevision(text string) (types.Revision, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	match := revisionPattern.FindStringSubmatch(trimmed)
	if match == nil || match[1] == "" {
		return LowestRevision(), errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed version: %q", text))
	}
	rev := types.Revision{Letter: types.NoLetter}
	for _, part := range strings.Split(match[1], ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			// Unreachable given the pattern; guard against overflow.
			return LowestRevision(), errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed version: %q", text)).
				WithCause(err)
		}
		rev.Nums = append(rev.Nums, n)
	}
	if match[2] != "" {
		rev.Letter = int(match[2][0] - 'a')
	}
	return rev, nil
}

// LowestRevision is the value given to entries whose version could not
// be parsed; it sorts below every parseable revision.
func LowestRevision() types.Revision {
	return types.Revision{Letter: types.NoLetter}
}

// CompareRevisions returns -1, 0, or 1. Numeric tuples are compared
// component-wise with the shorter tuple zero-padded; at equal numeric
// value a trailing letter sorts after no letter ("25" < "25b" < "26").
func CompareRevisions(a types.Revision, b types.Revision) int {
	width := len(a.Nums)
	if len(b.Nums) > width {
		width = len(b.Nums)
	}
	for i := 0; i < width; i++ {
		av, bv := 0, 0
		if i < len(a.Nums) {
			av = a.Nums[i]
		}
		if i < len(b.Nums) {
			bv = b.Nums[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	if a.Letter != b.Letter {
		if a.Letter < b.Letter {
			return -1
		}
		return 1
	}
	return 0
}

// TruncatedRevision renders at most the first three numeric components
// of a revision, dropping any trailing letter. This is the form written
// into install metadata.
func TruncatedRevision(rev types.Revision) []int {
	n := len(rev.Nums)
	if n > 3 {
		n = 3
	}
	out := make([]int, n)
	copy(out, rev.Nums[:n])
	return out
}
