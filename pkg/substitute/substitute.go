// Package substitute rewrites text by replacing many literal patterns in a
// single left-to-right pass.
//
// Patterns are kept sorted so the candidates for the bytes read so far are
// always a contiguous sub-range of the table; each new input byte narrows
// that range with a binary search. At every offset the longest pattern
// found along that narrowing wins.
package substitute

import (
	"sort"

	"github.com/projup/projup/pkg/errors"
)

// Pair is a literal pattern and the text that replaces it.
type Pair struct {
	Pattern     string `yaml:"pattern" toml:"pattern"`
	Replacement string `yaml:"replacement" toml:"replacement"`
}

// Table is an immutable, sorted set of pairs. It is safe for concurrent use.
type Table struct {
	pairs []Pair
}

// NewTable sorts pairs by pattern bytes. Empty and duplicate patterns are
// rejected.
func NewTable(pairs []Pair) (*Table, error) {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pattern < sorted[j].Pattern
	})

	for i, p := range sorted {
		if p.Pattern == "" {
			return nil, errors.New(errors.ErrInvalidInput, "substitution pattern cannot be empty")
		}
		if i > 0 && sorted[i-1].Pattern == p.Pattern {
			return nil, errors.Newf(errors.ErrDuplicatePattern, "pattern %q is substituted more than once", p.Pattern).
				WithDetail("pattern", p.Pattern)
		}
	}

	return &Table{pairs: sorted}, nil
}

// Len returns the number of pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

// Pairs returns the pairs in table order.
func (t *Table) Pairs() []Pair {
	if t == nil {
		return nil
	}
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Substitute is the function form of Table.Replace.
func Substitute(input []byte, table *Table) []byte {
	return table.Replace(input)
}

// ReplaceString rewrites s.
func (t *Table) ReplaceString(s string) string {
	return string(t.Replace([]byte(s)))
}

// Replace returns a rewritten copy of input. It never fails; bytes not
// covered by a pattern are copied through unchanged.
func (t *Table) Replace(input []byte) []byte {
	out := make([]byte, 0, len(input))
	if t.Len() == 0 {
		return append(out, input...)
	}

	for i := 0; i < len(input); {
		lo, hi := t.narrow(0, len(t.pairs), 0, input[i])
		if lo == hi {
			out = append(out, input[i])
			i++
			continue
		}

		// [lo, hi) holds the patterns starting with input[i:i+k]
		k := 1
		for i+k < len(input) {
			nlo, nhi := t.narrow(lo, hi, k, input[i+k])
			if nlo == nhi {
				break
			}
			lo, hi = nlo, nhi
			k++
		}

		if p, ok := t.exact(lo, hi, k); ok {
			out = append(out, p.Replacement...)
			i += k
			continue
		}

		out = append(out, input[i])
		i++
	}

	return out
}

// narrow returns the sub-range of [lo, hi) whose patterns have byte c at
// index k. Patterns in the range share their first k bytes, so those
// shorter than k+1 sort first and the rest are ordered by byte k.
func (t *Table) narrow(lo, hi, k int, c byte) (int, int) {
	below := func(p string) bool {
		return len(p) <= k || p[k] < c
	}

	start := lo + sort.Search(hi-lo, func(i int) bool {
		return !below(t.pairs[lo+i].Pattern)
	})
	end := start + sort.Search(hi-start, func(i int) bool {
		p := t.pairs[start+i].Pattern
		return p[k] > c
	})
	return start, end
}

func (t *Table) exact(lo, hi, k int) (Pair, bool) {
	for _, p := range t.pairs[lo:hi] {
		if len(p.Pattern) == k {
			return p, true
		}
	}
	return Pair{}, false
}
