// Package engine rewrites auxiliary tags on a single alignment record so
// their values read in forward-strand orientation: array and string values
// under the rev set are order-reversed, sequence values under the revcomp
// set are reverse-complemented.
package engine

import (
	"fmt"

	"github.com/biogo/hts/sam"

	"github.com/clintval/revtag/internal/auxtag"
)

// Transform mutates rec in place. The rev tags are processed first, then the
// revcomp tags, each in caller order; a tag that is absent or whose aux type
// has no matching treatment is skipped silently. A tag listed in both sets
// compounds: the revcomp pass re-reads whatever value the rev pass left.
//
// Replacement is destructive (remove, then insert under the same tag); a
// failure of either step aborts the transform and leaves the record
// partially mutated.
func Transform(rec *sam.Record, rev, revcomp []sam.Tag) error {
	for _, tag := range rev {
		v, ok := auxtag.Get(rec, tag)
		if !ok {
			continue
		}
		if err := replace(rec, tag, reverse(v)); err != nil {
			return err
		}
	}
	for _, tag := range revcomp {
		v, ok := auxtag.Get(rec, tag)
		if !ok {
			continue
		}
		out, ok := reverseComplement(v)
		if !ok {
			continue
		}
		if err := replace(rec, tag, out); err != nil {
			return err
		}
	}
	return nil
}

func replace(rec *sam.Record, tag sam.Tag, v auxtag.Value) error {
	if err := auxtag.Remove(rec, tag); err != nil {
		return fmt.Errorf("engine: replace tag %v on %q: %w", tag, rec.Name, err)
	}
	if err := auxtag.Insert(rec, tag, v); err != nil {
		return fmt.Errorf("engine: replace tag %v on %q: %w", tag, rec.Name, err)
	}
	return nil
}

// reverse returns v with its elements in reverse order. Element type and
// width are preserved exactly; strings are reversed by rune, not by byte.
func reverse(v auxtag.Value) auxtag.Value {
	switch v.Kind {
	case auxtag.Uint8Array:
		v.U8 = reversed(v.U8)
	case auxtag.Uint16Array:
		v.U16 = reversed(v.U16)
	case auxtag.Uint32Array:
		v.U32 = reversed(v.U32)
	case auxtag.Int8Array:
		v.I8 = reversed(v.I8)
	case auxtag.Int16Array:
		v.I16 = reversed(v.I16)
	case auxtag.Int32Array:
		v.I32 = reversed(v.I32)
	case auxtag.FloatArray:
		v.F32 = reversed(v.F32)
	case auxtag.String:
		v.Str = reverseString(v.Str)
	}
	return v
}

// reverseComplement treats string and uint8-array values as nucleotide
// sequences and returns their reverse complement. Other variants do not
// match and report ok = false.
func reverseComplement(v auxtag.Value) (auxtag.Value, bool) {
	switch v.Kind {
	case auxtag.String:
		v.Str = string(revComp([]byte(v.Str)))
		return v, true
	case auxtag.Uint8Array:
		v.U8 = revComp(v.U8)
		return v, true
	}
	return auxtag.Value{}, false
}

func reversed[E any](s []E) []E {
	out := make([]E, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}
	return out
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
