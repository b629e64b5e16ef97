// Package auxtag decodes and re-encodes the auxiliary tag values that revtag
// rewrites, and implements the get/remove/insert protocol on a record's
// aux fields.
//
// biogo/hts keeps aux fields in their BAM binary layout (SAMv1 §4.2):
// two tag bytes, one type byte, then the value. Array ('B') values carry an
// element-type byte and a little-endian uint32 count before the packed
// little-endian elements; string ('Z') values are the raw bytes without the
// on-disk NUL terminator. Working on that layout directly preserves the
// exact element width and signedness of every value; the round trip through
// interface{} in sam.NewAux cannot distinguish []byte from a C-typed array.
package auxtag

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/biogo/hts/sam"
)

// Kind discriminates the value variants the transform understands.
type Kind uint8

const (
	Invalid Kind = iota
	Uint8Array
	Uint16Array
	Uint32Array
	Int8Array
	Int16Array
	Int32Array
	FloatArray
	String
)

// Value is a decoded auxiliary tag value. Exactly one arm is populated,
// selected by Kind. Scalar (A c C s S i I f) and hex (H) aux fields never
// decode to a Value; they are outside the transform's reach.
type Value struct {
	Kind Kind

	U8  []uint8
	U16 []uint16
	U32 []uint32
	I8  []int8
	I16 []int16
	I32 []int32
	F32 []float32
	Str string
}

// Len returns the element count of an array value or the length in runes of
// a string value.
func (v Value) Len() int {
	switch v.Kind {
	case Uint8Array:
		return len(v.U8)
	case Uint16Array:
		return len(v.U16)
	case Uint32Array:
		return len(v.U32)
	case Int8Array:
		return len(v.I8)
	case Int16Array:
		return len(v.I16)
	case Int32Array:
		return len(v.I32)
	case FloatArray:
		return len(v.F32)
	case String:
		return len([]rune(v.Str))
	}
	return 0
}

func decode(a sam.Aux) (Value, bool) {
	if len(a) < 3 {
		return Value{}, false
	}
	switch a[2] {
	case 'Z':
		return Value{Kind: String, Str: string(a[3:])}, true
	case 'B':
		if len(a) < 8 {
			return Value{}, false
		}
		n := int(binary.LittleEndian.Uint32(a[4:8]))
		data := a[8:]
		switch elem := a[3]; elem {
		case 'C':
			if len(data) < n {
				return Value{}, false
			}
			v := make([]uint8, n)
			copy(v, data[:n])
			return Value{Kind: Uint8Array, U8: v}, true
		case 'S':
			if len(data) < 2*n {
				return Value{}, false
			}
			v := make([]uint16, n)
			for i := range v {
				v[i] = binary.LittleEndian.Uint16(data[2*i:])
			}
			return Value{Kind: Uint16Array, U16: v}, true
		case 'I':
			if len(data) < 4*n {
				return Value{}, false
			}
			v := make([]uint32, n)
			for i := range v {
				v[i] = binary.LittleEndian.Uint32(data[4*i:])
			}
			return Value{Kind: Uint32Array, U32: v}, true
		case 'c':
			if len(data) < n {
				return Value{}, false
			}
			v := make([]int8, n)
			for i := range v {
				v[i] = int8(data[i])
			}
			return Value{Kind: Int8Array, I8: v}, true
		case 's':
			if len(data) < 2*n {
				return Value{}, false
			}
			v := make([]int16, n)
			for i := range v {
				v[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
			}
			return Value{Kind: Int16Array, I16: v}, true
		case 'i':
			if len(data) < 4*n {
				return Value{}, false
			}
			v := make([]int32, n)
			for i := range v {
				v[i] = int32(binary.LittleEndian.Uint32(data[4*i:]))
			}
			return Value{Kind: Int32Array, I32: v}, true
		case 'f':
			if len(data) < 4*n {
				return Value{}, false
			}
			v := make([]float32, n)
			for i := range v {
				v[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
			}
			return Value{Kind: FloatArray, F32: v}, true
		}
	}
	return Value{}, false
}

func (v Value) aux(tag sam.Tag) (sam.Aux, error) {
	switch v.Kind {
	case String:
		a := make(sam.Aux, 0, 3+len(v.Str))
		a = append(a, tag[0], tag[1], 'Z')
		return append(a, v.Str...), nil
	case Uint8Array:
		a := arrayHeader(tag, 'C', len(v.U8), 1)
		return append(a, v.U8...), nil
	case Uint16Array:
		a := arrayHeader(tag, 'S', len(v.U16), 2)
		for _, e := range v.U16 {
			a = binary.LittleEndian.AppendUint16(a, e)
		}
		return a, nil
	case Uint32Array:
		a := arrayHeader(tag, 'I', len(v.U32), 4)
		for _, e := range v.U32 {
			a = binary.LittleEndian.AppendUint32(a, e)
		}
		return a, nil
	case Int8Array:
		a := arrayHeader(tag, 'c', len(v.I8), 1)
		for _, e := range v.I8 {
			a = append(a, byte(e))
		}
		return a, nil
	case Int16Array:
		a := arrayHeader(tag, 's', len(v.I16), 2)
		for _, e := range v.I16 {
			a = binary.LittleEndian.AppendUint16(a, uint16(e))
		}
		return a, nil
	case Int32Array:
		a := arrayHeader(tag, 'i', len(v.I32), 4)
		for _, e := range v.I32 {
			a = binary.LittleEndian.AppendUint32(a, uint32(e))
		}
		return a, nil
	case FloatArray:
		a := arrayHeader(tag, 'f', len(v.F32), 4)
		for _, e := range v.F32 {
			a = binary.LittleEndian.AppendUint32(a, math.Float32bits(e))
		}
		return a, nil
	}
	return nil, fmt.Errorf("auxtag: cannot encode value of kind %d", v.Kind)
}

func arrayHeader(tag sam.Tag, elem byte, n, width int) sam.Aux {
	a := make(sam.Aux, 0, 8+n*width)
	a = append(a, tag[0], tag[1], 'B', elem)
	return binary.LittleEndian.AppendUint32(a, uint32(n))
}

func find(rec *sam.Record, tag sam.Tag) int {
	for i, a := range rec.AuxFields {
		if len(a) >= 2 && a[0] == tag[0] && a[1] == tag[1] {
			return i
		}
	}
	return -1
}

// Get returns the decoded value stored on rec under tag. ok is false when
// the tag is absent or its aux type is not one the transform understands.
func Get(rec *sam.Record, tag sam.Tag) (Value, bool) {
	i := find(rec, tag)
	if i < 0 {
		return Value{}, false
	}
	return decode(rec.AuxFields[i])
}

// Remove deletes tag from rec. Removing an absent tag is an error; callers
// are expected to Remove only values they just observed present.
func Remove(rec *sam.Record, tag sam.Tag) error {
	i := find(rec, tag)
	if i < 0 {
		return fmt.Errorf("auxtag: tag %v not present", tag)
	}
	rec.AuxFields = append(rec.AuxFields[:i], rec.AuxFields[i+1:]...)
	return nil
}

// Insert appends tag to rec with value v. Inserting over an existing tag is
// an error; callers must Remove first. The re-encoded field lands at the end
// of the record's aux list.
func Insert(rec *sam.Record, tag sam.Tag, v Value) error {
	if find(rec, tag) >= 0 {
		return fmt.Errorf("auxtag: tag %v already present", tag)
	}
	a, err := v.aux(tag)
	if err != nil {
		return err
	}
	rec.AuxFields = append(rec.AuxFields, a)
	return nil
}
