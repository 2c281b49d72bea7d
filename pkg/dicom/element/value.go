// Package element defines the decoded value representation shared by every
// DICOM data element, independent of how it was framed on the wire.
package element

import "github.com/dicomscan/dicomscan/pkg/dicom/tag"

// Kind discriminates the variant held by a Value. A Value carries exactly
// one of the fields named after its Kind; the others are zero.
type Kind int

// Value variants.
const (
	KindEmpty Kind = iota
	KindInt16s
	KindUInt16s
	KindInt32s
	KindUInt32s
	KindFloat32s
	KindFloat64s
	KindString
	KindBytes
	KindSeq
	KindImage16
	KindImage8
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindInt16s:
		return "Int16s"
	case KindUInt16s:
		return "UInt16s"
	case KindInt32s:
		return "Int32s"
	case KindUInt32s:
		return "UInt32s"
	case KindFloat32s:
		return "Float32s"
	case KindFloat64s:
		return "Float64s"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindSeq:
		return "Seq"
	case KindImage16:
		return "Image16"
	case KindImage8:
		return "Image8"
	default:
		return "Unknown"
	}
}

// Image16 is a rows x cols x planes volume of signed 16-bit samples.
type Image16 struct {
	Rows, Cols, Planes int
	Data               []int16
}

// Image8 is a rows x cols x planes volume of unsigned 8-bit samples.
type Image8 struct {
	Rows, Cols, Planes int
	Data               []uint8
}

// Value is a single sum type covering every shape a decoded element value
// can take. It is a struct with a Kind discriminant rather than an
// interface hierarchy so the decoder can build values without a per-VR
// concrete type and so callers get typed, fail-closed accessors instead of
// type assertions.
type Value struct {
	Kind     Kind
	Int16s   []int16
	UInt16s  []uint16
	Int32s   []int32
	UInt32s  []uint32
	Float32s []float32
	Float64s []float64
	Str      string
	Bytes    []byte
	Seq      []Dataset
	Image16  Image16
	Image8   Image8
}

// Empty is the zero-length value emitted for zero-length or unspecified elements.
func Empty() Value { return Value{Kind: KindEmpty} }

// Element pairs a tag with its decoded value, used for the unrecognized-tag
// side table and for sequence items.
type Element struct {
	Tag   tag.Tag
	Value Value
}

// Dataset is an ordered list of elements, the unit a sequence item decodes
// to. Top-level files decode to a Dataset too, before the Slice Assembler
// folds it into keyword form.
type Dataset struct {
	Elements []Element
}

// Get returns the value for the first element carrying t, if present.
func (d Dataset) Get(t tag.Tag) (Value, bool) {
	for _, e := range d.Elements {
		if e.Tag.Equals(t) {
			return e.Value, true
		}
	}
	return Value{}, false
}
