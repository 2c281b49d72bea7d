// Package slice assembles one decoded dataset into a keyword-indexed Slice
// and exposes the typed accessors the scan assembler needs.
package slice

import (
	"sort"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

// Slice holds one dataset's decoded elements, indexed both by dictionary
// keyword (for typed accessors) and by raw tag (for anything the dictionary
// does not name).
type Slice struct {
	byKeyword map[string]element.Value
	byTag     map[uint32]element.Value
}

// FromDataset builds a Slice from a decoded dataset, failing on any
// duplicate keyword or duplicate raw tag within the dataset.
func FromDataset(dict *dictionary.Dictionary, ds element.Dataset) (Slice, error) {
	s := Slice{
		byKeyword: make(map[string]element.Value, len(ds.Elements)),
		byTag:     make(map[uint32]element.Value, len(ds.Elements)),
	}
	for _, e := range ds.Elements {
		key := e.Tag.Key()
		if _, dup := s.byTag[key]; dup {
			return s, dicomerr.DuplicateKey(e.Tag.String())
		}
		s.byTag[key] = e.Value

		if entry, ok := dict.Lookup(e.Tag); ok && entry.Keyword != "" {
			if _, dup := s.byKeyword[entry.Keyword]; dup {
				return s, dicomerr.DuplicateKey(entry.Keyword)
			}
			s.byKeyword[entry.Keyword] = e.Value
		}
	}
	return s, nil
}

// Keyword returns the value stored under a dictionary keyword, if present.
func (s Slice) Keyword(name string) (element.Value, bool) {
	v, ok := s.byKeyword[name]
	return v, ok
}

// Tag returns the value stored under a raw tag, if present.
func (s Slice) Tag(t tag.Tag) (element.Value, bool) {
	v, ok := s.byTag[t.Key()]
	return v, ok
}

// Elements returns the slice's raw tags and values in ascending packed-key
// order, a deterministic projection used by the serializer. Order is by key,
// not original wire order: the duplicate-tag invariant already guarantees
// there is exactly one value per tag, so a key-sorted projection and the
// original decode reconstruct the same logical Slice.
func (s Slice) Elements() []element.Element {
	keys := make([]uint32, 0, len(s.byTag))
	for k := range s.byTag {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]element.Element, 0, len(keys))
	for _, k := range keys {
		t := tag.Tag{Group: uint16(k), Element: uint16(k >> 16)}
		out = append(out, element.Element{Tag: t, Value: s.byTag[k]})
	}
	return out
}

// WithoutTag returns a copy of s with t removed from both indices, used by
// the scan assembler to strip per-slice pixel data once it has been
// concatenated into the combined volume.
func (s Slice) WithoutTag(t tag.Tag) Slice {
	out := Slice{
		byKeyword: make(map[string]element.Value, len(s.byKeyword)),
		byTag:     make(map[uint32]element.Value, len(s.byTag)),
	}
	for k, v := range s.byKeyword {
		out.byKeyword[k] = v
	}
	for k, v := range s.byTag {
		if k == t.Key() {
			continue
		}
		out.byTag[k] = v
	}
	if entry, ok := dictionary.Default().Lookup(t); ok {
		delete(out.byKeyword, entry.Keyword)
	}
	return out
}

// Position returns the third (z) component of ImagePositionPatient.
func (s Slice) Position() (float64, error) {
	v, ok := s.Keyword("ImagePositionPatient")
	if !ok || v.Kind != element.KindFloat64s || len(v.Float64s) < 3 {
		return 0, dicomerr.ForField(dicomerr.ErrValueTypeMismatch, 0x0020, 0x0032, "ImagePositionPatient")
	}
	return v.Float64s[2], nil
}

// PixelData returns the Image16/Image8 pixel value.
func (s Slice) PixelData() (element.Value, error) {
	v, ok := s.Tag(tag.PixelData)
	if !ok {
		return element.Value{}, dicomerr.ForField(dicomerr.ErrValueTypeMismatch, 0x7FE0, 0x0010, "PixelData")
	}
	return v, nil
}

// Slope returns RescaleSlope, defaulting to 1.0 when absent.
func (s Slice) Slope() (float64, error) {
	v, ok := s.Keyword("RescaleSlope")
	if !ok {
		return 1.0, nil
	}
	if v.Kind != element.KindFloat64s || len(v.Float64s) == 0 {
		return 0, dicomerr.ForField(dicomerr.ErrValueTypeMismatch, 0x0028, 0x1053, "RescaleSlope")
	}
	return v.Float64s[0], nil
}

// Intercept returns RescaleIntercept, defaulting to 0 when absent. The
// source ecosystem has shipped RescaleIntercept both as a decimal string
// (the DS VR the standard specifies, decoded here as Float64s) and, on
// nonconforming writers, as an unsigned integer; both are accepted.
func (s Slice) Intercept() (int16, error) {
	v, ok := s.Keyword("RescaleIntercept")
	if !ok {
		return 0, nil
	}
	switch v.Kind {
	case element.KindFloat64s:
		if len(v.Float64s) == 0 {
			break
		}
		return int16(v.Float64s[0]), nil
	case element.KindUInt32s:
		if len(v.UInt32s) == 0 {
			break
		}
		return int16(v.UInt32s[0]), nil
	}
	return 0, dicomerr.ForField(dicomerr.ErrValueTypeMismatch, 0x0028, 0x1052, "RescaleIntercept")
}

// Thickness returns SliceThickness, or 0 when absent.
func (s Slice) Thickness() float64 {
	v, ok := s.Keyword("SliceThickness")
	if !ok || v.Kind != element.KindFloat64s || len(v.Float64s) == 0 {
		return 0
	}
	return v.Float64s[0]
}
