// Package decode implements the recursive-descent DICOM element decoder:
// transfer-syntax sniffing, per-element framing (explicit and implicit VR),
// sequence recursion, and pixel-data extraction.
package decode

import (
	"encoding/binary"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
	"github.com/dicomscan/dicomscan/pkg/dicom/vr"
)

const undefinedLength = 0xFFFFFFFF

// DetectExplicitVR samples the two bytes at data[start+4:start+6] — where
// the VR would sit in an explicit-VR element — and reports whether they
// spell a recognized VR code. Implicit-VR datasets put a length field there
// instead, which essentially never collides with a real VR code.
func DetectExplicitVR(data []byte, start int) bool {
	if start+6 > len(data) {
		return false
	}
	candidate := vr.VR(data[start+4 : start+6])
	for _, known := range vr.All() {
		if candidate == known {
			return true
		}
	}
	return false
}

// decoder carries the mutable parse state for one top-level dataset and
// every sequence/item nested inside it.
type decoder struct {
	dict       *dictionary.Dictionary
	cur        *cursor
	explicitVR bool

	// Image Pixel Module fields seen so far, used to frame Pixel Data.
	rows, cols, planes int
}

// Dataset decodes every element in data[0:len(data)] as one flat dataset.
func Dataset(dict *dictionary.Dictionary, data []byte, explicitVR bool) (element.Dataset, error) {
	d := &decoder{dict: dict, cur: &cursor{data: data}, explicitVR: explicitVR}
	return d.decodeDataset(len(data))
}

// decodeDataset reads elements until the cursor reaches end or a delimiter
// item/sequence tag is consumed.
func (d *decoder) decodeDataset(end int) (element.Dataset, error) {
	var ds element.Dataset
	for d.cur.off < end {
		t, val, isDelimiter, err := d.decodeElement()
		if err != nil {
			return ds, err
		}
		if isDelimiter {
			break
		}
		ds.Elements = append(ds.Elements, element.Element{Tag: t, Value: val})
	}
	return ds, nil
}

// decodeElement reads one (tag, VR, length, value) unit. isDelimiter is true
// when the tag read was an item/sequence delimiter, which carries no value
// and ends the enclosing loop.
func (d *decoder) decodeElement() (tag.Tag, element.Value, bool, error) {
	startOff := d.cur.off
	group, err := d.cur.u16()
	if err != nil {
		return tag.Tag{}, element.Value{}, false, err
	}
	elem, err := d.cur.u16()
	if err != nil {
		return tag.Tag{}, element.Value{}, false, err
	}
	t := tag.Tag{Group: group, Element: elem}

	if t.Equals(tag.ItemDelimitationItem) || t.Equals(tag.SequenceDelimitationItem) {
		if _, err := d.cur.u32(); err != nil {
			return t, element.Value{}, false, err
		}
		return t, element.Value{}, true, nil
	}

	resolvedVR, length, err := d.readVRAndLength(t)
	if err != nil {
		return t, element.Value{}, false, dicomerr.AtOffset(err, startOff)
	}

	resolvedVR = applyPrivateOverride(t, resolvedVR)

	val, err := d.decodeElementValue(t, resolvedVR, length)
	if err != nil {
		return t, element.Value{}, false, dicomerr.ForTag(err, group, elem)
	}
	d.trackPixelDimensions(t, val)
	d.cur.padIfOdd()
	return t, val, false, nil
}

// trackPixelDimensions remembers Rows/Columns/PlanesPerFrame values as they
// stream by, so decodePixelData can frame the sample buffer once it arrives.
func (d *decoder) trackPixelDimensions(t tag.Tag, val element.Value) {
	switch {
	case t.Equals(tag.Rows) && len(val.UInt16s) > 0:
		d.rows = int(val.UInt16s[0])
	case t.Equals(tag.Columns) && len(val.UInt16s) > 0:
		d.cols = int(val.UInt16s[0])
	case t.Equals(tag.PlanesPerFrame) && len(val.UInt16s) > 0:
		d.planes = int(val.UInt16s[0])
	}
}

// readVRAndLength determines the VR and byte length for the element whose
// tag has just been consumed.
func (d *decoder) readVRAndLength(t tag.Tag) (vr.VR, uint32, error) {
	if d.explicitVR {
		raw, err := d.cur.bytes(2)
		if err != nil {
			return "", 0, err
		}
		v := vr.VR(raw)
		if v.IsLongForm() {
			if err := d.cur.skip(2); err != nil {
				return "", 0, err
			}
			length, err := d.cur.u32()
			return v, length, err
		}
		length, err := d.cur.u16()
		return v, uint32(length), err
	}

	entry, ok := d.dict.Lookup(t)
	v := vr.UN
	if ok {
		v = entry.VR
	}
	length, err := d.cur.u32()
	return v, length, err
}

// applyPrivateOverride enforces the private-tag VR rule after any VR has
// already been determined from the wire or the dictionary: odd groups above
// 0x0008 are never trusted at face value. Private-creator elements (the
// group's element in [0x0010,0x00FF)) declare the owning vendor as an LO
// string; every other element in such a group is opaque UN data.
func applyPrivateOverride(t tag.Tag, v vr.VR) vr.VR {
	if t.Group <= 0x0008 || t.Group%2 == 0 {
		return v
	}
	if t.IsPrivateCreator() {
		return vr.LO
	}
	return vr.UN
}

func (d *decoder) decodeElementValue(t tag.Tag, v vr.VR, length uint32) (element.Value, error) {
	switch {
	case t.Equals(tag.PixelData):
		return d.decodePixelData(v, length)
	case v.IsSequence():
		items, err := d.decodeSequence(length)
		if err != nil {
			return element.Value{}, err
		}
		return element.Value{Kind: element.KindSeq, Seq: items}, nil
	case length == undefinedLength:
		raw, err := d.readUndefinedLengthValue()
		if err != nil {
			return element.Value{}, err
		}
		return decodeValue(v, raw)
	default:
		raw, err := d.cur.bytes(int(length))
		if err != nil {
			return element.Value{}, err
		}
		return decodeValue(v, raw)
	}
}

// readUndefinedLengthValue handles a non-sequence, non-pixel-data element
// whose length field is the undefined-length sentinel: scan forward for the
// aligned sequence-delimitation word pair and treat everything before it as
// the payload.
func (d *decoder) readUndefinedLengthValue() ([]byte, error) {
	length, ok := scanForDelimiter(d.cur.data, d.cur.off)
	if !ok {
		return nil, dicomerr.ErrTruncatedInput
	}
	raw, err := d.cur.bytes(length)
	if err != nil {
		return nil, err
	}
	// Cursor now sits on the (FFFE,E0DD) delimiter tag itself: consume its
	// group, element, and zero length field.
	if err := d.cur.skip(8); err != nil {
		return nil, err
	}
	return raw, nil
}

// scanForDelimiter walks data two bytes at a time from start looking for the
// (FFFE,E0DD) word pair, returning the byte offset of its first word
// relative to start. Stray 0xFFFE words not immediately followed by 0xE0DD
// are payload, not framing, so the scan never special-cases them.
func scanForDelimiter(data []byte, start int) (int, bool) {
	for pos := start; pos+4 <= len(data); pos += 2 {
		if binary.LittleEndian.Uint16(data[pos:]) == 0xFFFE &&
			binary.LittleEndian.Uint16(data[pos+2:]) == 0xE0DD {
			return pos - start, true
		}
	}
	return 0, false
}
