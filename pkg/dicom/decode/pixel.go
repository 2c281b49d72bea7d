package decode

import (
	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
	"github.com/dicomscan/dicomscan/pkg/dicom/vr"
)

// decodePixelData extracts (7FE0,0010), native or encapsulated. Dimensions
// come from Rows/Columns/PlanesPerFrame elements the decoder has already
// seen earlier in the same dataset; DICOM datasets place the Image Pixel
// Module ahead of Pixel Data, so by the time this runs those fields are
// populated whenever the producing modality followed that convention. When
// one is absent, Rows defaults to the sample count and Columns and Planes to 1.
func (d *decoder) decodePixelData(v vr.VR, length uint32) (element.Value, error) {
	rows, cols, planes := d.rows, d.cols, d.planes
	if cols == 0 {
		cols = 1
	}
	if planes == 0 {
		planes = 1
	}

	if v == vr.OB {
		var raw []byte
		var err error
		if length == undefinedLength {
			raw, err = d.decodeEncapsulatedPixelData()
		} else {
			raw, err = d.cur.bytes(int(length))
		}
		if err != nil {
			return element.Value{}, err
		}
		if rows == 0 {
			rows = len(raw)
		}
		return element.Value{Kind: element.KindImage8, Image8: element.Image8{
			Rows: rows, Cols: cols, Planes: planes, Data: append([]byte(nil), raw...),
		}}, nil
	}

	var raw []byte
	var err error
	if length == undefinedLength {
		raw, err = d.decodeEncapsulatedPixelData()
	} else {
		raw, err = d.cur.bytes(int(length))
	}
	if err != nil {
		return element.Value{}, err
	}
	if rows == 0 {
		rows = len(raw) / 2
	}
	return element.Value{Kind: element.KindImage16, Image16: element.Image16{
		Rows: rows, Cols: cols, Planes: planes, Data: decodeInt16sLE(raw),
	}}, nil
}

// decodeEncapsulatedPixelData reads a run of items, concatenating every
// item's payload in arrival order. Fragments are never decompressed; this
// module only extracts their bytes.
func (d *decoder) decodeEncapsulatedPixelData() ([]byte, error) {
	var out []byte
	for {
		t, itemLen, isSeqDelim, err := d.readItemHeader()
		if err != nil {
			return out, err
		}
		if isSeqDelim {
			return out, nil
		}
		if !t.Equals(tag.Item) {
			return out, dicomerr.ErrUnexpectedTag
		}
		frag, err := d.cur.bytes(int(itemLen))
		if err != nil {
			return out, err
		}
		out = append(out, frag...)
	}
}
