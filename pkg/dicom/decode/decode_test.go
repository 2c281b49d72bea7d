package decode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// shortElem builds an explicit-VR element using the 2-byte length form.
func shortElem(group, elem uint16, vrCode string, value []byte) []byte {
	out := append(u16le(group), u16le(elem)...)
	out = append(out, vrCode...)
	out = append(out, u16le(uint16(len(value)))...)
	out = append(out, value...)
	if len(value)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// longElem builds an explicit-VR element using the 4-byte length form
// (2 reserved bytes then a u32 length), for OB/OW/OF/SQ/UN/UT.
func longElem(group, elem uint16, vrCode string, length uint32, value []byte) []byte {
	out := append(u16le(group), u16le(elem)...)
	out = append(out, vrCode...)
	out = append(out, 0, 0)
	out = append(out, u32le(length)...)
	out = append(out, value...)
	return out
}

func padEven(s string) []byte {
	b := []byte(s)
	if len(b)%2 == 1 {
		b = append(b, ' ')
	}
	return b
}

func TestDetectExplicitVR(t *testing.T) {
	data := append(u16le(0x0008), u16le(0x0060)...)
	data = append(data, "CS"...)
	data = append(data, u16le(2)...)
	data = append(data, "CT"...)
	assert.True(t, DetectExplicitVR(data, 0))

	implicit := append(u16le(0x0008), u16le(0x0060)...)
	implicit = append(implicit, u32le(2)...)
	implicit = append(implicit, "CT"...)
	assert.False(t, DetectExplicitVR(implicit, 0))
}

func TestDecodeSimpleExplicitDataset(t *testing.T) {
	var buf []byte
	buf = append(buf, shortElem(0x0008, 0x0060, "CS", padEven("CT"))...)
	buf = append(buf, shortElem(0x0010, 0x0010, "PN", padEven("DOE^JOHN"))...)
	buf = append(buf, shortElem(0x0028, 0x0010, "US", u16le(4))...)
	buf = append(buf, shortElem(0x0028, 0x0011, "US", u16le(4))...)
	buf = append(buf, shortElem(0x0020, 0x0032, "DS", padEven(`0\0\-5.5`))...)
	buf = append(buf, shortElem(0x0028, 0x1053, "DS", padEven("1"))...)
	buf = append(buf, shortElem(0x0028, 0x1052, "DS", padEven("-1024"))...)

	pixels := make([]byte, 4*4*2)
	buf = append(buf, longElem(0x7FE0, 0x0010, "OW", uint32(len(pixels)), pixels)...)

	ds, err := Dataset(dictionary.Default(), buf, true)
	require.NoError(t, err)
	require.Len(t, ds.Elements, 8)

	modality, ok := ds.Get(tag.Modality)
	require.True(t, ok)
	assert.Equal(t, "CT", modality.Str)

	pos, ok := ds.Get(tag.ImagePositionPatient)
	require.True(t, ok)
	require.Len(t, pos.Float64s, 3)
	assert.Equal(t, -5.5, pos.Float64s[2])

	pd, ok := ds.Get(tag.PixelData)
	require.True(t, ok)
	require.Equal(t, element.KindImage16, pd.Kind)
	assert.Equal(t, 4, pd.Image16.Rows)
	assert.Equal(t, 4, pd.Image16.Cols)
	assert.Len(t, pd.Image16.Data, 16)
}

func TestDecodeImplicitVRUsesDictionary(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(0x0008)...)
	buf = append(buf, u16le(0x0060)...)
	buf = append(buf, u32le(2)...)
	buf = append(buf, "CT"...)

	ds, err := Dataset(dictionary.Default(), buf, false)
	require.NoError(t, err)
	require.Len(t, ds.Elements, 1)
	assert.Equal(t, "CT", ds.Elements[0].Value.Str)
}

func TestPrivateTagOverride(t *testing.T) {
	var buf []byte
	// private creator element, group 0009 odd > 0008, element in [0x10,0xFF)
	buf = append(buf, shortElem(0x0009, 0x0010, "LO", padEven("ACME 1.0"))...)
	// ordinary private data element in same group, outside creator range
	buf = append(buf, shortElem(0x0009, 0x1001, "LO", padEven("secret"))...)

	ds, err := Dataset(dictionary.Default(), buf, true)
	require.NoError(t, err)
	require.Len(t, ds.Elements, 2)
	assert.Equal(t, element.KindString, ds.Elements[0].Value.Kind)
	assert.Equal(t, element.KindBytes, ds.Elements[1].Value.Kind)
}

func TestDecodeUndefinedLengthSequence(t *testing.T) {
	inner := shortElem(0x0008, 0x0060, "CS", padEven("CT"))
	item := append(u16le(0xFFFE), u16le(0xE000)...)
	item = append(item, u32le(uint32(len(inner)))...)
	item = append(item, inner...)

	seqDelim := append(u16le(0xFFFE), u16le(0xE0DD)...)
	seqDelim = append(seqDelim, u32le(0)...)

	seqBody := append(item, seqDelim...)

	var buf []byte
	buf = append(buf, u16le(0x0008)...)
	buf = append(buf, u16le(0x9999)...)
	buf = append(buf, "SQ"...)
	buf = append(buf, 0, 0)
	buf = append(buf, u32le(undefinedLength)...)
	buf = append(buf, seqBody...)

	ds, err := Dataset(dictionary.Default(), buf, true)
	require.NoError(t, err)
	require.Len(t, ds.Elements, 1)
	require.Equal(t, element.KindSeq, ds.Elements[0].Value.Kind)
	require.Len(t, ds.Elements[0].Value.Seq, 1)
	modality, ok := ds.Elements[0].Value.Seq[0].Get(tag.Modality)
	require.True(t, ok)
	assert.Equal(t, "CT", modality.Str)
}

func TestDecodeEncapsulatedPixelData(t *testing.T) {
	fragData := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	frag := append(u16le(0xFFFE), u16le(0xE000)...)
	frag = append(frag, u32le(uint32(len(fragData)))...)
	frag = append(frag, fragData...)

	seqDelim := append(u16le(0xFFFE), u16le(0xE0DD)...)
	seqDelim = append(seqDelim, u32le(0)...)

	var buf []byte
	buf = append(buf, u16le(0x7FE0)...)
	buf = append(buf, u16le(0x0010)...)
	buf = append(buf, "OB"...)
	buf = append(buf, 0, 0)
	buf = append(buf, u32le(undefinedLength)...)
	buf = append(buf, frag...)
	buf = append(buf, seqDelim...)

	ds, err := Dataset(dictionary.Default(), buf, true)
	require.NoError(t, err)
	require.Len(t, ds.Elements, 1)
	pd := ds.Elements[0].Value
	require.Equal(t, element.KindImage8, pd.Kind)
	assert.Equal(t, fragData, pd.Image8.Data)
}
