// Package serialize implements a deterministic, length-prefixed,
// little-endian binary codec for Slice and Scan, satisfying
// deserialize(serialize(x)) == x for every value this module produces.
package serialize

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/scan"
	"github.com/dicomscan/dicomscan/pkg/dicom/slice"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

type wireKind uint8

const (
	wireEmpty wireKind = iota
	wireInt16s
	wireUInt16s
	wireInt32s
	wireUInt32s
	wireFloat32s
	wireFloat64s
	wireString
	wireBytes
	wireSeq
	wireImage16
	wireImage8
)

func kindToWire(k element.Kind) wireKind {
	switch k {
	case element.KindInt16s:
		return wireInt16s
	case element.KindUInt16s:
		return wireUInt16s
	case element.KindInt32s:
		return wireInt32s
	case element.KindUInt32s:
		return wireUInt32s
	case element.KindFloat32s:
		return wireFloat32s
	case element.KindFloat64s:
		return wireFloat64s
	case element.KindString:
		return wireString
	case element.KindBytes:
		return wireBytes
	case element.KindSeq:
		return wireSeq
	case element.KindImage16:
		return wireImage16
	case element.KindImage8:
		return wireImage8
	default:
		return wireEmpty
	}
}

// ---- encode ----

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) u8(v uint8) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write([]byte{v})
}

func (e *encoder) u16(v uint16) {
	if e.err != nil {
		return
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *encoder) u32(v uint32) {
	if e.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *encoder) u64(v uint64) {
	if e.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *encoder) i16s(v []int16) {
	e.u32(uint32(len(v)))
	for _, x := range v {
		e.u16(uint16(x))
	}
}

func (e *encoder) u16s(v []uint16) {
	e.u32(uint32(len(v)))
	for _, x := range v {
		e.u16(x)
	}
}

func (e *encoder) i32s(v []int32) {
	e.u32(uint32(len(v)))
	for _, x := range v {
		e.u32(uint32(x))
	}
}

func (e *encoder) u32s(v []uint32) {
	e.u32(uint32(len(v)))
	for _, x := range v {
		e.u32(x)
	}
}

func (e *encoder) f32s(v []float32) {
	e.u32(uint32(len(v)))
	for _, x := range v {
		e.u32(math.Float32bits(x))
	}
}

func (e *encoder) f64s(v []float64) {
	e.u32(uint32(len(v)))
	for _, x := range v {
		e.u64(math.Float64bits(x))
	}
}

func (e *encoder) bytes(v []byte) {
	e.u32(uint32(len(v)))
	if e.err != nil || len(v) == 0 {
		return
	}
	_, e.err = e.w.Write(v)
}

func (e *encoder) str(s string) { e.bytes([]byte(s)) }

func (e *encoder) value(v element.Value) {
	e.u8(uint8(kindToWire(v.Kind)))
	switch v.Kind {
	case element.KindInt16s:
		e.i16s(v.Int16s)
	case element.KindUInt16s:
		e.u16s(v.UInt16s)
	case element.KindInt32s:
		e.i32s(v.Int32s)
	case element.KindUInt32s:
		e.u32s(v.UInt32s)
	case element.KindFloat32s:
		e.f32s(v.Float32s)
	case element.KindFloat64s:
		e.f64s(v.Float64s)
	case element.KindString:
		e.str(v.Str)
	case element.KindBytes:
		e.bytes(v.Bytes)
	case element.KindSeq:
		e.u32(uint32(len(v.Seq)))
		for _, ds := range v.Seq {
			e.dataset(ds.Elements)
		}
	case element.KindImage16:
		e.u32(uint32(v.Image16.Rows))
		e.u32(uint32(v.Image16.Cols))
		e.u32(uint32(v.Image16.Planes))
		e.i16s(v.Image16.Data)
	case element.KindImage8:
		e.u32(uint32(v.Image8.Rows))
		e.u32(uint32(v.Image8.Cols))
		e.u32(uint32(v.Image8.Planes))
		e.bytes(v.Image8.Data)
	}
}

func (e *encoder) dataset(elems []element.Element) {
	e.u32(uint32(len(elems)))
	for _, el := range elems {
		e.u16(el.Tag.Group)
		e.u16(el.Tag.Element)
		e.value(el.Value)
	}
}

// Slice writes s's elements in the wire format.
func Slice(w io.Writer, s slice.Slice) error {
	enc := &encoder{w: w}
	enc.dataset(s.Elements())
	return enc.err
}

// Scan writes every slice in sc followed by the combined pixel volume.
func Scan(w io.Writer, sc scan.Scan) error {
	enc := &encoder{w: w}
	enc.u32(uint32(len(sc.Slices)))
	for _, s := range sc.Slices {
		enc.dataset(s.Elements())
	}
	enc.u32(uint32(sc.Image.Rows))
	enc.u32(uint32(sc.Image.Cols))
	enc.u32(uint32(sc.Image.Planes))
	enc.i16s(sc.Image.Data)
	return enc.err
}

// ---- decode ----

type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) u8() uint8 {
	if d.err != nil {
		return 0
	}
	var b [1]byte
	if _, d.err = io.ReadFull(d.r, b[:]); d.err != nil {
		return 0
	}
	return b[0]
}

func (d *decoder) u16() uint16 {
	if d.err != nil {
		return 0
	}
	var b [2]byte
	if _, d.err = io.ReadFull(d.r, b[:]); d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b[:])
}

func (d *decoder) u32() uint32 {
	if d.err != nil {
		return 0
	}
	var b [4]byte
	if _, d.err = io.ReadFull(d.r, b[:]); d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b[:])
}

func (d *decoder) u64() uint64 {
	if d.err != nil {
		return 0
	}
	var b [8]byte
	if _, d.err = io.ReadFull(d.r, b[:]); d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (d *decoder) bytes() []byte {
	n := d.u32()
	if d.err != nil || n == 0 {
		return nil
	}
	buf := make([]byte, n)
	if _, d.err = io.ReadFull(d.r, buf); d.err != nil {
		return nil
	}
	return buf
}

func (d *decoder) str() string { return string(d.bytes()) }

func (d *decoder) i16s() []int16 {
	n := d.u32()
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(d.u16())
	}
	return out
}

func (d *decoder) u16s() []uint16 {
	n := d.u32()
	out := make([]uint16, n)
	for i := range out {
		out[i] = d.u16()
	}
	return out
}

func (d *decoder) i32s() []int32 {
	n := d.u32()
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(d.u32())
	}
	return out
}

func (d *decoder) u32s() []uint32 {
	n := d.u32()
	out := make([]uint32, n)
	for i := range out {
		out[i] = d.u32()
	}
	return out
}

func (d *decoder) f32s() []float32 {
	n := d.u32()
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(d.u32())
	}
	return out
}

func (d *decoder) f64s() []float64 {
	n := d.u32()
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(d.u64())
	}
	return out
}

func (d *decoder) value() element.Value {
	k := wireKind(d.u8())
	switch k {
	case wireInt16s:
		return element.Value{Kind: element.KindInt16s, Int16s: d.i16s()}
	case wireUInt16s:
		return element.Value{Kind: element.KindUInt16s, UInt16s: d.u16s()}
	case wireInt32s:
		return element.Value{Kind: element.KindInt32s, Int32s: d.i32s()}
	case wireUInt32s:
		return element.Value{Kind: element.KindUInt32s, UInt32s: d.u32s()}
	case wireFloat32s:
		return element.Value{Kind: element.KindFloat32s, Float32s: d.f32s()}
	case wireFloat64s:
		return element.Value{Kind: element.KindFloat64s, Float64s: d.f64s()}
	case wireString:
		return element.Value{Kind: element.KindString, Str: d.str()}
	case wireBytes:
		return element.Value{Kind: element.KindBytes, Bytes: d.bytes()}
	case wireSeq:
		n := d.u32()
		if n == 0 {
			// The decoder leaves an empty sequence's item list nil.
			return element.Value{Kind: element.KindSeq}
		}
		items := make([]element.Dataset, n)
		for i := range items {
			elems := d.dataset()
			if len(elems) == 0 {
				elems = nil
			}
			items[i] = element.Dataset{Elements: elems}
		}
		return element.Value{Kind: element.KindSeq, Seq: items}
	case wireImage16:
		rows, cols, planes := int(d.u32()), int(d.u32()), int(d.u32())
		return element.Value{Kind: element.KindImage16, Image16: element.Image16{
			Rows: rows, Cols: cols, Planes: planes, Data: d.i16s(),
		}}
	case wireImage8:
		rows, cols, planes := int(d.u32()), int(d.u32()), int(d.u32())
		return element.Value{Kind: element.KindImage8, Image8: element.Image8{
			Rows: rows, Cols: cols, Planes: planes, Data: d.bytes(),
		}}
	default:
		return element.Empty()
	}
}

func (d *decoder) dataset() []element.Element {
	n := d.u32()
	out := make([]element.Element, n)
	for i := range out {
		group := d.u16()
		elem := d.u16()
		out[i] = element.Element{Tag: tag.Tag{Group: group, Element: elem}, Value: d.value()}
	}
	return out
}

// ReadSlice reads a Slice previously written by Slice, rebuilding its
// keyword index against dict.
func ReadSlice(r io.Reader, dict *dictionary.Dictionary) (slice.Slice, error) {
	dec := &decoder{r: r}
	elems := dec.dataset()
	if dec.err != nil {
		return slice.Slice{}, dec.err
	}
	return slice.FromDataset(dict, element.Dataset{Elements: elems})
}

// ReadScan reads a Scan previously written by Scan.
func ReadScan(r io.Reader, dict *dictionary.Dictionary) (scan.Scan, error) {
	dec := &decoder{r: r}
	n := dec.u32()
	slices := make([]slice.Slice, n)
	for i := range slices {
		elems := dec.dataset()
		if dec.err != nil {
			return scan.Scan{}, dec.err
		}
		s, err := slice.FromDataset(dict, element.Dataset{Elements: elems})
		if err != nil {
			return scan.Scan{}, err
		}
		slices[i] = s
	}
	rows, cols, planes := int(dec.u32()), int(dec.u32()), int(dec.u32())
	data := dec.i16s()
	if dec.err != nil {
		return scan.Scan{}, dec.err
	}
	if n == 0 && len(data) == 0 {
		// An assembled scan with no slices has nil slices and pixel data.
		slices, data = nil, nil
	}
	return scan.Scan{
		Slices: slices,
		Image:  element.Image16{Rows: rows, Cols: cols, Planes: planes, Data: data},
	}, nil
}
