package decode

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/vr"
)

// decodeValue turns raw bytes for a non-sequence, non-pixel-data element
// into its typed Value, dispatching purely on VR.
func decodeValue(v vr.VR, raw []byte) (element.Value, error) {
	if len(raw) == 0 {
		return element.Empty(), nil
	}
	switch v {
	case vr.AE, vr.AS, vr.CS, vr.DA, vr.DT, vr.LO, vr.PN, vr.SH, vr.TM, vr.UI, vr.ST, vr.LT, vr.UT:
		return element.Value{Kind: element.KindString, Str: string(raw)}, nil
	case vr.IS, vr.DS:
		nums, err := parseNumericStrings(raw)
		if err != nil {
			return element.Value{}, err
		}
		return element.Value{Kind: element.KindFloat64s, Float64s: nums}, nil
	case vr.AT:
		if len(raw) < 4 {
			return element.Value{}, dicomerr.ErrTruncatedInput
		}
		return element.Value{Kind: element.KindUInt16s, UInt16s: []uint16{
			binary.LittleEndian.Uint16(raw[0:2]),
			binary.LittleEndian.Uint16(raw[2:4]),
		}}, nil
	case vr.FL:
		return element.Value{Kind: element.KindFloat32s, Float32s: decodeFloat32sLE(raw)}, nil
	case vr.FD:
		return element.Value{Kind: element.KindFloat64s, Float64s: decodeFloat64sLE(raw)}, nil
	case vr.SL:
		return element.Value{Kind: element.KindInt32s, Int32s: decodeInt32sLE(raw)}, nil
	case vr.SS:
		return element.Value{Kind: element.KindInt16s, Int16s: decodeInt16sLE(raw)}, nil
	case vr.UL:
		return element.Value{Kind: element.KindUInt32s, UInt32s: decodeUInt32sLE(raw)}, nil
	case vr.US:
		return element.Value{Kind: element.KindUInt16s, UInt16s: decodeUInt16sLE(raw)}, nil
	case vr.OB, vr.UN:
		return element.Value{Kind: element.KindBytes, Bytes: append([]byte(nil), raw...)}, nil
	case vr.OD:
		return element.Value{Kind: element.KindFloat64s, Float64s: decodeFloat64sBE(raw)}, nil
	case vr.OF:
		return element.Value{Kind: element.KindFloat32s, Float32s: decodeFloat32sBE(raw)}, nil
	case vr.OW:
		return element.Value{Kind: element.KindUInt16s, UInt16s: decodeUInt16sBE(raw)}, nil
	case vr.XX:
		return element.Empty(), nil
	default:
		return element.Value{}, dicomerr.ErrUnknownVR
	}
}

func trimString(s string) string {
	return strings.TrimRight(s, " \x00")
}

func parseNumericStrings(raw []byte) ([]float64, error) {
	parts := strings.Split(trimString(string(raw)), `\`)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, dicomerr.ForField(dicomerr.ErrValueTypeMismatch, 0, 0, "numeric string: "+p)
		}
		out = append(out, f)
	}
	return out, nil
}

func decodeInt16sLE(raw []byte) []int16 {
	n := len(raw) / 2
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return out
}

func decodeUInt16sLE(raw []byte) []uint16 {
	n := len(raw) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return out
}

func decodeUInt16sBE(raw []byte) []uint16 {
	n := len(raw) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = binary.BigEndian.Uint16(raw[i*2:])
	}
	return out
}

func decodeInt32sLE(raw []byte) []int32 {
	n := len(raw) / 4
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out
}

func decodeUInt32sLE(raw []byte) []uint32 {
	n := len(raw) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return out
}

func decodeFloat32sLE(raw []byte) []float32 {
	n := len(raw) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out
}

func decodeFloat32sBE(raw []byte) []float32 {
	n := len(raw) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:]))
	}
	return out
}

func decodeFloat64sLE(raw []byte) []float64 {
	n := len(raw) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return out
}

func decodeFloat64sBE(raw []byte) []float64 {
	n := len(raw) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:]))
	}
	return out
}
