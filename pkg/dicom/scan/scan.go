// Package scan assembles a directory of single-slice datasets into one
// position-sorted volumetric Scan and computes Hounsfield-Unit calibrated
// pixel data from it.
package scan

import (
	"math"
	"sort"
	"sync"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/slice"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

// Scan is a position-sorted stack of slices with their pixel data combined
// into one flat Image16 volume.
type Scan struct {
	Slices []slice.Slice
	Image  element.Image16
}

// ParseFunc parses a single slice from its path, supplied by the caller so
// this package stays independent of file I/O and the byte-level decoder.
type ParseFunc func(path string) (slice.Slice, error)

// Assemble parses every path concurrently via parseOne, then sorts the
// results by ascending z-position and stacks their pixel buffers into one
// volume. The stacking step is strictly sequential and only begins once
// every parse has reported success; the first error aborts the whole
// assembly and discards whatever else was in flight.
func Assemble(paths []string, parseOne ParseFunc) (Scan, error) {
	type result struct {
		idx int
		s   slice.Slice
		err error
	}

	results := make([]result, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			s, err := parseOne(p)
			results[i] = result{idx: i, s: s, err: err}
		}(i, p)
	}
	wg.Wait()

	slices := make([]slice.Slice, 0, len(paths))
	for _, r := range results {
		if r.err != nil {
			return Scan{}, r.err
		}
		slices = append(slices, r.s)
	}

	return stack(slices)
}

func stack(slices []slice.Slice) (Scan, error) {
	positions := make([]float64, len(slices))
	for i, s := range slices {
		pos, err := s.Position()
		if err != nil {
			return Scan{}, err
		}
		if math.IsNaN(pos) || math.IsInf(pos, 0) {
			return Scan{}, dicomerr.ErrNonFinitePosition
		}
		positions[i] = pos
	}

	order := make([]int, len(slices))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return positions[order[a]] < positions[order[b]] })

	sorted := make([]slice.Slice, len(slices))
	for i, idx := range order {
		sorted[i] = slices[idx]
	}

	if len(sorted) == 0 {
		return Scan{}, nil
	}

	first, err := sorted[0].PixelData()
	if err != nil {
		return Scan{}, err
	}
	if first.Kind != element.KindImage16 {
		return Scan{}, dicomerr.ErrValueTypeMismatch
	}
	rows, cols := first.Image16.Rows, first.Image16.Cols
	plane := rows * cols

	data := make([]int16, 0, plane*len(sorted))
	stripped := make([]slice.Slice, len(sorted))
	for i, s := range sorted {
		pd, err := s.PixelData()
		if err != nil {
			return Scan{}, err
		}
		if pd.Kind != element.KindImage16 || len(pd.Image16.Data) != plane {
			return Scan{}, dicomerr.ErrValueTypeMismatch
		}
		data = append(data, pd.Image16.Data...)
		stripped[i] = s.WithoutTag(tag.PixelData)
	}

	return Scan{
		Slices: stripped,
		Image: element.Image16{
			Rows: rows, Cols: cols, Planes: len(sorted),
			Data: data,
		},
	}, nil
}

// GetPixelsHU returns a freshly allocated Hounsfield-Unit calibrated copy of
// the scan's combined pixel volume. sc is never mutated: air padding samples
// (-2000) become 0, the per-slice rescale slope is applied by truncating
// toward zero, and the per-slice rescale intercept is added.
func GetPixelsHU(sc Scan) []int16 {
	plane := sc.Image.Rows * sc.Image.Cols
	out := make([]int16, len(sc.Image.Data))
	for i, s := range sc.Slices {
		slope, err := s.Slope()
		if err != nil {
			slope = 1.0
		}
		intercept, err := s.Intercept()
		if err != nil {
			intercept = 0
		}
		start := i * plane
		end := start + plane
		for j := start; j < end && j < len(sc.Image.Data); j++ {
			sample := sc.Image.Data[j]
			if sample == -2000 {
				sample = 0
			}
			if slope != 1.0 {
				sample = int16(float64(sample) * slope)
			}
			out[j] = sample + intercept
		}
	}
	return out
}
