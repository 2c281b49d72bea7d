package scan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/slice"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

func buildSlice(t *testing.T, z float64, slope, intercept float64, pixels []int16) slice.Slice {
	t.Helper()
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.ImagePositionPatient, Value: element.Value{Kind: element.KindFloat64s, Float64s: []float64{0, 0, z}}},
		{Tag: tag.RescaleSlope, Value: element.Value{Kind: element.KindFloat64s, Float64s: []float64{slope}}},
		{Tag: tag.RescaleIntercept, Value: element.Value{Kind: element.KindFloat64s, Float64s: []float64{intercept}}},
		{Tag: tag.PixelData, Value: element.Value{Kind: element.KindImage16, Image16: element.Image16{
			Rows: 2, Cols: 2, Planes: 1, Data: pixels,
		}}},
	}}
	s, err := slice.FromDataset(dictionary.Default(), ds)
	require.NoError(t, err)
	return s
}

func TestStackSortsByPositionAndConcatenates(t *testing.T) {
	second := buildSlice(t, 10, 1, 0, []int16{5, 6, 7, 8})
	first := buildSlice(t, -5, 1, 0, []int16{1, 2, 3, 4})

	sc, err := stack([]slice.Slice{second, first})
	require.NoError(t, err)

	assert.Equal(t, 2, sc.Image.Rows)
	assert.Equal(t, 2, sc.Image.Cols)
	assert.Equal(t, 2, sc.Image.Planes)
	assert.Equal(t, []int16{1, 2, 3, 4, 5, 6, 7, 8}, sc.Image.Data)

	_, ok := sc.Slices[0].Tag(tag.PixelData)
	assert.False(t, ok, "pixel data should be stripped from per-slice map after stacking")
}

func TestGetPixelsHUReplacesAirAndAppliesRescale(t *testing.T) {
	s := buildSlice(t, 0, 2.0, -1024, []int16{-2000, 0, 100, -2000})
	sc, err := stack([]slice.Slice{s})
	require.NoError(t, err)

	hu := GetPixelsHU(sc)
	assert.Equal(t, []int16{-1024, -1024, -824, -1024}, hu)

	// sc itself must be untouched by GetPixelsHU.
	assert.Equal(t, []int16{-2000, 0, 100, -2000}, sc.Image.Data)
}

func TestStackRejectsNonFinitePosition(t *testing.T) {
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.ImagePositionPatient, Value: element.Value{Kind: element.KindFloat64s, Float64s: []float64{0, 0, math.NaN()}}},
	}}
	s, err := slice.FromDataset(dictionary.Default(), ds)
	require.NoError(t, err)

	_, err = stack([]slice.Slice{s})
	assert.ErrorIs(t, err, dicomerr.ErrNonFinitePosition)
}
