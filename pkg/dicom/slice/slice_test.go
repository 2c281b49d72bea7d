package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

func strVal(s string) element.Value { return element.Value{Kind: element.KindString, Str: s} }
func f64Val(v ...float64) element.Value {
	return element.Value{Kind: element.KindFloat64s, Float64s: v}
}

func TestFromDatasetBuildsKeywordIndex(t *testing.T) {
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.Modality, Value: strVal("CT")},
		{Tag: tag.ImagePositionPatient, Value: f64Val(0, 0, -12.5)},
		{Tag: tag.RescaleSlope, Value: f64Val(1)},
		{Tag: tag.RescaleIntercept, Value: f64Val(-1024)},
	}}
	s, err := FromDataset(dictionary.Default(), ds)
	require.NoError(t, err)

	pos, err := s.Position()
	require.NoError(t, err)
	assert.Equal(t, -12.5, pos)

	slope, err := s.Slope()
	require.NoError(t, err)
	assert.Equal(t, 1.0, slope)

	intercept, err := s.Intercept()
	require.NoError(t, err)
	assert.EqualValues(t, -1024, intercept)
}

func TestFromDatasetDuplicateTagFails(t *testing.T) {
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.Modality, Value: strVal("CT")},
		{Tag: tag.Modality, Value: strVal("MR")},
	}}
	_, err := FromDataset(dictionary.Default(), ds)
	assert.Error(t, err)
}

func TestSlopeDefaultsToOne(t *testing.T) {
	s, err := FromDataset(dictionary.Default(), element.Dataset{})
	require.NoError(t, err)
	slope, err := s.Slope()
	require.NoError(t, err)
	assert.Equal(t, 1.0, slope)
}

func TestInterceptAcceptsUInt32Variant(t *testing.T) {
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.RescaleIntercept, Value: element.Value{Kind: element.KindUInt32s, UInt32s: []uint32{1024}}},
	}}
	s, err := FromDataset(dictionary.Default(), ds)
	require.NoError(t, err)
	intercept, err := s.Intercept()
	require.NoError(t, err)
	assert.EqualValues(t, 1024, intercept)
}

func TestWithoutTagRemovesPixelData(t *testing.T) {
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.PixelData, Value: element.Value{Kind: element.KindImage16}},
		{Tag: tag.Modality, Value: strVal("CT")},
	}}
	s, err := FromDataset(dictionary.Default(), ds)
	require.NoError(t, err)

	stripped := s.WithoutTag(tag.PixelData)
	_, ok := stripped.Tag(tag.PixelData)
	assert.False(t, ok)
	_, ok = stripped.Keyword("Modality")
	assert.True(t, ok)
}
