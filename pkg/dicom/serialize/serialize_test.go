package serialize

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/scan"
	"github.com/dicomscan/dicomscan/pkg/dicom/slice"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

func sliceFixture(t *testing.T) slice.Slice {
	t.Helper()
	ds := element.Dataset{Elements: []element.Element{
		{Tag: tag.Modality, Value: element.Value{Kind: element.KindString, Str: "CT"}},
		{Tag: tag.ImagePositionPatient, Value: element.Value{Kind: element.KindFloat64s, Float64s: []float64{1, 2, 3}}},
		{Tag: tag.RescaleSlope, Value: element.Value{Kind: element.KindFloat64s, Float64s: []float64{1}}},
		{Tag: tag.Tag{Group: 0x0009, Element: 0x1001}, Value: element.Value{Kind: element.KindBytes, Bytes: []byte{1, 2, 3, 4}}},
	}}
	s, err := slice.FromDataset(dictionary.Default(), ds)
	require.NoError(t, err)
	return s
}

func TestSliceRoundTrip(t *testing.T) {
	s := sliceFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Slice(&buf, s))

	got, err := ReadSlice(&buf, dictionary.Default())
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestScanRoundTrip(t *testing.T) {
	s := sliceFixture(t)
	sc := scan.Scan{
		Slices: []slice.Slice{s},
		Image:  element.Image16{Rows: 2, Cols: 2, Planes: 1, Data: []int16{1, 2, 3, 4}},
	}

	var buf bytes.Buffer
	require.NoError(t, Scan(&buf, sc))

	got, err := ReadScan(&buf, dictionary.Default())
	require.NoError(t, err)
	assert.Equal(t, sc, got)
}

func TestReadScanEmptyReaderIsEOF(t *testing.T) {
	_, err := ReadScan(bytes.NewReader(nil), dictionary.Default())
	assert.ErrorIs(t, err, io.EOF)
}
