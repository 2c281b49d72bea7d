package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

func TestDefaultLookupKnownTag(t *testing.T) {
	entry, ok := Default().Lookup(tag.Modality)
	require.True(t, ok)
	assert.Equal(t, "Modality", entry.Keyword)
}

func TestLookupUnknownTag(t *testing.T) {
	_, ok := Default().Lookup(tag.Tag{Group: 0x0009, Element: 0x1234})
	assert.False(t, ok)
}

func TestLookupNormalizesCurveGroup(t *testing.T) {
	dict := New(map[tag.Tag]Entry{
		{Group: 0x5000, Element: 0x0010}: {Keyword: "CurveData"},
	})
	entry, ok := dict.Lookup(tag.Tag{Group: 0x5003, Element: 0x0010})
	require.True(t, ok)
	assert.Equal(t, "CurveData", entry.Keyword)
}
