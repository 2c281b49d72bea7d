package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPacksElementHigh(t *testing.T) {
	tg := Tag{Group: 0x0028, Element: 0x1052}
	require.Equal(t, uint32(0x1052)<<16|0x0028, tg.Key())
}

func TestNormalizeRepeatingGroup(t *testing.T) {
	curve := Tag{Group: 0x5003, Element: 0x0010}
	assert.Equal(t, Tag{Group: 0x5000, Element: 0x0010}, curve.NormalizeRepeatingGroup())

	overlay := Tag{Group: 0x60FE, Element: 0x3000}
	assert.Equal(t, Tag{Group: 0x6000, Element: 0x3000}, overlay.NormalizeRepeatingGroup())

	plain := Tag{Group: 0x0008, Element: 0x0060}
	assert.Equal(t, plain, plain.NormalizeRepeatingGroup())
}

func TestIsPrivateCreator(t *testing.T) {
	assert.True(t, Tag{Group: 0x0009, Element: 0x0010}.IsPrivateCreator())
	assert.False(t, Tag{Group: 0x0009, Element: 0x1001}.IsPrivateCreator())
	assert.False(t, Tag{Group: 0x0007, Element: 0x0010}.IsPrivateCreator())
	assert.False(t, Tag{Group: 0x0008, Element: 0x0010}.IsPrivateCreator())
}

func TestStringFormat(t *testing.T) {
	assert.Equal(t, "(0028,1052)", Tag{0x0028, 0x1052}.String())
}
