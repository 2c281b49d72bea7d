package reader

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
)

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func shortElem(group, elem uint16, vrCode, value string) []byte {
	out := append(u16le(group), u16le(elem)...)
	out = append(out, vrCode...)
	v := []byte(value)
	if len(v)%2 == 1 {
		v = append(v, ' ')
	}
	out = append(out, u16le(uint16(len(v)))...)
	out = append(out, v...)
	return out
}

func part10File(t *testing.T, dataset []byte) string {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 128))
	buf.WriteString("DICM")
	buf.Write(dataset)

	path := filepath.Join(t.TempDir(), "test.dcm")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestParseRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dcm")
	require.NoError(t, os.WriteFile(path, make([]byte, 200), 0o644))

	_, err := New().Parse(path)
	assert.ErrorIs(t, err, dicomerr.ErrBadMagic)
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dcm")
	require.NoError(t, os.WriteFile(path, make([]byte, 10), 0o644))

	_, err := New().Parse(path)
	assert.ErrorIs(t, err, dicomerr.ErrTruncatedInput)
}

func TestParseDecodesRealFile(t *testing.T) {
	ds := shortElem(0x0008, 0x0060, "CS", "CT")
	path := part10File(t, ds)

	s, err := New().Parse(path)
	require.NoError(t, err)
	v, ok := s.Keyword("Modality")
	require.True(t, ok)
	assert.Equal(t, "CT", v.Str)
}

func TestDeserializeScanEmptyFileIsEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := New().DeserializeScan(path)
	assert.ErrorIs(t, err, io.EOF)
}
