// Package reader exposes the top-level programmatic surface of the module:
// parsing one file, assembling a scan from a directory, and round-tripping
// a scan through the serializer. It is the thin facade that glues the
// decode/slice/scan/serialize packages together behind a single entry point.
package reader

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dicomscan/dicomscan/pkg/dicom/decode"
	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/dictionary"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/scan"
	"github.com/dicomscan/dicomscan/pkg/dicom/serialize"
	"github.com/dicomscan/dicomscan/pkg/dicom/slice"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
	"github.com/dicomscan/dicomscan/pkg/dicom/transfer"
)

const preambleLen = 128

// Reader binds a dictionary and an optional logger to the parsing facade.
type Reader struct {
	dict *dictionary.Dictionary
	log  *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithDictionary overrides the default built-in dictionary.
func WithDictionary(dict *dictionary.Dictionary) Option {
	return func(r *Reader) { r.dict = dict }
}

// WithLogger attaches a logger; nil falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.log = logger
		}
	}
}

// New builds a Reader with the default dictionary unless overridden.
func New(opts ...Option) *Reader {
	r := &Reader{dict: dictionary.Default(), log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse reads one DICOM Part-10 file from disk and returns its Slice.
func (r *Reader) Parse(path string) (slice.Slice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slice.Slice{}, errors.Join(dicomerr.ErrIO, err)
	}
	return r.ParseBytes(data)
}

// ParseBytes decodes an in-memory Part-10 buffer into a Slice.
func (r *Reader) ParseBytes(data []byte) (slice.Slice, error) {
	if len(data) < preambleLen+4 {
		return slice.Slice{}, dicomerr.ErrTruncatedInput
	}
	if string(data[preambleLen:preambleLen+4]) != "DICM" {
		return slice.Slice{}, dicomerr.ErrBadMagic
	}
	start := preambleLen + 4
	explicitVR := decode.DetectExplicitVR(data, start)
	ds, err := decode.Dataset(r.dict, data[start:], explicitVR)
	if err != nil {
		return slice.Slice{}, err
	}
	if tsVal, ok := ds.Get(tag.TransferSyntaxUID); ok && tsVal.Kind == element.KindString {
		uid := strings.TrimRight(tsVal.Str, " \x00")
		syntax := transfer.FromUID(uid)
		r.log.Debug("decoded transfer syntax", "uid", uid, "name", syntax.Name(), "encapsulated", syntax.IsEncapsulated())
	}
	return slice.FromDataset(r.dict, ds)
}

// ParseScan assembles every *.dcm file in dir into a position-sorted Scan,
// parsing files concurrently and stacking them sequentially once every
// parse has finished.
func (r *Reader) ParseScan(dir string) (scan.Scan, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return scan.Scan{}, errors.Join(dicomerr.ErrIO, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), ".dcm") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	r.log.Info("assembling scan", "dir", dir, "files", len(paths))
	return scan.Assemble(paths, r.Parse)
}

// SerializeScan writes sc to path in this module's binary wire format,
// returning the number of bytes written.
func (r *Reader) SerializeScan(path string, sc scan.Scan) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Join(dicomerr.ErrIO, err)
	}
	defer f.Close()

	cw := &countingWriter{w: f}
	if err := serialize.Scan(cw, sc); err != nil {
		return cw.n, errors.Join(dicomerr.ErrIO, err)
	}
	return cw.n, nil
}

// DeserializeScan reads a Scan previously written by SerializeScan. An empty
// file returns io.EOF, as an io.Reader does on a zero-byte input.
func (r *Reader) DeserializeScan(path string) (scan.Scan, error) {
	f, err := os.Open(path)
	if err != nil {
		return scan.Scan{}, errors.Join(dicomerr.ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return scan.Scan{}, errors.Join(dicomerr.ErrIO, err)
	}
	if info.Size() == 0 {
		return scan.Scan{}, io.EOF
	}
	return serialize.ReadScan(f, r.dict)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
