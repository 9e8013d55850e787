package kmedoids

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// pointRecordSize is the size of one packed binary point: three little-endian
// float64 coordinates.
const pointRecordSize = 24

// FileFormat is the encoding of a point file.
type FileFormat int

const (
	// FormatText is one point per line, three numbers separated by
	// whitespace or commas. Blank lines and lines starting with # are skipped.
	FormatText FileFormat = iota
	// FormatBinary is packed 24-byte records of x, y, z as little-endian float64.
	FormatBinary
)

// Compression is the stream compression applied to a point file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

// DetectFileFormat derives the format and compression of a point file from
// its name: an optional .zst or .lz4 suffix selects the compression, and a
// remaining .bin suffix selects the binary format.
func DetectFileFormat(path string) (FileFormat, Compression) {
	name := strings.ToLower(filepath.Base(path))
	comp := CompressionNone
	switch filepath.Ext(name) {
	case ".zst", ".zstd":
		comp = CompressionZstd
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".lz4":
		comp = CompressionLZ4
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if filepath.Ext(name) == ".bin" {
		return FormatBinary, comp
	}
	return FormatText, comp
}

// OpenPointFile reads a whole point file and returns it as a source.
// Format and compression are chosen by DetectFileFormat.
func OpenPointFile(path string) (PointSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kmedoids: open point file: %w", err)
	}
	defer f.Close()

	format, comp := DetectFileFormat(path)
	r, closeFn, err := decompress(f, comp)
	if err != nil {
		return nil, fmt.Errorf("kmedoids: point file %s: %w", path, err)
	}
	defer closeFn()

	points, err := ReadPoints(r, format)
	if err != nil {
		return nil, fmt.Errorf("kmedoids: point file %s: %w", path, err)
	}
	return NewSliceSource(points), nil
}

func decompress(r io.Reader, comp Compression) (io.Reader, func(), error) {
	switch comp {
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// ReadPoints decodes every point in r.
func ReadPoints(r io.Reader, format FileFormat) ([]Point, error) {
	if format == FormatBinary {
		return readBinaryPoints(r)
	}
	return readTextPoints(r)
}

func readBinaryPoints(r io.Reader) ([]Point, error) {
	br := bufio.NewReader(r)
	var points []Point
	var rec [pointRecordSize]byte
	for {
		_, err := io.ReadFull(br, rec[:])
		if errors.Is(err, io.EOF) {
			return points, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("truncated record after %d points", len(points))
		}
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			X: math.Float64frombits(binary.LittleEndian.Uint64(rec[0:8])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(rec[8:16])),
			Z: math.Float64frombits(binary.LittleEndian.Uint64(rec[16:24])),
		})
	}
}

func readTextPoints(r io.Reader) ([]Point, error) {
	sc := bufio.NewScanner(r)
	var points []Point
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 coordinates, got %d", line, len(fields))
		}
		var xyz [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			xyz[i] = v
		}
		points = append(points, Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// WritePoints writes points to path in the format and compression selected
// by DetectFileFormat. The file is created or truncated.
func WritePoints(path string, points []Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kmedoids: create point file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("kmedoids: close point file: %w", cerr)
		}
	}()

	format, comp := DetectFileFormat(path)
	var w io.WriteCloser
	switch comp {
	case CompressionZstd:
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("kmedoids: point file %s: %w", path, err)
		}
		w = enc
	case CompressionLZ4:
		w = lz4.NewWriter(f)
	default:
		w = nopWriteCloser{f}
	}

	if err := encodeAndClose(w, points, format); err != nil {
		return fmt.Errorf("kmedoids: point file %s: %w", path, err)
	}
	return nil
}

// encodeAndClose encodes points into w and closes w whether or not encoding
// succeeded, so compressors release their resources on every path.
func encodeAndClose(w io.WriteCloser, points []Point, format FileFormat) error {
	bw := bufio.NewWriter(w)
	err := EncodePoints(bw, points, format)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// EncodePoints writes points to w in the given format.
func EncodePoints(w io.Writer, points []Point, format FileFormat) error {
	if format == FormatBinary {
		var rec [pointRecordSize]byte
		for _, p := range points {
			binary.LittleEndian.PutUint64(rec[0:8], math.Float64bits(p.X))
			binary.LittleEndian.PutUint64(rec[8:16], math.Float64bits(p.Y))
			binary.LittleEndian.PutUint64(rec[16:24], math.Float64bits(p.Z))
			if _, err := w.Write(rec[:]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, p := range points {
		line := strconv.FormatFloat(p.X, 'g', -1, 64) + " " +
			strconv.FormatFloat(p.Y, 'g', -1, 64) + " " +
			strconv.FormatFloat(p.Z, 'g', -1, 64) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
