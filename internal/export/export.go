package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/specialistvlad/noisegrid/internal/noisemap"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	nmapMagic   = "NMAP"
	nmapVersion = 1
)

// ErrCorrupt is returned when an nmap stream cannot be decoded.
var ErrCorrupt = errors.New("corrupt noise map file")

// nmapFile is the msgpack layout of an nmap file.
type nmapFile struct {
	Magic   string    `msgpack:"magic"`
	Version int       `msgpack:"version"`
	Width   int       `msgpack:"width"`
	Height  int       `msgpack:"height"`
	Border  float64   `msgpack:"border"`
	Values  []float64 `msgpack:"values"`
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// WriteNoiseMap encodes m in the nmap format.
func WriteNoiseMap(w io.Writer, m *noisemap.NoiseMap) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	f := nmapFile{
		Magic:   nmapMagic,
		Version: nmapVersion,
		Width:   m.Width(),
		Height:  m.Height(),
		Border:  m.BorderValue(),
		Values:  m.Values(),
	}
	if err := msgpack.NewEncoder(zw).Encode(&f); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode noise map: %w", err)
	}
	return zw.Close()
}

// ReadNoiseMap decodes a map written by WriteNoiseMap.
func ReadNoiseMap(r io.Reader) (*noisemap.NoiseMap, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var f nmapFile
	if err := msgpack.NewDecoder(zr).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if f.Magic != nmapMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, f.Magic)
	}
	if f.Version != nmapVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, f.Version)
	}
	if err := noisemap.CheckSize(f.Width, f.Height); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(f.Values) != f.Width*f.Height {
		return nil, fmt.Errorf("%w: expected %d values, found %d", ErrCorrupt, f.Width*f.Height, len(f.Values))
	}
	m, err := noisemap.New(f.Width, f.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	copy(m.Values(), f.Values)
	m.SetBorderValue(f.Border)
	return m, nil
}

// SaveFile writes path through a temporary file in the same directory and
// renames it into place once write succeeds, so readers never see a
// partial file. Missing parent directories are created.
func SaveFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
