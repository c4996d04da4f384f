package dawg

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/mmap"
)

// Save writes the byte-exact serialized form of g to filename, creating
// or truncating it. It returns the number of bytes written.
func (g *Graph) Save(filename string) (int, error) {
	data := g.Serialize()

	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return n, err
	}
	return n, nil
}

// Load opens filename through a memory-mapped file handle rather than a
// buffered os.File. Deserialize requires the full byte-exact payload up
// front, so Load copies the whole mapped region into a []byte before
// decoding; the decoded Graph does not reference the mapping.
func Load(filename string, opts ...Option) (*Graph, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	}

	return Deserialize(data, opts...)
}

// countingWriter tallies the bytes that pass through it on their way to
// an underlying io.Writer. zstd.Writer.Write reports the length of the
// uncompressed input it was handed, not the compressed bytes it flushes
// downstream, so SaveCompressed counts at this layer instead.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// SaveCompressed writes g to filename as a zstd frame wrapping the same
// byte-exact payload Serialize produces. It returns the number of
// compressed bytes written to filename.
func (g *Graph) SaveCompressed(filename string) (int, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cw := &countingWriter{w: f}

	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}

	if _, err := enc.Write(g.Serialize()); err != nil {
		enc.Close()
		return cw.n, err
	}
	if err := enc.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// LoadCompressed reads a file written by SaveCompressed and decodes it
// into a Graph.
func LoadCompressed(filename string, opts ...Option) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("dawg: decompress: %w", err)
	}

	return Deserialize(data, opts...)
}
