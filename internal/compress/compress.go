package compress

import "fmt"

const (
	None   = "none"
	Gzip   = "gzip"
	LZ4    = "lz4"
	Brotli = "brotli"
)

// Compress encodes and decodes edit snapshots before they reach the store.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// ForName returns the codec recorded under the given name. Every edit row
// records the codec it was written with, so readers must resolve by name.
func ForName(name string) (Compress, error) {
	switch name {
	case None, "":
		return NewNop(), nil
	case Gzip:
		return NewGZip(), nil
	case LZ4:
		return NewLZ4(), nil
	case Brotli:
		return NewBrotli(), nil
	}

	return nil, fmt.Errorf("unknown compression: %q", name)
}
