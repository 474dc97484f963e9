// Package serialize packs Zenith tuples into compressed binary blobs.
// A blob is the MessagePack encoding of the tuple, compressed with
// ZStandard.
package serialize

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/hugr-lab/zenith-scan/internal/msgpack"
)

// MaxBlobSize bounds the decompressed size of a blob.
const MaxBlobSize = 16 << 20

// ErrEmptyBlob is returned when unpacking an empty blob.
var ErrEmptyBlob = errors.New("empty blob")

// Packer encodes tuples as blobs.
// Create once and reuse to eliminate allocations.
// Safe for concurrent use from multiple goroutines.
type Packer struct {
	encoder *zstd.Encoder
}

// NewPacker creates a reusable packer at the given compression level.
// Caller must call Close() when done to release resources.
func NewPacker(level zstd.EncoderLevel) (*Packer, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(level),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	return &Packer{encoder: encoder}, nil
}

// Pack encodes tuple as MessagePack and compresses the result.
func (p *Packer) Pack(tuple any) ([]byte, error) {
	data, err := msgpack.Encode(tuple)
	if err != nil {
		return nil, err
	}

	// EncodeAll is goroutine-safe
	return p.encoder.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Close releases packer resources.
func (p *Packer) Close() error {
	if p.encoder != nil {
		return p.encoder.Close()
	}
	return nil
}

// Unpacker decodes blobs back into tuples.
// Safe for concurrent use from multiple goroutines.
type Unpacker struct {
	decoder *zstd.Decoder
}

// NewUnpacker creates a reusable unpacker.
// Caller must call Close() when done to release resources.
func NewUnpacker() (*Unpacker, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBlobSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	return &Unpacker{decoder: decoder}, nil
}

// Unpack decompresses blob and decodes the MessagePack tuple inside it.
func (u *Unpacker) Unpack(blob []byte) (any, error) {
	if len(blob) == 0 {
		return nil, ErrEmptyBlob
	}

	// DecodeAll is goroutine-safe
	data, err := u.decoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return msgpack.DecodeValue(data)
}

// Close releases unpacker resources.
func (u *Unpacker) Close() {
	if u.decoder != nil {
		u.decoder.Close()
	}
}
