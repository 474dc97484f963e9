package scan

import (
	"fmt"
	"log/slog"

	"github.com/klauspost/compress/zstd"

	"github.com/hugr-lab/zenith-scan/formula"
	"github.com/hugr-lab/zenith-scan/internal/recovery"
	"github.com/hugr-lab/zenith-scan/internal/serialize"
	"github.com/hugr-lab/zenith-scan/zenith"
)

// Codec converts formulas to compact blobs and back. A blob holds the
// Zenith tuple of the formula, MessagePack encoded and zstd compressed.
// Safe for concurrent use.
type Codec struct {
	packer   *serialize.Packer
	unpacker *serialize.Unpacker
	logger   *slog.Logger
}

// NewCodec creates a codec. If logger is nil, slog.Default() is used.
// Caller must call Close() when done to release resources.
func NewCodec(logger *slog.Logger) (*Codec, error) {
	if logger == nil {
		logger = slog.Default()
	}

	packer, err := serialize.NewPacker(zstd.SpeedDefault)
	if err != nil {
		return nil, err
	}
	unpacker, err := serialize.NewUnpacker()
	if err != nil {
		packer.Close()
		return nil, err
	}

	return &Codec{packer: packer, unpacker: unpacker, logger: logger}, nil
}

// Close releases codec resources. The decoder is released even if closing
// the encoder fails.
func (c *Codec) Close() error {
	recovery.Recover(c.logger, "Codec.Close", c.unpacker.Close)
	return recovery.RecoverToError(c.logger, "Codec.Close", c.packer.Close)
}

// MarshalCriteria encodes a boolean formula as a blob.
func (c *Codec) MarshalCriteria(node formula.BooleanNode) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil criteria", ErrInvalidFormula)
	}
	return c.pack("MarshalCriteria", func() any { return zenith.EncodeBoolean(node) })
}

// UnmarshalCriteria decodes a blob written by MarshalCriteria.
func (c *Codec) UnmarshalCriteria(blob []byte) (formula.BooleanNode, error) {
	tuple, err := c.unpacker.Unpack(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	node, _, err := zenith.DecodeBoolean(tuple)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	return node, nil
}

// MarshalRank encodes a numeric formula as a blob. A nil formula encodes
// as a nil blob.
func (c *Codec) MarshalRank(node formula.NumericNode) ([]byte, error) {
	if node == nil {
		return nil, nil
	}
	return c.pack("MarshalRank", func() any { return zenith.EncodeNumeric(node) })
}

// UnmarshalRank decodes a blob written by MarshalRank. An empty blob
// decodes as a nil formula.
func (c *Codec) UnmarshalRank(blob []byte) (formula.NumericNode, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	tuple, err := c.unpacker.Unpack(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	node, _, err := zenith.DecodeNumeric(tuple)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	return node, nil
}

// pack encodes the tuple built by encode. Zenith encoding panics on trees
// holding out-of-range enumeration values; those panics become errors.
func (c *Codec) pack(operation string, encode func() any) ([]byte, error) {
	blob, err := recovery.RecoverToValue(c.logger, operation, func() ([]byte, error) {
		return c.packer.Pack(encode())
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	return blob, nil
}
