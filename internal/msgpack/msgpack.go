// Package msgpack encodes Zenith tuples as MessagePack.
// Used by the scan store to persist criteria and rank formulas.
package msgpack

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes a tuple value into MessagePack format.
// Map keys are written in sorted order so equal tuples encode to equal bytes.
//
// Example:
//
//	tuple := zenith.EncodeBoolean(criteria)
//	data, err := msgpack.Encode(tuple)
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeValue deserializes MessagePack data into a generic tuple value.
// Arrays decode as []any and maps as map[string]any; integers keep their
// MessagePack width and are widened by the Zenith decoder.
func DecodeValue(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty MessagePack data")
	}

	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack value: %w", err)
	}

	return v, nil
}
