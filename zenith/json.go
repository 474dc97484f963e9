package zenith

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/valyala/fastjson"

	"github.com/hugr-lab/zenith-scan/formula"
)

var (
	parserPool fastjson.ParserPool
	arenaPool  fastjson.ArenaPool
)

// ErrUnsupportedValue is returned when a tuple holds a value that has no
// JSON representation.
var ErrUnsupportedValue = errors.New("zenith: unsupported tuple value")

// ParseTuple parses JSON into the generic tuple form.
// Malformed JSON fails with a *DecodeError carrying ErrorInvalidJSON.
func ParseTuple(data []byte) (any, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, newDecodeError(ErrorInvalidJSON, err.Error())
	}
	return fromJSONValue(v)
}

// ParseBoolean parses JSON and decodes it as a boolean tuple.
// The progress trail is empty when the JSON itself is malformed.
func ParseBoolean(data []byte) (formula.BooleanNode, *DecodeProgress, error) {
	tuple, err := ParseTuple(data)
	if err != nil {
		return nil, &DecodeProgress{}, err
	}
	return DecodeBoolean(tuple)
}

// ParseNumeric parses JSON and decodes it as a numeric tuple.
func ParseNumeric(data []byte) (formula.NumericNode, *DecodeProgress, error) {
	tuple, err := ParseTuple(data)
	if err != nil {
		return nil, &DecodeProgress{}, err
	}
	return DecodeNumeric(tuple)
}

// fromJSONValue copies a parsed value out of the parser's memory.
func fromJSONValue(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeNumber:
		f, err := v.Float64()
		if err != nil {
			return nil, newDecodeError(ErrorInvalidJSON, err.Error())
		}
		return f, nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, newDecodeError(ErrorInvalidJSON, err.Error())
		}
		return string(b), nil
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, newDecodeError(ErrorInvalidJSON, err.Error())
		}
		tuple := make([]any, 0, len(items))
		for _, item := range items {
			elem, err := fromJSONValue(item)
			if err != nil {
				return nil, err
			}
			tuple = append(tuple, elem)
		}
		return tuple, nil
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, newDecodeError(ErrorInvalidJSON, err.Error())
		}
		named := make(map[string]any, obj.Len())
		var visitErr error
		obj.Visit(func(key []byte, item *fastjson.Value) {
			if visitErr != nil {
				return
			}
			elem, err := fromJSONValue(item)
			if err != nil {
				visitErr = err
				return
			}
			named[string(key)] = elem
		})
		if visitErr != nil {
			return nil, visitErr
		}
		return named, nil
	default:
		return nil, newDecodeError(ErrorInvalidJSON, v.Type().String())
	}
}

// MarshalBoolean encodes a boolean node tree as JSON.
func MarshalBoolean(node formula.BooleanNode) ([]byte, error) {
	return MarshalTuple(EncodeBoolean(node))
}

// MarshalNumeric encodes a numeric node tree as JSON.
func MarshalNumeric(node formula.NumericNode) ([]byte, error) {
	return MarshalTuple(EncodeNumeric(node))
}

// MarshalTuple renders a generic tuple as JSON. Object keys are written
// in sorted order so equal tuples produce identical bytes.
func MarshalTuple(tuple any) ([]byte, error) {
	a := arenaPool.Get()
	defer func() {
		a.Reset()
		arenaPool.Put(a)
	}()

	v, err := toJSONValue(a, tuple)
	if err != nil {
		return nil, err
	}
	return v.MarshalTo(nil), nil
}

func toJSONValue(a *fastjson.Arena, v any) (*fastjson.Value, error) {
	switch t := v.(type) {
	case nil:
		return a.NewNull(), nil
	case bool:
		if t {
			return a.NewTrue(), nil
		}
		return a.NewFalse(), nil
	case string:
		return a.NewString(t), nil
	case []any:
		arr := a.NewArray()
		for i, item := range t {
			elem, err := toJSONValue(a, item)
			if err != nil {
				return nil, err
			}
			arr.SetArrayItem(i, elem)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := a.NewObject()
		for _, k := range keys {
			elem, err := toJSONValue(a, t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, elem)
		}
		return obj, nil
	}

	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	return a.NewNumberFloat64(f), nil
}
