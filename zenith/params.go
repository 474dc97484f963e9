package zenith

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/hugr-lab/zenith-scan/formula"
)

// toFloat converts any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// rawText renders a parameter for use as DecodeError extra text.
func rawText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return "null"
	default:
		return fmt.Sprint(v)
	}
}

// decodeNumber reads a numeric parameter, failing with code when it is not a number.
func decodeNumber(v any, code ErrorCode) (float64, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, newDecodeError(code, rawText(v))
	}
	return f, nil
}

// decodeDate reads an RFC 3339 date parameter. The code is ignored; date
// failures always report the date error codes.
func decodeDate(v any, _ ErrorCode) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, newDecodeError(ErrorDateValueIsNotString, rawText(v))
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = parseExpandedDate(s)
	}
	if err != nil {
		return time.Time{}, newDecodeError(ErrorDateValueIsNotValidIso8601, s)
	}
	return t, nil
}

// parseExpandedDate reads an RFC 3339 date whose year is written in the
// ISO 8601 expanded form, e.g. "+10000-01-01T00:00:00Z".
func parseExpandedDate(s string) (time.Time, error) {
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return time.Time{}, errors.New("not an expanded year")
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i-1 < 4 {
		return time.Time{}, errors.New("expanded year needs at least four digits")
	}
	year, err := strconv.Atoi(s[1:i])
	if err != nil {
		return time.Time{}, err
	}
	if s[0] == '-' {
		year = -year
	}

	// 2000 is a leap year, so every month and day parses; the day is
	// checked against the real year below.
	ref, err := time.Parse(time.RFC3339, "2000"+s[i:])
	if err != nil {
		return time.Time{}, err
	}
	loc := time.UTC
	if _, offset := ref.Zone(); offset != 0 {
		loc = time.FixedZone("", offset)
	}
	t := time.Date(year, ref.Month(), ref.Day(), ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), loc)
	if t.Day() != ref.Day() {
		return time.Time{}, fmt.Errorf("day %d out of range for year %d", ref.Day(), year)
	}
	return t, nil
}

// valueDecoder reads one bound or equals value of a range field.
type valueDecoder[T any] func(v any, notCode ErrorCode) (T, error)

// rangeResult is the outcome of decoding range parameters: either an
// equals value (At) or a range with at least one bound.
type rangeResult[T any] struct {
	at       *T
	min, max *T
}

// decodeNamedRange reads an object of At, Min and Max keys.
// At takes precedence over Min and Max. Null values count as absent.
func decodeNamedRange[T any](named map[string]any, decode valueDecoder[T]) (rangeResult[T], error) {
	var r rangeResult[T]
	if err := checkNamedKeys(named, AtParameterName, MinParameterName, MaxParameterName); err != nil {
		return r, err
	}

	if v, ok := named[AtParameterName]; ok && v != nil {
		at, err := decode(v, ErrorRangeAtIsNotNumber)
		if err != nil {
			return r, err
		}
		r.at = &at
		return r, nil
	}

	var err error
	if r.min, err = decodeOptionalBound(named[MinParameterName], decode, ErrorRangeMinIsNotNumber); err != nil {
		return r, err
	}
	if r.max, err = decodeOptionalBound(named[MaxParameterName], decode, ErrorRangeMaxIsNotNumber); err != nil {
		return r, err
	}
	if r.min == nil && r.max == nil {
		return r, newDecodeError(ErrorRangeMinAndMaxAreBothUndefined, "")
	}
	return r, nil
}

// decodePositionalRange reads [min, max] where null means the bound is absent.
func decodePositionalRange[T any](min, max any, decode valueDecoder[T]) (rangeResult[T], error) {
	var r rangeResult[T]
	var err error
	if r.min, err = decodeOptionalBound(min, decode, ErrorRangeMinIsNotNumber); err != nil {
		return r, err
	}
	if r.max, err = decodeOptionalBound(max, decode, ErrorRangeMaxIsNotNumber); err != nil {
		return r, err
	}
	if r.min == nil && r.max == nil {
		return r, newDecodeError(ErrorRangeMinAndMaxAreBothUndefined, "")
	}
	return r, nil
}

func decodeOptionalBound[T any](v any, decode valueDecoder[T], code ErrorCode) (*T, error) {
	if v == nil {
		return nil, nil
	}
	b, err := decode(v, code)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// checkNamedKeys rejects keys outside allowed. Keys are checked in sorted
// order so the reported key is deterministic.
func checkNamedKeys(named map[string]any, allowed ...string) error {
	keys := make([]string, 0, len(named))
	for k := range named {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return newDecodeError(ErrorNamedParametersHasUnknownKey, k)
		}
	}
	return nil
}

// decodeTextValue reads the value searched for by a text-contains predicate.
func decodeTextValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", newDecodeError(ErrorTextFieldContainsValueIsNotString, rawText(v))
	}
	return s, nil
}

func decodeTextAs(v any) (formula.TextContainsAsID, error) {
	s, ok := v.(string)
	if !ok {
		return 0, newDecodeError(ErrorTextFieldContainsAsIsNotString, rawText(v))
	}
	as, ok := TryDecodeTextContainsAsID(s)
	if !ok {
		return 0, newDecodeError(ErrorTextFieldContainsAsHasUnknownValue, s)
	}
	return as, nil
}

func decodeTextIgnoreCase(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, newDecodeError(ErrorTextFieldContainsIgnoreCaseIsNotBoolean, rawText(v))
	}
	return b, nil
}

// decodeTextNamed reads an object of As and IgnoreCase keys. Missing keys
// keep their defaults.
func decodeTextNamed(named map[string]any, tc *formula.TextContains) error {
	if err := checkNamedKeys(named, AsParameterName, IgnoreCaseParameterName); err != nil {
		return err
	}
	if v, ok := named[AsParameterName]; ok {
		as, err := decodeTextAs(v)
		if err != nil {
			return err
		}
		tc.As = as
	}
	if v, ok := named[IgnoreCaseParameterName]; ok {
		ic, err := decodeTextIgnoreCase(v)
		if err != nil {
			return err
		}
		tc.IgnoreCase = ic
	}
	return nil
}

// decodeTextOptions reads the parameter following the text value, which is
// either a named object or an As string.
func decodeTextOptions(v any, tc *formula.TextContains) error {
	switch p := v.(type) {
	case map[string]any:
		return decodeTextNamed(p, tc)
	case string:
		as, err := decodeTextAs(p)
		if err != nil {
			return err
		}
		tc.As = as
		return nil
	default:
		return newDecodeError(ErrorTextFieldContainsParameterIsNotAsOrNamedParameters, rawText(v))
	}
}
