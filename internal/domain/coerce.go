package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoercedInt is an int64 that tolerates the loose typing of previously
// persisted documents: JSON numbers (floats truncated) and numeric strings
// decode to their integer value, anything else decodes to zero.
type CoercedInt int64

// UnmarshalJSON implements json.Unmarshaler. It never fails: a value that
// cannot be coerced is zeroed.
func (c *CoercedInt) UnmarshalJSON(b []byte) error {
	if v, ok := coerceInt(b); ok {
		*c = CoercedInt(v)
	} else {
		*c = 0
	}

	return nil
}

// OpAmount is an operation amount as persisted: an integer when the value
// was coercible, otherwise the raw offending input kept verbatim for audit.
type OpAmount struct {
	Value int64
	Raw   json.RawMessage
}

// AmountOf returns the amount for a coerced integer value.
func AmountOf(v int64) OpAmount {
	return OpAmount{Value: v}
}

// RawAmount returns an amount that preserves an unparsable input string.
func RawAmount(raw string) OpAmount {
	b, err := json.Marshal(raw)
	if err != nil {
		b = []byte(`""`)
	}

	return OpAmount{Raw: b}
}

// MarshalJSON implements json.Marshaler.
func (a OpAmount) MarshalJSON() ([]byte, error) {
	if a.Raw != nil {
		return a.Raw, nil
	}

	return json.Marshal(a.Value)
}

// UnmarshalJSON implements json.Unmarshaler. Coercible values become
// integers; anything else is retained as-is.
func (a *OpAmount) UnmarshalJSON(b []byte) error {
	if v, ok := coerceInt(b); ok {
		a.Value = v
		a.Raw = nil

		return nil
	}

	a.Value = 0
	a.Raw = append(json.RawMessage(nil), b...)

	return nil
}

func coerceInt(b []byte) (int64, bool) {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		return n, true
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		return int64(f), true
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v, true
		}
	}

	return 0, false
}
