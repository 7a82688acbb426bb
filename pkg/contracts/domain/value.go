package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// ValueKind identifies the scalar type held by a Value
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// String returns the kind name used in logs
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "null"
	}
}

// TimeLayout is the string form of a Time value when it is passed through untouched
const TimeLayout = "2006-01-02 15:04:05"

// Value is a single spreadsheet cell as delivered by the tabular source.
// The zero Value is null.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	t    time.Time
}

// Null returns the absent value
func Null() Value { return Value{} }

// StringValue wraps a text cell
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a numeric cell
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue wraps a boolean cell
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// TimeValue wraps a date or datetime cell
func TimeValue(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind reports the scalar type
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the cell was empty or the column was missing
func (v Value) IsNull() bool { return v.kind == KindNull }

// Number returns the numeric payload and whether the value is a number
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and whether the value is a bool
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Time returns the time payload and whether the value is a time
func (v Value) Time() (time.Time, bool) { return v.t, v.kind == KindTime }

// String renders the value the way it is used as a map key or a label.
// Integral numbers render without a fractional part and null renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(TimeLayout)
	default:
		return ""
	}
}

// MarshalJSON writes JSON-native kinds as-is; anything JSON cannot carry
// (times, non-finite numbers) is written as its string form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return marshalRaw(v.str)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return marshalRaw(v.String())
		}
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindTime:
		return marshalRaw(v.String())
	default:
		return []byte("null"), nil
	}
}
