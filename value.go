package repoconf

import "fmt"

// Kind identifies which alternative a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindStringList
	KindBool
	KindInt
	KindInt64
	KindUint64
	KindIPResolve
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringList:
		return "string list"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindIPResolve:
		return "ip resolve mode"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IPResolve selects which IP protocol family mirror connections use.
type IPResolve int

const (
	IPResolveWhatever IPResolve = iota
	IPResolveV4
	IPResolveV6
)

func (r IPResolve) String() string {
	switch r {
	case IPResolveV4:
		return "ipv4"
	case IPResolveV6:
		return "ipv6"
	default:
		return "whatever"
	}
}

func parseIPResolve(text string) (IPResolve, bool) {
	switch text {
	case "ipv4":
		return IPResolveV4, true
	case "ipv6":
		return IPResolveV6, true
	case "whatever":
		return IPResolveWhatever, true
	default:
		return IPResolveWhatever, false
	}
}

// Value is a tagged union over the kinds an option can hold. Construct one
// with the *Value functions and extract with the kind-checked getters; the
// zero Value holds an empty string.
type Value struct {
	kind Kind
	str  string
	list []string
	b    bool
	i64  int64
	u64  uint64
	ip   IPResolve
}

// StringValue wraps a text value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ListValue wraps a list-of-text value.
func ListValue(list []string) Value { return Value{kind: KindStringList, list: list} }

// BoolValue wraps a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue wraps a 32-bit signed value.
func IntValue(n int32) Value { return Value{kind: KindInt, i64: int64(n)} }

// Int64Value wraps a 64-bit signed value.
func Int64Value(n int64) Value { return Value{kind: KindInt64, i64: n} }

// Uint64Value wraps a 64-bit unsigned value.
func Uint64Value(n uint64) Value { return Value{kind: KindUint64, u64: n} }

// IPResolveValue wraps an IP resolve mode.
func IPResolveValue(r IPResolve) Value { return Value{kind: KindIPResolve, ip: r} }

// Kind reports which alternative the value holds.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string alternative.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// List returns the string-list alternative.
func (v Value) List() ([]string, bool) { return v.list, v.kind == KindStringList }

// Bool returns the boolean alternative.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the 32-bit signed alternative.
func (v Value) Int() (int32, bool) { return int32(v.i64), v.kind == KindInt }

// Int64 returns the 64-bit signed alternative.
func (v Value) Int64() (int64, bool) { return v.i64, v.kind == KindInt64 }

// Uint64 returns the 64-bit unsigned alternative.
func (v Value) Uint64() (uint64, bool) { return v.u64, v.kind == KindUint64 }

// IPResolve returns the IP resolve mode alternative.
func (v Value) IPResolve() (IPResolve, bool) { return v.ip, v.kind == KindIPResolve }
