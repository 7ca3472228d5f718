package keyed

import (
	"math"
	"strconv"
	"strings"

	"github.com/gostonefire/hashtable/crt"
)

// Kind - Discriminates the variants a Key can hold
type Kind uint8

const (
	// Invalid - The zero Key, it can neither be hashed nor stored
	Invalid Kind = iota
	// Integer - Key holding an int64
	Integer
	// String - Key holding a string
	String
)

// Key - Tagged variant holding either an integer or a string. Build it with Int, Str or FromAny.
type Key struct {
	kind Kind
	i    int64
	s    string
}

// Int - Returns an integer key
func Int(i int64) Key {
	return Key{kind: Integer, i: i}
}

// Str - Returns a string key
func Str(s string) Key {
	return Key{kind: String, s: s}
}

// FromAny - Returns a key built from any Go integer type or a string.
// Anything else results in an error of type crt.InvalidKeyType.
func FromAny(v any) (key Key, err error) {
	switch k := v.(type) {
	case Key:
		if k.kind == Invalid {
			err = crt.NewInvalidKeyType(v)
			return
		}
		key = k
	case string:
		key = Str(k)
	case int:
		key = Int(int64(k))
	case int8:
		key = Int(int64(k))
	case int16:
		key = Int(int64(k))
	case int32:
		key = Int(int64(k))
	case int64:
		key = Int(k)
	case uint8:
		key = Int(int64(k))
	case uint16:
		key = Int(int64(k))
	case uint32:
		key = Int(int64(k))
	case uint:
		key, err = fromUint(uint64(k), v)
	case uint64:
		key, err = fromUint(k, v)
	default:
		err = crt.NewInvalidKeyType(v)
	}

	return
}

// fromUint - Unsigned values that do not fit in an int64 can't be represented as a key
func fromUint(u uint64, v any) (key Key, err error) {
	if u > math.MaxInt64 {
		err = crt.NewInvalidKeyType(v)
		return
	}
	key = Int(int64(u))
	return
}

// Kind - Returns which variant the key holds
func (K Key) Kind() Kind {
	return K.kind
}

// IsValid - Returns true if the key holds an integer or a string
func (K Key) IsValid() bool {
	return K.kind == Integer || K.kind == String
}

// IntValue - Returns the integer held, ok is false for any other variant
func (K Key) IntValue() (i int64, ok bool) {
	return K.i, K.kind == Integer
}

// StrValue - Returns the string held, ok is false for any other variant
func (K Key) StrValue() (s string, ok bool) {
	return K.s, K.kind == String
}

// Equal - Returns true if both keys are of the same variant holding the same value
func (K Key) Equal(other Key) bool {
	return K == other
}

// Compare - Total order over keys: invalid < integers < strings, integers numerically and strings lexicographically.
// Returns -1, 0 or 1.
func (K Key) Compare(other Key) int {
	if K.kind != other.kind {
		if K.kind < other.kind {
			return -1
		}
		return 1
	}

	switch K.kind {
	case Integer:
		switch {
		case K.i < other.i:
			return -1
		case K.i > other.i:
			return 1
		}
	case String:
		return strings.Compare(K.s, other.s)
	}

	return 0
}

// String - Renders the key value
func (K Key) String() string {
	switch K.kind {
	case Integer:
		return strconv.FormatInt(K.i, 10)
	case String:
		return K.s
	default:
		return "<invalid>"
	}
}
