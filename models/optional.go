package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a nullable field of a partial-update payload that remembers
// whether its key was present in the request at all.
//
//	{}                 -> Set == false            (leave the column untouched)
//	{"link": null}     -> Set == true, Value nil  (clear the column)
//	{"link": "x"}      -> Set == true, Value "x"
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// including for an explicit null.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Get returns the value and whether it is non-null.
func (o Optional[T]) Get() (T, bool) {
	if o.Value == nil {
		var zero T
		return zero, false
	}
	return *o.Value, true
}

// Ptr returns the value as a pointer, nil for null or absent.
func (o Optional[T]) Ptr() *T {
	return o.Value
}
