package model

import (
	"bytes"
	"encoding/json"
)

// Optional is a three-state field for partial updates:
//
//	absent          → Set == false
//	explicit null   → Set == true, Null == true
//	explicit value  → Set == true, Null == false, Value holds it
//
// encoding/json never calls UnmarshalJSON for a key that is missing from the
// object, so a zero Optional means "not provided".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether a non-null value was supplied.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Ptr returns nil for an explicit null (or absent field) and a pointer to a
// copy of the value otherwise. Useful when writing to a nullable column.
func (o Optional[T]) Ptr() *T {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

// ValuePtr is Ptr boxed in an interface. The result is always a *T, nil when
// no value is present. The validator uses it to look through the wrapper, so
// a present zero value is still checked like any pointer field.
func (o Optional[T]) ValuePtr() any {
	return o.Ptr()
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
