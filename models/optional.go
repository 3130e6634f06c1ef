// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// OptionalState describes whether a field of a partial update was supplied.
type OptionalState uint8

const (
	// Unset means the key was absent from the payload; the stored value
	// must be left untouched.
	Unset OptionalState = iota
	// Null means the key was present with a JSON null value.
	Null
	// Value means the key was present with a concrete value.
	Value
)

// Optional is a tri-state field used by PATCH payloads. It distinguishes
// an omitted key from an explicit null, which a plain pointer cannot do.
//
// The zero value is Unset. encoding/json only calls UnmarshalJSON for keys
// that are present in the document, so an absent key stays Unset.
type Optional[T any] struct {
	state OptionalState
	value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{state: Value, value: v}
}

// NullOf returns an Optional explicitly set to null.
func NullOf[T any]() Optional[T] {
	return Optional[T]{state: Null}
}

// State reports the state of the field.
func (o Optional[T]) State() OptionalState { return o.state }

// IsSet reports whether the field was supplied, as a value or as null.
func (o Optional[T]) IsSet() bool { return o.state != Unset }

// IsNull reports whether the field was explicitly set to null.
func (o Optional[T]) IsNull() bool { return o.state == Null }

// Get returns the value and true when the field holds a value.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == Value
}

// Ptr collapses the field to a storage-level nullable: nil for Null,
// a pointer to the value otherwise. Callers check IsSet first.
func (o Optional[T]) Ptr() *T {
	if o.state != Value {
		return nil
	}
	v := o.value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.state, o.value = Null, zero
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	o.state, o.value = Value, v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != Value {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
