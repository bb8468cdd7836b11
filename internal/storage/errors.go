package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Engine.Get when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("decode error")
	// ErrStore matches every *StoreError.
	ErrStore = errors.New("store error")
)

// DecodeError reports stored bytes that do not match the expected entity shape.
type DecodeError struct {
	Kind Kind
	Key  string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("decode %s %q: %v", e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// StoreError reports an engine I/O failure. It is never retried by this layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

// WrapStore wraps err as a *StoreError for op. Nil, ErrKeyNotFound and errors
// that are already StoreErrors pass through unchanged.
func WrapStore(op string, err error) error {
	if err == nil || errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrStore) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
