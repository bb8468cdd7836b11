package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Record is an entity that can be stored under a primary key.
type Record interface {
	RecordID() uuid.UUID
}

var errTrailingData = errors.New("trailing data after record")

// ErrMissingID is returned by Encode and Decode for a record whose id is uuid.Nil.
var ErrMissingID = errors.New("record has no id")

// Encode returns the stored byte form of r. A record without an id is rejected.
func Encode(kind Kind, r Record) ([]byte, error) {
	if r.RecordID() == uuid.Nil {
		return nil, fmt.Errorf("encode %s: %w", kind, ErrMissingID)
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	return b, nil
}

// Decode parses data produced by Encode into dst, which must be a pointer to
// the entity of the given kind. Unknown fields, unknown enum values, trailing
// bytes and a missing id are rejected.
func Decode(kind Kind, key, data []byte, dst Record) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &DecodeError{Kind: kind, Key: string(key), Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &DecodeError{Kind: kind, Key: string(key), Err: errTrailingData}
	}
	if dst.RecordID() == uuid.Nil {
		return &DecodeError{Kind: kind, Key: string(key), Err: ErrMissingID}
	}
	return nil
}
