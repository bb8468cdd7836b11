package storage

import (
	"github.com/google/uuid"
)

// Kind is the closed set of persisted entity kinds.
type Kind uint8

const (
	KindUser Kind = iota + 1
	KindVenue
	KindPackage
	KindEvent
	KindRegistration
)

// Kinds lists every kind in import dependency order.
var Kinds = []Kind{KindVenue, KindUser, KindPackage, KindEvent, KindRegistration}

var kindNames = map[Kind]string{
	KindUser:         "user",
	KindVenue:        "venue",
	KindPackage:      "package",
	KindEvent:        "event",
	KindRegistration: "registration",
}

// String returns the kind name used in keys.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Prefix returns the scan prefix of the kind, e.g. "event:".
func (k Kind) Prefix() []byte {
	return []byte(k.String() + ":")
}

// Key returns the primary key of the record of kind k with the given id.
func (k Kind) Key(id uuid.UUID) []byte {
	return []byte(k.String() + ":" + id.String())
}

// Index is a secondary index: a non-identifier field of a kind mapped to the owning id.
type Index struct {
	kind  Kind
	field string
}

// UserEmailIndex maps a user's email to the user id.
var UserEmailIndex = Index{kind: KindUser, field: "email"}

// Indexes lists every secondary index.
var Indexes = []Index{UserEmailIndex}

// Prefix returns the scan prefix of the index, e.g. "user_email:".
func (i Index) Prefix() []byte {
	return []byte(i.kind.String() + "_" + i.field + ":")
}

// Key returns the index key for value.
func (i Index) Key(value string) []byte {
	return append(i.Prefix(), value...)
}

// IndexValue encodes the id stored under an index key.
func IndexValue(id uuid.UUID) []byte {
	return []byte(id.String())
}

// ParseIndexValue decodes the id stored under an index key.
func ParseIndexValue(kind Kind, b []byte) (uuid.UUID, error) {
	id, err := uuid.ParseBytes(b)
	if err != nil {
		return uuid.Nil, &DecodeError{Kind: kind, Err: err}
	}
	return id, nil
}
