package kernel

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"accounts/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// canonicalIDLength is the length of "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
	canonicalIDLength = 36

	// timeOrderedVersion is the UUID version whose top 48 bits hold Unix milliseconds.
	timeOrderedVersion = 7
)

var (
	// ErrIDIsNotConstructed is returned when validating a zero-value ID.
	ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID, ParseID, IDFromUUID, or IDFromBytes")

	// ErrMissingTimestamp is returned by Timestamp for identifiers whose version
	// and variant bits do not describe a time-ordered value. It unwraps to
	// errs.ErrVersionIsInvalid.
	ErrMissingTimestamp = errs.NewVersionIsInvalidErrorWithCause(
		"id",
		errors.New("identifier version does not carry a timestamp"),
	)
)

// ID is an identifier for entities of kind E. It wraps a UUIDv7 value (RFC 9562):
// a 48-bit Unix millisecond timestamp followed by version/variant bits and 74
// random bits.
//
// E is a phantom type parameter. It only exists at compile time, so ID[Order]
// and ID[RegisteredUser] have the same 16-byte layout but are different types:
// passing one where the other is expected does not compile, and neither does an
// explicit conversion between them, because the zero-length [0]*E field makes
// the underlying struct types differ.
//
// The zero value of ID is invalid; Validate reports it. IDs are immutable,
// comparable with ==, and safe for concurrent use.
//
// Example usage:
//
//	type RegisteredUser struct {
//	    id kernel.ID[RegisteredUser]
//	}
//
//	id := kernel.NewID[RegisteredUser]()
//	parsed, err := kernel.ParseID[RegisteredUser](id.String())
//	if err != nil {
//	    // errors.Is(err, errs.ErrInvalidFormat)
//	}
type ID[E any] struct {
	_     [0]*E
	value uuid.UUID
}

// NewID generates a fresh time-ordered identifier from the current wall clock.
// Within a process, identifiers from consecutive calls are strictly increasing.
//
// NewID panics only if the system random source fails, which leaves no way to
// produce a unique value.
func NewID[E any]() ID[E] {
	return ID[E]{value: uuid.Must(uuid.NewV7())}
}

// ParseID decodes the canonical textual form: 36 characters, hexadecimal digits
// in 8-4-4-4-12 groups separated by hyphens. Hex digits may be upper or lower
// case. Braced, URN and unhyphenated forms are rejected.
//
// Any version and variant is accepted, so identifiers minted by other systems
// still parse; use Timestamp to find out whether the value is time-ordered.
//
// The returned error wraps errs.ErrInvalidFormat.
func ParseID[E any](s string) (ID[E], error) {
	if len(s) != canonicalIDLength {
		return ID[E]{}, errs.NewInvalidFormatErrorWithCause(
			"id", s, fmt.Errorf("length is %d, want %d", len(s), canonicalIDLength),
		)
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return ID[E]{}, errs.NewInvalidFormatErrorWithCause("id", s, err)
	}
	return ID[E]{value: u}, nil
}

// MustParseID is like ParseID but panics on malformed input.
// Use only for constants and tests.
func MustParseID[E any](s string) ID[E] {
	id, err := ParseID[E](s)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromUUID wraps a UUID read from storage or another service.
// The nil UUID is rejected with ErrIDIsNotConstructed.
func IDFromUUID[E any](u uuid.UUID) (ID[E], error) {
	id := ID[E]{value: u}
	if err := id.Validate(); err != nil {
		return ID[E]{}, err
	}
	return id, nil
}

// IDFromBytes builds an ID from its 16-byte big-endian representation.
func IDFromBytes[E any](b []byte) (ID[E], error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return ID[E]{}, errs.NewInvalidFormatErrorWithCause("id", fmt.Sprintf("%x", b), err)
	}
	return IDFromUUID[E](u)
}

// String returns the canonical lowercase form, e.g.
// "01890a5d-ac96-774b-bcce-b302099a8057". ParseID(id.String()) == id.
func (id ID[E]) String() string {
	return id.value.String()
}

// GoString renders the canonical form for %#v as well.
func (id ID[E]) GoString() string {
	return id.value.String()
}

// UUID returns the wrapped value for integration with libraries that speak uuid.UUID.
func (id ID[E]) UUID() uuid.UUID {
	return id.value
}

// Version reports the UUID version nibble. Identifiers from NewID report 7.
func (id ID[E]) Version() int {
	return int(id.value.Version())
}

// Timestamp returns the UTC instant embedded in the 48 most significant bits.
// The result has millisecond precision.
//
// Identifiers that are not time-ordered (for example a version 4 value accepted
// by ParseID) have no timestamp; for those Timestamp returns an error matching
// ErrMissingTimestamp.
func (id ID[E]) Timestamp() (time.Time, error) {
	if id.value.Version() != timeOrderedVersion || id.value.Variant() != uuid.RFC4122 {
		return time.Time{}, fmt.Errorf("%w: version %d", ErrMissingTimestamp, id.Version())
	}

	ms := binary.BigEndian.Uint64(id.value[:8]) >> 16
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// IsEqual reports whether both identifiers hold the same 128-bit value.
func (id ID[E]) IsEqual(other ID[E]) bool {
	return id.value == other.value
}

// Compare orders identifiers by their 16 bytes, most significant first, and
// returns -1, 0 or +1. For time-ordered identifiers this follows creation time
// at millisecond granularity.
func (id ID[E]) Compare(other ID[E]) int {
	return bytes.Compare(id.value[:], other.value[:])
}

// IsZero reports whether id is the zero value.
func (id ID[E]) IsZero() bool {
	return id.value == uuid.Nil
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID[E]) Validate() error {
	if id.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (id ID[E]) MarshalText() ([]byte, error) {
	return id.value.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler with the rules of ParseID.
func (id *ID[E]) UnmarshalText(text []byte) error {
	parsed, err := ParseID[E](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. The zero ID is stored as NULL.
func (id ID[E]) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil //nolint:nilnil // NULL column
	}
	return id.value.String(), nil
}

// Scan implements sql.Scanner for uuid columns returned as text or 16 raw bytes.
// Text must be in the canonical 36-character form accepted by ParseID.
// NULL scans to the zero ID.
func (id *ID[E]) Scan(src any) error {
	switch s := src.(type) {
	case string:
		return id.scanText(s)
	case []byte:
		if len(s) != len(uuid.UUID{}) {
			return id.scanText(string(s))
		}
	}

	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return errs.NewInvalidFormatErrorWithCause("id", fmt.Sprintf("%v", src), err)
	}
	*id = ID[E]{value: u}
	return nil
}

func (id *ID[E]) scanText(s string) error {
	parsed, err := ParseID[E](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
