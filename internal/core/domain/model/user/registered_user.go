package user

import (
	"errors"
	"time"

	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/pkg/guard"
)

// ErrRegisteredUserIsNotConstructed is returned when a RegisteredUser was not
// created through NewRegisteredUser or RestoreRegisteredUser.
var ErrRegisteredUserIsNotConstructed = errors.New(
	"RegisteredUser must be created via NewRegisteredUser constructor",
)

// RegisteredUser is an account known to the system: a human or a bot able to
// sign in. It is identified by an ID scoped to its own type, so a
// kernel.ID[RegisteredUser] cannot be confused with the identifier of any other
// aggregate.
//
// RegisteredUser follows these invariants:
//   - The identifier is non-zero
//   - The e-mail address is syntactically valid
//   - The display name, when present, is 1 to 32 trimmed characters
//   - Fields never change after construction
//
// Example usage:
//
//	u, err := user.NewRegisteredUser(kernel.NewID[user.RegisteredUser](), "user@example.com")
//	if err != nil {
//	    var vfe *errs.ValidationFailedError
//	    if errors.As(err, &vfe) {
//	        // vfe.Field == "email", vfe.Rule == "email"
//	    }
//	}
type RegisteredUser struct {
	// id uniquely identifies the user
	id kernel.ID[RegisteredUser]
	// email is the address the user registered with
	email Email
	// name is the optional display name; zero when unset
	name DisplayName
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewRegisteredUser validates id and email and returns the user.
// Every failing field is reported; the errors are joined with errors.Join.
func NewRegisteredUser(id kernel.ID[RegisteredUser], email string) (*RegisteredUser, error) {
	return RestoreRegisteredUser(id, email, "")
}

// RestoreRegisteredUser rebuilds a user from storage. An empty name means the
// user has no display name; any other value must satisfy NewDisplayName.
func RestoreRegisteredUser(id kernel.ID[RegisteredUser], email, name string) (*RegisteredUser, error) {
	u := &RegisteredUser{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *RegisteredUser) Validate() error {
	if u == nil {
		return ErrRegisteredUserIsNotConstructed
	}
	return u.guard.Validate(ErrRegisteredUserIsNotConstructed)
}

// IsEqual compares users by identifier.
func (u *RegisteredUser) IsEqual(other *RegisteredUser) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's identifier.
func (u *RegisteredUser) ID() kernel.ID[RegisteredUser] {
	return u.id
}

// Email returns the registered e-mail address.
func (u *RegisteredUser) Email() string {
	return u.email.String()
}

// Name returns the display name, or "" when none is set.
func (u *RegisteredUser) Name() string {
	return u.name.String()
}

// RegisteredAt returns the instant encoded in the user's identifier.
// It fails with kernel.ErrMissingTimestamp for identifiers that are not time-ordered.
func (u *RegisteredUser) RegisteredAt() (time.Time, error) {
	return u.id.Timestamp()
}

// WithDisplayName returns a copy of the user carrying name. The receiver is
// left unchanged.
func (u *RegisteredUser) WithDisplayName(name string) (*RegisteredUser, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	displayName, err := NewDisplayName(name)
	if err != nil {
		return nil, err
	}

	renamed := *u
	renamed.name = displayName
	return &renamed, nil
}

func (u *RegisteredUser) setID(id kernel.ID[RegisteredUser]) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *RegisteredUser) setEmail(email string) error {
	e, err := NewEmail(email)
	if err != nil {
		return err
	}
	u.email = e
	return nil
}

func (u *RegisteredUser) setName(name string) error {
	if name == "" {
		return nil
	}

	n, err := NewDisplayName(name)
	if err != nil {
		return err
	}
	u.name = n
	return nil
}
