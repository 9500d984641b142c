package user

import (
	"fmt"
	"strings"
)

// MaxDisplayNameLength is the maximum number of characters in a display name
// after surrounding whitespace is trimmed.
const MaxDisplayNameLength = 32

//nolint:gochecknoglobals // derived from MaxDisplayNameLength once
var displayNameRules = fmt.Sprintf("required,max=%d", MaxDisplayNameLength)

// DisplayName is the human-readable name shown for a user.
type DisplayName struct {
	value string
}

// NewDisplayName trims s and checks that 1 to MaxDisplayNameLength characters remain.
func NewDisplayName(s string) (DisplayName, error) {
	trimmed := strings.TrimSpace(s)
	if err := checkField("name", trimmed, displayNameRules); err != nil {
		return DisplayName{}, err
	}
	return DisplayName{value: trimmed}, nil
}

// String returns the trimmed name.
func (n DisplayName) String() string {
	return n.value
}

// IsZero reports whether no name was set.
func (n DisplayName) IsZero() bool {
	return n.value == ""
}
