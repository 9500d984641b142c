package user

const emailRules = "required,email"

// Email is a syntactically valid e-mail address. It is stored exactly as given.
type Email struct {
	value string
}

// NewEmail validates s and wraps it. Failures are errs.ValidationFailedError
// with Field "email" and Rule "required" or "email".
func NewEmail(s string) (Email, error) {
	if err := checkField("email", s, emailRules); err != nil {
		return Email{}, err
	}
	return Email{value: s}, nil
}

// String returns the address.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was never set.
func (e Email) IsZero() bool {
	return e.value == ""
}
