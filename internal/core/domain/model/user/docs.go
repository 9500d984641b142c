// Package user provides the RegisteredUser aggregate: an account that exists in
// the system and can sign in.
//
// The package includes:
//   - RegisteredUser: the aggregate root, identified by kernel.ID[RegisteredUser]
//   - Email: an e-mail address checked against RFC 5322 syntax
//   - DisplayName: an optional trimmed name of 1 to 32 characters
//
// Key business rules:
//   - A user always has a non-zero identifier and a syntactically valid e-mail
//   - Construction fails with errs.ValidationFailedError naming the field and rule
//   - Users are immutable; WithDisplayName returns a new value
package user
