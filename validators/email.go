// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"net/mail"
)

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")
)

func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	addr, err := mail.ParseAddress(e)
	if err != nil {
		return ErrEmailInvalid
	}

	// ParseAddress also accepts display-name forms like "Asha <a@b.com>".
	// Only the bare address may be stored, it is matched exactly later.
	if addr.Address != e {
		return ErrEmailInvalid
	}

	return nil
}
