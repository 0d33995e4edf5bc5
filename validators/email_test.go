package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailValidator(t *testing.T) {
	require.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	require.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	require.ErrorIs(t, EmailValidator("a b@c.com"), ErrEmailInvalid)
	require.ErrorIs(t, EmailValidator("Asha <a@b.com>"), ErrEmailInvalid)
	require.NoError(t, EmailValidator("a@b.com"))
	require.NoError(t, EmailValidator("student@example.co.in"))
}
