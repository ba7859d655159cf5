package kernel_test

import (
	"testing"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		email, err := kernel.NewEmail("  Jane.Doe@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", email.String())
		assert.True(t, email.IsEqual(kernel.RestoreEmail("jane.doe@example.com")))
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.NewEmail("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"jane", "jane@", "@example.com"} {
			_, err := kernel.NewEmail(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestNewContact(t *testing.T) {
	email, err := kernel.NewEmail("jane@example.com")
	require.NoError(t, err)

	t.Run("should trim and keep all fields", func(t *testing.T) {
		c, err := kernel.NewContact(" Jane ", email, " +1 555 0100 ", " 1 Main St ")

		require.NoError(t, err)
		assert.Equal(t, "Jane", c.Name())
		assert.Equal(t, "jane@example.com", c.Email().String())
		assert.Equal(t, "+1 555 0100", c.Phone())
		assert.Equal(t, "1 Main St", c.Address())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := kernel.NewContact("", kernel.Email{}, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"name", "email", "phone", "address"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}
