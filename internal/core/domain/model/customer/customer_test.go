package customer_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "Ada", "ada@example.com", "+34 600 000 000")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Ada", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "+34 600 000 000", c.Phone())
	})

	t.Run("phone is optional", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "Ada", "ada@example.com", "")

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := customer.NewCustomer(invalidID, "Ada", "ada@example.com", "")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "", "ada@example.com", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "Ada", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})
}

func TestCustomer_Update(t *testing.T) {
	t.Run("should replace all fields", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "111")

		err := c.Update("Grace", "grace@example.com", "222")

		require.NoError(t, err)
		assert.Equal(t, "Grace", c.Name())
		assert.Equal(t, "grace@example.com", c.Email())
		assert.Equal(t, "222", c.Phone())
	})

	t.Run("should keep entity unchanged on invalid update", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "111")

		err := c.Update("", "grace@example.com", "222")

		require.Error(t, err)
		assert.Equal(t, "Ada", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "111", c.Phone())
	})
}

func TestCustomer_ChangeEmail(t *testing.T) {
	c, _ := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "")

	require.NoError(t, c.ChangeEmail("lovelace@example.com"))
	assert.Equal(t, "lovelace@example.com", c.Email())

	require.ErrorIs(t, c.ChangeEmail(""), errs.ErrValueIsRequired)
	assert.Equal(t, "lovelace@example.com", c.Email())
}

func TestCustomer_Validate(t *testing.T) {
	var zero customer.Customer
	require.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)

	var nilCustomer *customer.Customer
	require.ErrorIs(t, nilCustomer.Validate(), customer.ErrCustomerIsNotConstructed)
}
