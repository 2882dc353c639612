package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	actor, err := user.NewUser(kernel.NewUUID(), user.Customer)
	require.NoError(t, err)

	status := order.Cooking
	query, err := queries.NewGetOrdersQuery(actor, &status)
	require.NoError(t, err)
	assert.Equal(t, actor, query.Actor())
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Cooking, *query.Status())
}

func TestNewGetOrdersQuery_NilStatusAllowed(t *testing.T) {
	actor, err := user.NewUser(kernel.NewUUID(), user.Owner)
	require.NoError(t, err)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	require.NoError(t, err)
	assert.Nil(t, query.Status())
}

func TestNewGetOrdersQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(user.User{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserIsNotConstructed)
}

func TestNewGetOrdersQuery_InvalidStatus(t *testing.T) {
	actor, err := user.NewUser(kernel.NewUUID(), user.Customer)
	require.NoError(t, err)

	status := order.Unknown
	_, err = queries.NewGetOrdersQuery(actor, &status)
	require.Error(t, err)
}
