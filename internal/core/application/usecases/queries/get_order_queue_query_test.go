package queries_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQueueQuery(t *testing.T) {
	query := queries.NewGetOrderQueueQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetOrderQueueQuery
	require.Error(t, zero.Validate())
}

func TestNewGetMenuQuery(t *testing.T) {
	query := queries.NewGetMenuQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetMenuQuery
	require.Error(t, zero.Validate())
}
