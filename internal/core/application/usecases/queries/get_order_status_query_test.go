package queries_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery_Success(t *testing.T) {
	code := kernel.NewTrackingCode()

	query, err := queries.NewGetOrderStatusQuery(code)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.Code().IsEqual(code))
}

func TestNewGetOrderStatusQuery_InvalidCode(t *testing.T) {
	_, err := queries.NewGetOrderStatusQuery(kernel.TrackingCode{})
	require.Error(t, err)
}

func TestGetOrderStatusQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetOrderStatusQuery
	require.Error(t, query.Validate())
}
