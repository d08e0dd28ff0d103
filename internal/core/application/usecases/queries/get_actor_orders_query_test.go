package queries_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActorOrdersQuery_Valid(t *testing.T) {
	actorID := kernel.NewUUID()

	for _, relation := range []queries.OrderRelation{queries.RelationMade, queries.RelationReceived} {
		query, err := queries.NewGetActorOrdersQuery(actorID, relation)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, actorID.IsEqual(query.ActorID()))
		assert.Equal(t, relation, query.Relation())
	}
}

func TestNewGetActorOrdersQuery_InvalidRelation(t *testing.T) {
	_, err := queries.NewGetActorOrdersQuery(kernel.NewUUID(), queries.RelationUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetActorOrdersQuery(kernel.NewUUID(), queries.OrderRelation(42))
	require.Error(t, err)
}

func TestNewGetActorOrdersQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetActorOrdersQuery(kernel.UUID{}, queries.RelationMade)
	require.Error(t, err)
}

func TestGetActorOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActorOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActorOrdersQueryIsNotConstructed)
}
