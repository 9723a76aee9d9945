package comm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventureops/squad/core"
)

func TestInMemoryStoreAppendsInOrder(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	first := core.NewCommunication("p1", "c1", "project_manager_agent", "discovery_agent", core.CommDelegation, "handing off")
	second := core.NewCommunication("p1", "c1", "discovery_agent", "project_manager_agent", core.CommResponse, "done")
	third := core.NewCommunication("p2", "c2", "business_agent", "delivery_agent", core.CommDelegation, "scope it")

	for _, c := range []core.Communication{first, second, third} {
		id, err := store.Save(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, c.ID, id)
	}

	byProject, err := store.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	assert.Equal(t, core.CommDelegation, byProject[0].Type)
	assert.Equal(t, core.CommResponse, byProject[1].Type)

	byConversation, err := store.ListByConversation(ctx, "c2")
	require.NoError(t, err)
	require.Len(t, byConversation, 1)
	assert.Equal(t, "business_agent", byConversation[0].FromResponder)
}

func TestInMemoryStoreAssignsMissingID(t *testing.T) {
	store := NewInMemoryStore()

	id, err := store.Save(context.Background(), core.Communication{ProjectID: "p1", Type: core.CommResponse})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestInMemoryStoreEmptyListing(t *testing.T) {
	store := NewInMemoryStore()

	got, err := store.ListByProject(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}
