package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageAdd(t *testing.T) {
	a := Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}
	b := Usage{InputTokens: 5, OutputTokens: 5, TotalTokens: 10}

	sum := a.Add(b)
	assert.Equal(t, Usage{InputTokens: 15, OutputTokens: 25, TotalTokens: 40}, sum)
}

func TestMergeUsage(t *testing.T) {
	a := &Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}
	b := &Usage{InputTokens: 5, OutputTokens: 5, TotalTokens: 10}

	tests := []struct {
		name     string
		primary  *Usage
		delegate *Usage
		want     *Usage
	}{
		{"both present", a, b, &Usage{InputTokens: 15, OutputTokens: 25, TotalTokens: 40}},
		{"delegate missing", a, nil, a},
		{"primary missing", nil, b, b},
		{"neither present", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeUsage(tt.primary, tt.delegate)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestMergeUsageReturnsFreshValue(t *testing.T) {
	a := &Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3}

	got := MergeUsage(a, nil)
	require.NotNil(t, got)
	assert.NotSame(t, a, got)

	got.InputTokens = 99
	assert.Equal(t, 1, a.InputTokens)
}

func TestArtifactTypeValid(t *testing.T) {
	for _, typ := range []ArtifactType{
		ArtifactMarketAnalysis, ArtifactRequirementsDocument, ArtifactUserStories,
		ArtifactTechnicalSpecification, ArtifactArchitectureDesign,
		ArtifactMVPScope, ArtifactUnitEconomics,
	} {
		assert.True(t, typ.Valid(), string(typ))
	}
	assert.False(t, ArtifactType("press_release").Valid())
}

func TestNewCommunication(t *testing.T) {
	comm := NewCommunication("p1", "c1", "project_manager_agent", "discovery_agent", CommDelegation, "over to you")

	assert.NotEmpty(t, comm.ID)
	assert.Equal(t, "p1", comm.ProjectID)
	assert.Equal(t, "c1", comm.ConversationID)
	assert.Equal(t, CommDelegation, comm.Type)
	assert.False(t, comm.CreatedAt.IsZero())
}
