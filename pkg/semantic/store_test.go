package semantic

import (
	"context"
	"fmt"
	"testing"

	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAndQuery(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, CollectionConstitution, "art-1",
		"Article 1: agents must not delete production data", map[string]string{"article": "1"}))
	require.NoError(t, s.Upsert(ctx, CollectionConstitution, "art-2",
		"Article 2: budget overruns require council approval", map[string]string{"article": "2"}))

	hits, err := s.Query(ctx, CollectionConstitution, "delete production data", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "art-1", hits[0].ID)
	assert.Equal(t, "1", hits[0].Metadata["article"])
}

func TestUpsertReplacesDocument(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, CollectionSkills, "skill-1", "parse csv files", nil))
	require.NoError(t, s.Upsert(ctx, CollectionSkills, "skill-1", "parse csv files with headers", nil))

	hits, err := s.Query(ctx, CollectionSkills, "csv", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "parse csv files with headers", hits[0].Content)
}

func TestQueryClampsKToCollectionSize(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, CollectionTaskPatterns, "p1", "retry with backoff", nil))

	hits, err := s.Query(ctx, CollectionTaskPatterns, "retry", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestQueryUnknownCollection(t *testing.T) {
	s := NewStore(nil)
	hits, err := s.Query(context.Background(), "no_such_collection", "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestEnrichAttachesContextWithoutAlteringContent(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	tierCol := TierKnowledgeCollection(hierarchy.TierTask)
	for i := 0; i < 7; i++ {
		require.NoError(t, s.Upsert(ctx, tierCol, fmt.Sprintf("know-%d", i),
			fmt.Sprintf("task knowledge entry %d about data processing", i), nil))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, s.Upsert(ctx, CollectionConstitution, fmt.Sprintf("art-%d", i),
			fmt.Sprintf("Article %d about data processing limits", i), nil))
	}

	env, err := bus.NewEnvelope("30001", "20001", hierarchy.DirectionUp, bus.TypeIntent,
		"how should I process this data", nil)
	require.NoError(t, err)

	enriched, err := s.Enrich(ctx, env)
	require.NoError(t, err)

	assert.Nil(t, env.Enrichment, "original envelope untouched")
	assert.Equal(t, env.Content, enriched.Content)
	require.NotNil(t, enriched.Enrichment)

	var tierHits, constHits int
	for _, h := range enriched.Enrichment.SemanticContext {
		switch h.Collection {
		case tierCol:
			tierHits++
		case CollectionConstitution:
			constHits++
		}
	}
	assert.Equal(t, 5, tierHits, "at most k=5 tier hits")
	assert.Equal(t, 3, constHits, "at most k=3 constitution hits")
	assert.Len(t, enriched.Enrichment.ArticleRefs, 3)
}

func TestEnrichWithEmptyStore(t *testing.T) {
	s := NewStore(nil)

	env, err := bus.NewEnvelope("30001", "20001", hierarchy.DirectionUp, bus.TypeIntent, "hello", nil)
	require.NoError(t, err)

	enriched, err := s.Enrich(context.Background(), env)
	require.NoError(t, err)
	require.NotNil(t, enriched.Enrichment)
	assert.Empty(t, enriched.Enrichment.SemanticContext)
}
