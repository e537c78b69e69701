// Package semantic implements the embedding-backed context store:
// constitution articles, task patterns, rejected precedents, per-tier
// knowledge and the skills library, with k-nearest-neighbor retrieval used
// to enrich envelopes before routing.
package semantic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/hierarchy"
	chromem "github.com/philippgille/chromem-go"
)

// Collection names.
const (
	CollectionConstitution       = "constitution"
	CollectionTaskPatterns       = "task_patterns"
	CollectionRejectedPrecedents = "rejected_precedents"
	CollectionSkills             = "skills"
)

// Enrichment retrieval depths.
const (
	tierKnowledgeK = 5
	constitutionK  = 3
)

// TierKnowledgeCollection returns the per-tier knowledge collection name.
func TierKnowledgeCollection(t hierarchy.Tier) string {
	return fmt.Sprintf("tier_knowledge:%d", int(t))
}

// Hit is a single retrieval result.
type Hit struct {
	ID         string
	Content    string
	Metadata   map[string]string
	Similarity float32
}

// Store wraps an embedded chromem vector database with the fixed set of
// governance collections.
type Store struct {
	db        *chromem.DB
	embedding chromem.EmbeddingFunc
	log       *slog.Logger
}

// NewStore creates a store with the given embedding function. Pass nil to
// use the deterministic local embedder (no external calls).
func NewStore(embedding chromem.EmbeddingFunc) *Store {
	if embedding == nil {
		embedding = LocalEmbedding()
	}
	return &Store{
		db:        chromem.NewDB(),
		embedding: embedding,
		log:       slog.Default().With("component", "semantic-store"),
	}
}

// Upsert adds or replaces a document in a collection.
func (s *Store) Upsert(ctx context.Context, collection, id, text string, metadata map[string]string) error {
	col, err := s.db.GetOrCreateCollection(collection, nil, s.embedding)
	if err != nil {
		return fmt.Errorf("failed to open collection %s: %w", collection, err)
	}
	err = col.AddDocument(ctx, chromem.Document{
		ID:       id,
		Content:  text,
		Metadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert %s into %s: %w", id, collection, err)
	}
	return nil
}

// Query returns the k nearest documents of a collection for the query
// text. k is clamped to the collection size; an absent or empty collection
// yields no hits.
func (s *Store) Query(ctx context.Context, collection, query string, k int) ([]Hit, error) {
	col := s.db.GetCollection(collection, s.embedding)
	if col == nil {
		return nil, nil
	}
	if n := col.Count(); n < k {
		k = n
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := col.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{
			ID:         r.ID,
			Content:    r.Content,
			Metadata:   r.Metadata,
			Similarity: r.Similarity,
		})
	}
	return hits, nil
}

// Enrich attaches at most 5 per-tier knowledge hits and 3 constitution hits
// to a copy of the envelope. The original content is not altered; retrieval
// failures degrade to an unenriched copy.
func (s *Store) Enrich(ctx context.Context, env *bus.Envelope) (*bus.Envelope, error) {
	tier, err := hierarchy.ParseID(env.SenderID)
	if err != nil {
		return nil, err
	}

	enr := &bus.Enrichment{}

	tierHits, err := s.Query(ctx, TierKnowledgeCollection(tier), env.Content, tierKnowledgeK)
	if err != nil {
		s.log.Warn("Tier knowledge retrieval failed",
			"sender", env.SenderID, "error", err)
	}
	for _, h := range tierHits {
		enr.SemanticContext = append(enr.SemanticContext, bus.ContextHit{
			ID:         h.ID,
			Content:    h.Content,
			Similarity: h.Similarity,
			Collection: TierKnowledgeCollection(tier),
		})
	}

	constHits, err := s.Query(ctx, CollectionConstitution, env.Content, constitutionK)
	if err != nil {
		s.log.Warn("Constitution retrieval failed",
			"sender", env.SenderID, "error", err)
	}
	for _, h := range constHits {
		enr.SemanticContext = append(enr.SemanticContext, bus.ContextHit{
			ID:         h.ID,
			Content:    h.Content,
			Similarity: h.Similarity,
			Collection: CollectionConstitution,
		})
		enr.ArticleRefs = append(enr.ArticleRefs, h.ID)
	}

	return env.WithEnrichment(enr), nil
}

// ConstitutionHits returns the top-k constitution articles for an issue
// description. Used when escalating to the Council.
func (s *Store) ConstitutionHits(ctx context.Context, issue string, k int) ([]Hit, error) {
	return s.Query(ctx, CollectionConstitution, issue, k)
}

// TaskPatternHits returns prior execution patterns matching a task payload.
func (s *Store) TaskPatternHits(ctx context.Context, description string, k int) ([]Hit, error) {
	return s.Query(ctx, CollectionTaskPatterns, description, k)
}
