package services

import (
	"context"
	"fmt"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/pkg/keypool"
	"github.com/google/uuid"
)

// KeyStoreService is the database-backed key store for the provider key
// pool. Secrets are stored encrypted; this service never decrypts them.
type KeyStoreService struct {
	client *ent.Client
}

// NewKeyStoreService creates a new KeyStoreService.
func NewKeyStoreService(client *ent.Client) *KeyStoreService {
	return &KeyStoreService{client: client}
}

// CreateKey registers a new provider key. An empty id is replaced with a
// generated one; the created key is returned.
func (s *KeyStoreService) CreateKey(ctx context.Context, k *keypool.Key) (*keypool.Key, error) {
	if k.Provider == "" {
		return nil, NewValidationError("provider", "provider is required")
	}
	if k.EncryptedSecret == "" {
		return nil, NewValidationError("encrypted_secret", "secret is required")
	}
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	if k.Status == "" {
		k.Status = keypool.StatusOK
	}

	create := s.client.APIKey.Create().
		SetID(k.ID).
		SetProvider(k.Provider).
		SetEncryptedSecret(k.EncryptedSecret).
		SetPriority(k.Priority).
		SetConsecutiveFailures(k.ConsecutiveFailures).
		SetMonthlyBudget(k.MonthlyBudget).
		SetCurrentSpend(k.CurrentSpend).
		SetActive(k.Active).
		SetStatus(apikey.Status(k.Status))
	if !k.LastSpendReset.IsZero() {
		create.SetLastSpendReset(k.LastSpendReset)
	}
	if k.LastFailureAt != nil {
		create.SetLastFailureAt(*k.LastFailureAt)
	}
	if k.CooldownUntil != nil {
		create.SetCooldownUntil(*k.CooldownUntil)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("api key %s: %w", k.ID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}
	return keyFromRow(row), nil
}

// Get returns the key by id.
func (s *KeyStoreService) Get(ctx context.Context, id string) (*keypool.Key, error) {
	row, err := s.client.APIKey.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("api key %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get api key %s: %w", id, err)
	}
	return keyFromRow(row), nil
}

// ListByProvider returns all keys for a provider.
func (s *KeyStoreService) ListByProvider(ctx context.Context, provider string) ([]*keypool.Key, error) {
	rows, err := s.client.APIKey.Query().
		Where(apikey.Provider(provider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys for %s: %w", provider, err)
	}
	return keysFromRows(rows), nil
}

// ListAll returns every key.
func (s *KeyStoreService) ListAll(ctx context.Context) ([]*keypool.Key, error) {
	rows, err := s.client.APIKey.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keysFromRows(rows), nil
}

// Update persists the key's mutable accounting fields.
func (s *KeyStoreService) Update(ctx context.Context, k *keypool.Key) error {
	upd := s.client.APIKey.UpdateOneID(k.ID).
		SetPriority(k.Priority).
		SetConsecutiveFailures(k.ConsecutiveFailures).
		SetMonthlyBudget(k.MonthlyBudget).
		SetCurrentSpend(k.CurrentSpend).
		SetActive(k.Active).
		SetStatus(apikey.Status(k.Status))
	if !k.LastSpendReset.IsZero() {
		upd.SetLastSpendReset(k.LastSpendReset)
	}
	if k.LastFailureAt != nil {
		upd.SetLastFailureAt(*k.LastFailureAt)
	} else {
		upd.ClearLastFailureAt()
	}
	if k.CooldownUntil != nil {
		upd.SetCooldownUntil(*k.CooldownUntil)
	} else {
		upd.ClearCooldownUntil()
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("api key %s: %w", k.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update api key %s: %w", k.ID, err)
	}
	return nil
}

func keyFromRow(row *ent.APIKey) *keypool.Key {
	k := &keypool.Key{
		ID:                  row.ID,
		Provider:            row.Provider,
		EncryptedSecret:     row.EncryptedSecret,
		Priority:            row.Priority,
		ConsecutiveFailures: row.ConsecutiveFailures,
		MonthlyBudget:       row.MonthlyBudget,
		CurrentSpend:        row.CurrentSpend,
		LastSpendReset:      row.LastSpendReset,
		Active:              row.Active,
		Status:              keypool.Status(row.Status),
	}
	if row.LastFailureAt != nil {
		t := *row.LastFailureAt
		k.LastFailureAt = &t
	}
	if row.CooldownUntil != nil {
		t := *row.CooldownUntil
		k.CooldownUntil = &t
	}
	return k
}

func keysFromRows(rows []*ent.APIKey) []*keypool.Key {
	out := make([]*keypool.Key, 0, len(rows))
	for _, row := range rows {
		out = append(out, keyFromRow(row))
	}
	return out
}
