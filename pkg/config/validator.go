package config

import (
	"fmt"

	"github.com/agentium/agentium/pkg/hierarchy"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → models → critics → constitution → system
	// This ensures dependencies are validated before dependents

	if err := v.validateProviders(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}

	if err := v.validateModels(); err != nil {
		return fmt.Errorf("model validation failed: %w", err)
	}

	if err := v.validateCritics(); err != nil {
		return fmt.Errorf("critic validation failed: %w", err)
	}

	if err := v.validateConstitution(); err != nil {
		return fmt.Errorf("constitution validation failed: %w", err)
	}

	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateProviders() error {
	for name, provider := range v.cfg.ProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}

		// Hosted providers authenticate via an API key; local ollama does not.
		if provider.Type != ProviderTypeOllama && provider.APIKeyEnv == "" {
			return NewValidationError("provider", name, "api_key_env", ErrMissingRequiredField)
		}

		if provider.Type == ProviderTypeOllama && provider.BaseURL == "" {
			return NewValidationError("provider", name, "base_url", ErrMissingRequiredField)
		}

		if provider.DefaultModel == "" {
			return NewValidationError("provider", name, "default_model", ErrMissingRequiredField)
		}
	}

	return nil
}

func (v *ConfigValidator) validateModels() error {
	for name, model := range v.cfg.ModelRegistry.GetAll() {
		if model.Provider == "" {
			return NewValidationError("model", name, "provider", ErrMissingRequiredField)
		}

		if !v.cfg.ProviderRegistry.Has(model.Provider) {
			return NewValidationError("model", name, "provider",
				fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, model.Provider))
		}

		if model.ContextWindow < 0 {
			return NewValidationError("model", name, "context_window", fmt.Errorf("must be non-negative"))
		}

		if model.MaxOutputTokens < 0 {
			return NewValidationError("model", name, "max_output_tokens", fmt.Errorf("must be non-negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateCritics() error {
	for specialty, ids := range v.cfg.Critics {
		if !specialty.IsValid() {
			return NewValidationError("critic", string(specialty), "", fmt.Errorf("%w: unknown specialty", ErrInvalidValue))
		}

		for _, id := range ids {
			tier, err := hierarchy.ParseID(id)
			if err != nil {
				return NewValidationError("critic", string(specialty), "agents",
					fmt.Errorf("invalid agent id '%s': %w", id, err))
			}
			// Critics sit on the council tier.
			if tier != hierarchy.TierCouncil {
				return NewValidationError("critic", string(specialty), "agents",
					fmt.Errorf("agent '%s' is %s tier, critics must be council tier", id, tier))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateConstitution() error {
	if len(v.cfg.Constitution) == 0 {
		return NewValidationError("constitution", "", "", fmt.Errorf("at least one document required"))
	}

	seen := make(map[string]bool, len(v.cfg.Constitution))
	for _, doc := range v.cfg.Constitution {
		if doc.Name == "" {
			return NewValidationError("constitution", doc.Name, "name", ErrMissingRequiredField)
		}
		if seen[doc.Name] {
			return NewValidationError("constitution", doc.Name, "", fmt.Errorf("duplicate document name"))
		}
		seen[doc.Name] = true
		if doc.Text == "" {
			return NewValidationError("constitution", doc.Name, "text", fmt.Errorf("document resolved to empty text"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateSystem() error {
	if v.cfg.Defaults != nil {
		d := v.cfg.Defaults
		if d.Provider != "" && !v.cfg.ProviderRegistry.Has(d.Provider) {
			return NewValidationError("defaults", "defaults", "provider",
				fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, d.Provider))
		}
		if d.MaxTaskRetries != nil && *d.MaxTaskRetries < 0 {
			return NewValidationError("defaults", "defaults", "max_task_retries", fmt.Errorf("must be non-negative"))
		}
		if d.CriticMaxRetries != nil && *d.CriticMaxRetries < 1 {
			return NewValidationError("defaults", "defaults", "critic_max_retries", fmt.Errorf("must be at least 1"))
		}
		if d.DailyTokenLimit < 0 || d.DailyCostLimit < 0 {
			return NewValidationError("defaults", "defaults", "daily limits", fmt.Errorf("must be non-negative"))
		}
	}

	if sb := v.cfg.Sandbox; sb != nil {
		if sb.NetworkMode != "none" && sb.NetworkMode != "bridge" {
			return NewValidationError("sandbox", "sandbox", "network_mode",
				fmt.Errorf("%w: %s", ErrInvalidValue, sb.NetworkMode))
		}
		if sb.Timeout <= 0 {
			return NewValidationError("sandbox", "sandbox", "timeout", fmt.Errorf("must be positive"))
		}
	}

	if w := v.cfg.Workers; w != nil {
		if w.BusConsumers < 1 {
			return NewValidationError("workers", "workers", "bus_consumers", fmt.Errorf("must be at least 1"))
		}
		if w.MaxConcurrentExecutions < 1 {
			return NewValidationError("workers", "workers", "max_concurrent_executions", fmt.Errorf("must be at least 1"))
		}
	}

	return nil
}
