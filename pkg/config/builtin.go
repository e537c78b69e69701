package config

// BuiltinConfig holds the configuration shipped with the binary. User YAML
// overrides any entry with the same key.
type BuiltinConfig struct {
	Providers       map[string]ProviderConfig
	Models          map[string]ModelSpec
	Critics         map[CriticSpecialty][]string
	Constitution    []ConstitutionDoc
	DefaultProvider string
}

// GetBuiltinConfig returns the built-in configuration. A fresh instance is
// returned on every call so callers may mutate their copy.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Providers: map[string]ProviderConfig{
			"anthropic": {
				Type:         ProviderTypeAnthropic,
				APIKeyEnv:    "ANTHROPIC_API_KEY",
				DefaultModel: "claude-sonnet-4-5",
			},
			"openai": {
				Type:         ProviderTypeOpenAI,
				APIKeyEnv:    "OPENAI_API_KEY",
				DefaultModel: "gpt-4o",
			},
			"ollama": {
				Type:         ProviderTypeOllama,
				BaseURL:      "http://localhost:11434",
				DefaultModel: "qwen2.5-coder:7b",
			},
		},
		Models: map[string]ModelSpec{
			"claude-opus-4-1":   {Provider: "anthropic", ContextWindow: 200_000},
			"claude-sonnet-4-5": {Provider: "anthropic", ContextWindow: 200_000},
			"claude-haiku-3-5":  {Provider: "anthropic", ContextWindow: 200_000},
			"gpt-4o":            {Provider: "openai", ContextWindow: 128_000},
			"gpt-4o-mini":       {Provider: "openai", ContextWindow: 128_000},
			"qwen2.5-coder:7b":  {Provider: "ollama", ContextWindow: 32_000},
			"llama3.1:8b":       {Provider: "ollama", ContextWindow: 128_000},
		},
		Critics: map[CriticSpecialty][]string{
			CriticSpecialtyCode:   {"10002"},
			CriticSpecialtyOutput: {"10003"},
			CriticSpecialtyPlan:   {"10004"},
		},
		Constitution: []ConstitutionDoc{
			{
				Name: "core-principles",
				Text: "Agents must not exfiltrate data outside the sandbox. " +
					"Agents must not modify the hierarchy except through sanctioned " +
					"spawn and terminate operations. Destructive actions against " +
					"shared state require council approval.",
			},
		},
		DefaultProvider: "anthropic",
	}
}
