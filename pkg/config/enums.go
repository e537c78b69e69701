package config

// ProviderType defines supported model providers
type ProviderType string

const (
	// ProviderTypeAnthropic is the Anthropic API
	ProviderTypeAnthropic ProviderType = "anthropic"
	// ProviderTypeOpenAI is the OpenAI API
	ProviderTypeOpenAI ProviderType = "openai"
	// ProviderTypeOllama is a local Ollama server
	ProviderTypeOllama ProviderType = "ollama"
)

// IsValid checks if the provider type is valid
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypeAnthropic, ProviderTypeOpenAI, ProviderTypeOllama:
		return true
	default:
		return false
	}
}

// CriticSpecialty defines the review specialties a critic roster may cover
type CriticSpecialty string

const (
	// CriticSpecialtyCode reviews code submissions
	CriticSpecialtyCode CriticSpecialty = "code-critic"
	// CriticSpecialtyOutput reviews task output
	CriticSpecialtyOutput CriticSpecialty = "output-critic"
	// CriticSpecialtyPlan reviews execution plans
	CriticSpecialtyPlan CriticSpecialty = "plan-critic"
)

// IsValid checks if the critic specialty is valid
func (s CriticSpecialty) IsValid() bool {
	switch s {
	case CriticSpecialtyCode, CriticSpecialtyOutput, CriticSpecialtyPlan:
		return true
	default:
		return false
	}
}
