package masking

// Service applies credential masking to execution output. Created once at
// startup; thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns    []*CompiledPattern
	codeMaskers []Masker
}

// NewService creates a masking service with the built-in patterns and
// code-based maskers.
func NewService() *Service {
	return &Service{
		patterns:    builtinPatterns,
		codeMaskers: []Masker{&EnvDumpMasker{}},
	}
}

// Mask scrubs credentials from content. Code-based maskers run first, the
// regex sweep second.
func (s *Service) Mask(content string) string {
	if content == "" {
		return content
	}

	masked := content
	for _, m := range s.codeMaskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
