package masking

import "regexp"

// CompiledPattern is one regex rule with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns are the credential shapes masked in every execution
// output. Order matters: structured multi-line shapes run before the
// generic assignment sweep.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "private_key_block",
		Regex:       regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----(?s:.*?)-----END [A-Z ]*PRIVATE KEY-----`),
		Replacement: "[MASKED_PRIVATE_KEY]",
	},
	{
		Name:        "connection_string_credentials",
		Regex:       regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://[^/\s:@]+):[^@\s]+@`),
		Replacement: "${1}:[MASKED]@",
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/=-]{16,}`),
		Replacement: "Bearer [MASKED_TOKEN]",
	},
	{
		Name:        "model_provider_key",
		Regex:       regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}\b`),
		Replacement: "[MASKED_API_KEY]",
	},
	{
		Name:        "aws_access_key",
		Regex:       regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
		Replacement: "[MASKED_AWS_KEY]",
	},
	{
		Name:        "secret_assignment",
		Regex:       regexp.MustCompile(`(?i)\b(password|passwd|secret|api[_-]?key|auth[_-]?token|access[_-]?key)\b(\s*[:=]\s*)["']?[^\s"',;]{6,}["']?`),
		Replacement: "${1}${2}[MASKED]",
	},
}
