package execguard

import (
	"log/slog"
	"regexp"
)

// dangerousPattern is a pre-compiled regex over the raw code text. Any hit
// is a critical violation.
type dangerousPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Description string
}

// builtinDangerous covers shell invocations, dynamic-eval constructs,
// disk-writing opens, and privileged commands.
var builtinDangerous = compileDangerous([]struct {
	name        string
	pattern     string
	description string
}{
	{
		name:        "shell_invocation",
		pattern:     `\bos\.system\s*\(|\bsubprocess\.|\bos\.popen\s*\(|\bpty\.spawn\s*\(`,
		description: "shell command invocation",
	},
	{
		name:        "dynamic_eval",
		pattern:     `\beval\s*\(|\bexec\s*\(|\bcompile\s*\(|__import__\s*\(`,
		description: "dynamic code evaluation",
	},
	{
		name:        "disk_write",
		pattern:     `\bopen\s*\([^)]*,\s*['"](w|a|x|wb|ab|w\+|a\+|r\+)['"]`,
		description: "file open in a writing mode",
	},
	{
		name:        "privileged_command",
		pattern:     `\bsudo\b|\bchmod\s+[0-7]{3,4}\b|\bchown\b|\bsetuid\b`,
		description: "privileged system command",
	},
	{
		name:        "interpreter_escape",
		pattern:     `\bctypes\.|\bos\.kill\s*\(|\bsignal\.|\bsys\.settrace\s*\(`,
		description: "interpreter or process manipulation",
	},
	{
		name:        "environment_probe",
		pattern:     `\bos\.environ\b|\bos\.getenv\s*\(`,
		description: "environment variable access",
	},
})

func compileDangerous(defs []struct {
	name        string
	pattern     string
	description string
}) []dangerousPattern {
	patterns := make([]dangerousPattern, 0, len(defs))
	for _, d := range defs {
		compiled, err := regexp.Compile(d.pattern)
		if err != nil {
			slog.Error("Failed to compile dangerous-code pattern, skipping",
				"pattern", d.name, "error", err)
			continue
		}
		patterns = append(patterns, dangerousPattern{
			Name:        d.name,
			Regex:       compiled,
			Description: d.description,
		})
	}
	return patterns
}
