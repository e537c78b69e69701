package masking

import (
	"regexp"
	"strings"
)

// envLine matches one NAME=value line of an environment dump.
var envLine = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)=(.+)$`)

// secretEnvNames marks environment variable names whose values are masked
// when user code echoes its environment.
var secretEnvNames = []string{"KEY", "TOKEN", "SECRET", "PASSWORD", "PASSWD", "CREDENTIAL"}

// EnvDumpMasker masks the values of secret-named variables in line-oriented
// environment dumps, the most common way sandboxed code leaks credentials.
type EnvDumpMasker struct{}

// Name implements Masker.
func (m *EnvDumpMasker) Name() string { return "env_dump" }

// AppliesTo implements Masker.
func (m *EnvDumpMasker) AppliesTo(data string) bool {
	return strings.Contains(data, "=")
}

// Mask implements Masker.
func (m *EnvDumpMasker) Mask(data string) string {
	lines := strings.Split(data, "\n")
	changed := false
	for i, line := range lines {
		groups := envLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if groups == nil {
			continue
		}
		if !isSecretEnvName(groups[1]) {
			continue
		}
		lines[i] = groups[1] + "=[MASKED]"
		changed = true
	}
	if !changed {
		return data
	}
	return strings.Join(lines, "\n")
}

func isSecretEnvName(name string) bool {
	for _, marker := range secretEnvNames {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
