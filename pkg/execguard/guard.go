// Package execguard statically analyzes code submitted for sandboxed
// execution. The analysis is pure: no code is ever run here.
package execguard

import (
	"fmt"
	"strings"

	"github.com/agentium/agentium/pkg/hierarchy"
)

// Severity of an analysis result.
type Severity string

// Severities. Critical and high block execution entirely.
const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Violation kinds.
const (
	KindDangerousPattern = "dangerous_pattern"
	KindRestrictedImport = "restricted_import"
	KindUnknownImport    = "unknown_import"
	KindSyntax           = "syntax"
)

// Violation is a single finding.
type Violation struct {
	Kind     string
	Severity Severity
	// Subject is the pattern name or module that triggered the finding.
	Subject string
	Message string
}

// Result of a static analysis pass.
type Result struct {
	Passed         bool
	Severity       Severity
	Violations     []Violation
	Recommendation string
}

// Analyze runs the three-stage pass over the code: dangerous-pattern scan,
// import classification against the actor's tier, and a light syntax check.
func Analyze(code string, tier hierarchy.Tier) *Result {
	var violations []Violation

	for _, p := range builtinDangerous {
		if p.Regex.MatchString(code) {
			violations = append(violations, Violation{
				Kind:     KindDangerousPattern,
				Severity: SeverityCritical,
				Subject:  p.Name,
				Message:  fmt.Sprintf("prohibited construct: %s", p.Description),
			})
		}
	}

	for _, module := range scanImports(code) {
		switch classifyImport(module) {
		case importRestricted:
			if tier == hierarchy.TierHead {
				continue
			}
			violations = append(violations, Violation{
				Kind:     KindRestrictedImport,
				Severity: SeverityHigh,
				Subject:  module,
				Message:  fmt.Sprintf("module %q reaches the network or a database and is reserved for the Head tier", module),
			})
		case importUnknown:
			violations = append(violations, Violation{
				Kind:     KindUnknownImport,
				Severity: SeverityHigh,
				Subject:  module,
				Message:  fmt.Sprintf("module %q is not on the approved list", module),
			})
		}
	}

	if err := checkSyntax(code); err != nil {
		violations = append(violations, Violation{
			Kind:     KindSyntax,
			Severity: SeverityMedium,
			Message:  err.Error(),
		})
	}

	severity := SeverityNone
	for _, v := range violations {
		if severityRank(v.Severity) > severityRank(severity) {
			severity = v.Severity
		}
	}

	return &Result{
		Passed:         severity != SeverityCritical && severity != SeverityHigh,
		Severity:       severity,
		Violations:     violations,
		Recommendation: recommend(violations),
	}
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

func recommend(violations []Violation) string {
	if len(violations) == 0 {
		return ""
	}
	kinds := map[string]bool{}
	for _, v := range violations {
		kinds[v.Kind] = true
	}

	var parts []string
	if kinds[KindDangerousPattern] {
		parts = append(parts, "remove shell, eval, file-writing, and privileged constructs")
	}
	if kinds[KindRestrictedImport] {
		parts = append(parts, "route network and database work through a Head-tier agent")
	}
	if kinds[KindUnknownImport] {
		parts = append(parts, "restrict imports to the approved module list")
	}
	if kinds[KindSyntax] {
		parts = append(parts, "fix the syntax errors before resubmitting")
	}
	return strings.Join(parts, "; ") + "."
}
