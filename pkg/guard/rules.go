package guard

import (
	"log/slog"
	"regexp"
)

// rule is a deterministic prohibited-action pattern.
type rule struct {
	name        string
	regex       *regexp.Regexp
	verdict     Verdict
	severity    Severity
	explanation string
}

// builtinRules are the deterministic rule table consulted before any
// semantic evidence. Patterns are matched case-insensitively against the
// action description.
var builtinRules = compileRules([]struct {
	name        string
	pattern     string
	verdict     Verdict
	severity    Severity
	explanation string
}{
	{
		name:        "destructive_filesystem",
		pattern:     `rm\s+-rf|wipe\s+(the\s+)?disk|format\s+(the\s+)?drive`,
		verdict:     VerdictBlock,
		severity:    SeverityCritical,
		explanation: "destructive filesystem operations are constitutionally prohibited",
	},
	{
		name:        "destructive_database",
		pattern:     `drop\s+(table|database)|truncate\s+table|delete\s+all\s+(rows|data|records)`,
		verdict:     VerdictBlock,
		severity:    SeverityCritical,
		explanation: "bulk destructive data operations are constitutionally prohibited",
	},
	{
		name:        "terminate_head",
		pattern:     `terminat\w*\s+(the\s+)?head|kill\s+(the\s+)?head\s+agent`,
		verdict:     VerdictBlock,
		severity:    SeverityCritical,
		explanation: "the Head agent may not be terminated",
	},
	{
		name:        "review_bypass",
		pattern:     `bypass\s+(the\s+)?(review|critic|guard)|skip\s+(the\s+)?(review|approval)`,
		verdict:     VerdictBlock,
		severity:    SeverityHigh,
		explanation: "review and approval steps may not be bypassed",
	},
	{
		name:        "credential_exfiltration",
		pattern:     `exfiltrat\w+|leak\s+(api\s+)?(key|secret|credential)|steal\s+credential`,
		verdict:     VerdictBlock,
		severity:    SeverityCritical,
		explanation: "credential disclosure is constitutionally prohibited",
	},
	{
		name:        "spend_money",
		pattern:     `purchase|spend\s+(money|budget)|payment|wire\s+transfer`,
		verdict:     VerdictEscalate,
		severity:    SeverityHigh,
		explanation: "financial commitments require review one tier up",
	},
	{
		name:        "amend_constitution",
		pattern:     `amend\s+(the\s+)?constitution|rewrite\s+(the\s+)?constitution`,
		verdict:     VerdictEscalate,
		severity:    SeverityHigh,
		explanation: "constitutional amendments require council deliberation",
	},
	{
		name:        "agent_termination",
		pattern:     `terminat\w*\s+agent|liquidat\w*\s+agent`,
		verdict:     VerdictEscalate,
		severity:    SeverityMedium,
		explanation: "agent termination requires review one tier up",
	},
	{
		name:        "external_communication",
		pattern:     `send\s+(an\s+)?email\s+to\s+external|post\s+publicly|publish\s+to\s+the\s+internet`,
		verdict:     VerdictEscalate,
		severity:    SeverityMedium,
		explanation: "outward-facing communication requires review one tier up",
	},
})

func compileRules(defs []struct {
	name        string
	pattern     string
	verdict     Verdict
	severity    Severity
	explanation string
}) []rule {
	rules := make([]rule, 0, len(defs))
	for _, d := range defs {
		re, err := regexp.Compile(`(?i)` + d.pattern)
		if err != nil {
			slog.Error("Failed to compile guard rule, skipping", "rule", d.name, "error", err)
			continue
		}
		rules = append(rules, rule{
			name:        d.name,
			regex:       re,
			verdict:     d.verdict,
			severity:    d.severity,
			explanation: d.explanation,
		})
	}
	return rules
}
