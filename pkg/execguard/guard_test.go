package execguard

import (
	"testing"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationKinds(r *Result) []string {
	var kinds []string
	for _, v := range r.Violations {
		kinds = append(kinds, v.Kind)
	}
	return kinds
}

func TestAnalyzeCleanCode(t *testing.T) {
	code := `import pandas as pd
import json

def summarize(rows):
    df = pd.DataFrame(rows)
    return json.dumps({"mean": df["value"].mean()})
`
	r := Analyze(code, hierarchy.TierTask)
	assert.True(t, r.Passed)
	assert.Equal(t, SeverityNone, r.Severity)
	assert.Empty(t, r.Violations)
	assert.Empty(t, r.Recommendation)
}

func TestAnalyzeDangerousPatterns(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"shell invocation", `import math` + "\n" + `os.system("ls /")`},
		{"subprocess", `result = subprocess.run(["cat", "/etc/passwd"])`},
		{"dynamic eval", `eval(user_input)`},
		{"disk write", `open("/tmp/out.txt", "w").write(data)`},
		{"privileged command", `cmd = "sudo reboot"`},
		{"environment probe", `token = os.environ["SECRET"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Analyze(tt.code, hierarchy.TierHead)
			assert.False(t, r.Passed)
			assert.Equal(t, SeverityCritical, r.Severity)
			assert.Contains(t, violationKinds(r), KindDangerousPattern)
		})
	}
}

func TestRestrictedImportsAreHeadOnly(t *testing.T) {
	code := `import requests
import json

resp = requests.get(url)
`
	task := Analyze(code, hierarchy.TierTask)
	assert.False(t, task.Passed)
	assert.Equal(t, SeverityHigh, task.Severity)
	require.Len(t, task.Violations, 1)
	assert.Equal(t, KindRestrictedImport, task.Violations[0].Kind)
	assert.Equal(t, "requests", task.Violations[0].Subject)

	head := Analyze(code, hierarchy.TierHead)
	assert.True(t, head.Passed)
	assert.Empty(t, head.Violations)
}

func TestUnknownImportRejected(t *testing.T) {
	code := `from cryptominer import dig
import numpy as np
`
	r := Analyze(code, hierarchy.TierHead)
	assert.False(t, r.Passed)
	require.Len(t, r.Violations, 1)
	assert.Equal(t, KindUnknownImport, r.Violations[0].Kind)
	assert.Equal(t, "cryptominer", r.Violations[0].Subject)
}

func TestScanImports(t *testing.T) {
	code := `import os.path
import a, b as c
from x.y import z
import a
`
	assert.Equal(t, []string{"os", "a", "b", "x"}, scanImports(code))
}

func TestSyntaxViolationDoesNotBlock(t *testing.T) {
	code := `def f(:
    return (1, 2
`
	r := Analyze(code, hierarchy.TierTask)
	assert.True(t, r.Passed, "syntax findings alone do not block")
	assert.Equal(t, SeverityMedium, r.Severity)
	assert.Contains(t, violationKinds(r), KindSyntax)
}

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"balanced", `x = [1, (2, {3: 4})]`, false},
		{"comment ignored", `x = 1  # unclosed ( in comment`, false},
		{"string ignored", `x = "unclosed ( in string"`, false},
		{"docstring ignored", "def f():\n    \"\"\"has ( and [ inside\n    more text\n    \"\"\"\n    return []", false},
		{"unclosed paren", `x = (1, 2`, true},
		{"mismatched", `x = (1, 2]`, true},
		{"unterminated string", `x = "abc`, true},
		{"unterminated docstring", `x = """abc`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSyntax(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecommendationMentionsEachClass(t *testing.T) {
	code := `import requests
import cryptominer
eval(payload)
`
	r := Analyze(code, hierarchy.TierTask)
	assert.Contains(t, r.Recommendation, "eval")
	assert.Contains(t, r.Recommendation, "Head-tier")
	assert.Contains(t, r.Recommendation, "approved module list")
}
