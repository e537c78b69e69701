package allocator

import "regexp"

// TaskClass is the coarse workload category a task description maps to.
type TaskClass string

// Task classes.
const (
	ClassCode     TaskClass = "code"
	ClassAnalysis TaskClass = "analysis"
	ClassCreative TaskClass = "creative"
	ClassSimple   TaskClass = "simple"
)

var (
	codePattern     = regexp.MustCompile(`(?i)\b(code|coding|implement|refactor|debug|script|function|python|sql|api|compile|unit test)\b`)
	analysisPattern = regexp.MustCompile(`(?i)\b(analy[sz]e|analysis|evaluate|compare|investigate|diagnose|assess|audit|review data|metrics|statistics)\b`)
	creativePattern = regexp.MustCompile(`(?i)\b(write|draft|compose|design|brainstorm|story|article|naming|creative|marketing)\b`)
)

// Classify maps a task description to a workload class. Code patterns win
// over analysis, analysis over creative; anything unmatched is simple.
func Classify(description string) TaskClass {
	switch {
	case codePattern.MatchString(description):
		return ClassCode
	case analysisPattern.MatchString(description):
		return ClassAnalysis
	case creativePattern.MatchString(description):
		return ClassCreative
	default:
		return ClassSimple
	}
}
