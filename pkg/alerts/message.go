package alerts

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var kindEmoji = map[Kind]string{
	KindAllKeysDown:     ":rotating_light:",
	KindBudgetExhausted: ":money_with_wings:",
	KindAgentLiquidated: ":skull:",
	KindSandboxReaped:   ":broom:",
	KindGuardBlock:      ":no_entry:",
}

var kindLabel = map[Kind]string{
	KindAllKeysDown:     "All API keys unavailable",
	KindBudgetExhausted: "Monthly budget exhausted",
	KindAgentLiquidated: "Agent liquidated",
	KindSandboxReaped:   "Orphaned sandboxes reaped",
	KindGuardBlock:      "Constitutional block",
}

// BuildAlertMessage creates Block Kit blocks for an operational alert.
func BuildAlertMessage(a Alert, dashboardURL string) []goslack.Block {
	emoji := kindEmoji[a.Kind]
	if emoji == "" {
		emoji = ":warning:"
	}
	label := kindLabel[a.Kind]
	if label == "" {
		label = string(a.Kind)
	}

	headerText := fmt.Sprintf("%s *%s*", emoji, label)
	if a.AgentID != "" {
		headerText += fmt.Sprintf(" (agent `%s`)", a.AgentID)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if a.Detail != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(a.Detail), false, false),
			nil, nil,
		))
	}

	if dashboardURL != "" {
		btn := goslack.NewButtonBlockElement("", "",
			goslack.NewTextBlockObject(goslack.PlainTextType, "View Dashboard", false, false))
		btn.URL = dashboardURL
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
