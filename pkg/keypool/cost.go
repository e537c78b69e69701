package keypool

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// pricing is USD per million tokens.
type pricing struct {
	input  float64
	output float64
}

// modelPricing maps model name prefixes to their published rates. Longer
// prefixes come first so gpt-4o-mini is not priced as gpt-4o. Unknown
// models fall back to the most expensive known rate so budget checks stay
// conservative.
var modelPricing = []struct {
	prefix string
	pricing
}{
	{"claude-opus", pricing{input: 15.00, output: 75.00}},
	{"claude-sonnet", pricing{input: 3.00, output: 15.00}},
	{"claude-haiku", pricing{input: 0.80, output: 4.00}},
	{"gpt-4o-mini", pricing{input: 0.15, output: 0.60}},
	{"gpt-4o", pricing{input: 2.50, output: 10.00}},
	{"o3", pricing{input: 2.00, output: 8.00}},
	{"llama", pricing{}},
	{"qwen", pricing{}},
}

var fallbackPricing = pricing{input: 15.00, output: 75.00}

// EstimateCost projects the USD cost of a call given its prompt text and an
// expected completion size. Token counts come from the cl100k_base encoding;
// if the encoder is unavailable the estimate falls back to a 4-chars-per-
// token heuristic.
func EstimateCost(model, prompt string, expectedOutputTokens int) float64 {
	inputTokens := countTokens(prompt)
	p := priceFor(model)
	return float64(inputTokens)/1e6*p.input + float64(expectedOutputTokens)/1e6*p.output
}

// CostFor prices a completed call from its reported token counts.
func CostFor(model string, inputTokens, outputTokens int) float64 {
	p := priceFor(model)
	return float64(inputTokens)/1e6*p.input + float64(outputTokens)/1e6*p.output
}

func priceFor(model string) pricing {
	name := strings.ToLower(model)
	for _, entry := range modelPricing {
		if strings.HasPrefix(name, entry.prefix) {
			return entry.pricing
		}
	}
	return fallbackPricing
}

func countTokens(text string) int {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}
