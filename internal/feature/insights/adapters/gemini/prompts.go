package gemini

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

func advicePrompt(in usecase.AdviceInput) string {
	gainers := make([]string, 0, len(in.Gainers))
	for _, q := range in.Gainers {
		gainers = append(gainers, fmt.Sprintf("%s (%+.2f%%)", q.Symbol, q.ChangePercent))
	}
	losers := make([]string, 0, len(in.Losers))
	for _, q := range in.Losers {
		losers = append(losers, fmt.Sprintf("%s (%.2f%%)", q.Symbol, q.ChangePercent))
	}
	sectors := make([]string, 0, len(in.Sectors))
	for _, s := range in.Sectors {
		sectors = append(sectors, fmt.Sprintf("%s: %.2f%%", s.Name, s.ChangePercent))
	}

	return fmt.Sprintf(`You are Arthasutra, a world-class Indian equity strategist. Your advice is sharp, data-driven, and adheres to strict risk management.
Analyze the following market data:
- Top %d Gainers Today: %s
- Top %d Losers Today: %s
- Sectoral Rotation: %s

Based ONLY on this data and your internal models, provide one stock pick for each of intraday, mid-term and long-term horizons.
Your response MUST be a single JSON object matching the response schema, with no text before or after it.`,
		len(gainers), strings.Join(gainers, ", "),
		len(losers), strings.Join(losers, ", "),
		strings.Join(sectors, ", "))
}

func sentimentPrompt(q marketentity.Quote) string {
	return fmt.Sprintf(`Analyze the latest real-time news and financial data for the Indian stock: %s (%s).
Reply with exactly two lines and nothing else:
SENTIMENT: <one concise sentence summarizing the current market feeling about this stock>
SCORE: <a number from -1 (very bearish) to 1 (very bullish)>`, q.Name, q.Symbol)
}

func newsPrompt(q marketentity.Quote) string {
	return fmt.Sprintf(`Find the %d most recent news articles about the Indian stock %s (%s).
Reply with only a JSON array, no commentary and no code fences. Each element must be
{"title": "<headline>", "url": "<article link>", "source": "<publisher name>"}.
Reply with [] if there is no recent news.`, maxNewsRequested, q.Name, q.Symbol)
}

// maxNewsRequested はモデルに要求する記事数です。
const maxNewsRequested = 5

// adviceSchema は推奨応答のJSONスキーマです。
func adviceSchema() *genai.Schema {
	pick := func(third string) *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"stock":  {Type: genai.TypeString},
				"reason": {Type: genai.TypeString},
				third:    {Type: genai.TypeString},
			},
			Required: []string{"stock", "reason", third},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"intraday": pick("riskReward"),
			"midTerm":  pick("timeframe"),
			"longTerm": pick("timeframe"),
		},
		Required: []string{"intraday", "midTerm", "longTerm"},
	}
}
