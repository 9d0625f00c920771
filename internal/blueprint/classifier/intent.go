package classifier

import (
	"strings"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

const generalDomain = "general"

type domainKeywords struct {
	Domain   string
	Keywords []string
}

var domainTable = []domainKeywords{
	{Domain: "web", Keywords: []string{"web", "website", "frontend", "backend", "portfolio", "e-commerce", "blog"}},
	{Domain: "data", Keywords: []string{"data", "analysis", "analytics", "chart", "graph", "dashboard", "report"}},
	{Domain: "chat", Keywords: []string{"chat", "bot", "conversation", "assistant", "support", "customer service"}},
	{Domain: "automation", Keywords: []string{"automation", "auto", "script", "task", "schedule", "reminder"}},
	{Domain: "mobile", Keywords: []string{"mobile", "app", "ios", "android", "phone", "tablet"}},
	{Domain: "game", Keywords: []string{"game", "gaming", "2d", "3d", "player", "level"}},
}

type complexityIndicators struct {
	Level      domain.IntentComplexity
	Indicators []string
}

// Later entries override earlier ones when both match.
var complexityTable = []complexityIndicators{
	{Level: domain.IntentSimple, Indicators: []string{"simple", "basic", "small", "quick", "minimal"}},
	{Level: domain.IntentComplex, Indicators: []string{"complex", "advanced", "enterprise", "large", "comprehensive", "sophisticated"}},
}

// AnalyzeIntent detects every matching domain, an adjective-derived
// complexity and whether the prompt is specific enough to name a goal.
func AnalyzeIntent(prompt string) domain.IntentAnalysis {
	lower := strings.ToLower(prompt)

	var domains []string
	for _, d := range domainTable {
		if containsAny(lower, d.Keywords) {
			domains = append(domains, d.Domain)
		}
	}
	if len(domains) == 0 {
		domains = []string{generalDomain}
	}

	complexity := domain.IntentMedium
	for _, c := range complexityTable {
		if containsAny(lower, c.Indicators) {
			complexity = c.Level
		}
	}

	return domain.IntentAnalysis{
		Domains:         domains,
		Complexity:      string(complexity),
		HasSpecificGoal: HasSpecificGoal(prompt),
	}
}

// HasSpecificGoal reports whether the prompt has more than three words.
func HasSpecificGoal(prompt string) bool {
	return len(strings.Fields(prompt)) > 3
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
