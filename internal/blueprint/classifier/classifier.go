// Package classifier maps free-text prompts onto the project-type taxonomy.
//
// Scoring is rule based: every type owns an ordered list of regular
// expressions and a list of bare keywords. Each pattern occurrence is worth
// patternWeight, each keyword present is worth keywordWeight. The highest
// scoring type wins, with ties resolved by table order, and anything at or
// below minScore falls back to custom.
package classifier

import (
	"regexp"
	"strings"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

const (
	patternWeight = 2
	keywordWeight = 3
	minScore      = 2
)

type rule struct {
	Type     domain.ProjectType
	Patterns []*regexp.Regexp
	Keywords []string
}

// rules is evaluated top to bottom; the order doubles as the tie-break.
var rules = []rule{
	{
		Type: domain.WebApp,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(web|website|frontend|backend|portfolio|e.?commerce|ecommerce|blog|shop|store|portal)\b`),
			regexp.MustCompile(`\b(react|vue|angular|html|css|javascript|node|django|flask)\b`),
			regexp.MustCompile(`create (a |an )?(website|web app|web application|online)`),
			regexp.MustCompile(`build (a |an )?(website|web app|web application|online)`),
		},
		Keywords: []string{"web", "site", "browser", "online", "internet"},
	},
	{
		Type: domain.DataAnalysis,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(data|analysis|analytics|chart|graph|dashboard|report|visualization|excel|csv)\b`),
			regexp.MustCompile(`\b(pandas|numpy|matplotlib|seaborn|tableau|power.?bi)\b`),
			regexp.MustCompile(`analyze|visualize|dashboard|reporting`),
			regexp.MustCompile(`create (a |an )?(data|analysis|analytics|dashboard)`),
		},
		Keywords: []string{"data", "analyze", "chart", "graph", "report"},
	},
	{
		Type: domain.Chatbot,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(chat|bot|chatbot|conversation|assistant|support|faq|helpdesk)\b`),
			regexp.MustCompile(`\b(ai|artificial intelligence|nlp|natural language)\b`),
			regexp.MustCompile(`customer service|virtual assistant|automated response`),
			regexp.MustCompile(`create (a |an )?(chatbot|bot|assistant)`),
		},
		Keywords: []string{"chat", "conversation", "message", "reply"},
	},
	{
		Type: domain.AutomationAgent,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(automation|auto|script|bot|cron|schedule|task|workflow)\b`),
			regexp.MustCompile(`\b(automate|automatic|scheduled|recurring|routine)\b`),
			regexp.MustCompile(`auto.?mat|script|batch|process`),
			regexp.MustCompile(`create (a |an )?(automation|script|bot)`),
		},
		Keywords: []string{"automate", "script", "task", "schedule"},
	},
	{
		Type: domain.MobileApp,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(mobile|app|ios|android|phone|tablet|flutter|react native)\b`),
			regexp.MustCompile(`\b(mobile application|phone app|tablet app)\b`),
			regexp.MustCompile(`create (a |an )?(mobile|app|application)`),
		},
		Keywords: []string{"mobile", "phone", "app", "ios", "android"},
	},
}

// TypeScore is the score one type received for a prompt.
type TypeScore struct {
	Type  domain.ProjectType `json:"type"`
	Score int                `json:"score"`
}

// Result is the outcome of scoring a prompt. Scores follow table order.
type Result struct {
	Type   domain.ProjectType `json:"type"`
	Best   TypeScore          `json:"best"`
	Scores []TypeScore        `json:"scores"`
}

// Classify returns the best matching project type for prompt.
func Classify(prompt string) domain.ProjectType {
	return Score(prompt).Type
}

// Score evaluates every rule against prompt and selects the winner.
func Score(prompt string) Result {
	lower := strings.ToLower(prompt)

	res := Result{Scores: make([]TypeScore, 0, len(rules))}
	for i, r := range rules {
		ts := TypeScore{Type: r.Type, Score: scoreRule(r, lower)}
		res.Scores = append(res.Scores, ts)
		if i == 0 || ts.Score > res.Best.Score {
			res.Best = ts
		}
	}

	res.Type = res.Best.Type
	if res.Best.Score <= minScore {
		res.Type = domain.CustomType
	}
	return res
}

func scoreRule(r rule, lower string) int {
	score := 0
	for _, p := range r.Patterns {
		score += len(p.FindAllStringIndex(lower, -1)) * patternWeight
	}
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			score += keywordWeight
		}
	}
	return score
}
