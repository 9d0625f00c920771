// Package compose renders a project record into the chat answer shown to the user.
package compose

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// A Caser is stateful, so each call builds its own.
func title(s string) string {
	return cases.Title(language.Und).String(s)
}

var (
	highComplexityChallenges = []string{"Scalability planning", "Security implementation", "Team coordination"}
	lowComplexityChallenges  = []string{"Rapid prototyping", "Feature prioritization", "User feedback integration"}
)

const nextSteps = "📝 **NEXT STEPS RECOMMENDATION:**\n" +
	"1. **Requirements refinement** - Detailed feature specification\n" +
	"2. **Technology proof-of-concept** - Validate tech stack choices\n" +
	"3. **Architecture design** - System design and database schema\n" +
	"4. **Development roadmap** - Sprint planning and milestones\n" +
	"5. **MVP definition** - Minimum viable product scope\n"

const proTips = "💡 **PRO TIPS:**\n" +
	"• Start with a minimum viable product (MVP)\n" +
	"• Use agile methodology for iterative development\n" +
	"• Focus on user experience from day one\n" +
	"• Implement continuous integration/deployment\n"

const followUps = "🔍 **Would you like me to elaborate on any specific aspect?**\n" +
	"• Technical architecture details\n" +
	"• Feature prioritization strategy\n" +
	"• Development timeline breakdown\n" +
	"• Technology alternatives\n"

// Compose renders rec as the multi-section blueprint answer. Only the preamble,
// header, feature list, stack and challenges depend on the input.
func Compose(rec *domain.ProjectRecord, analysis domain.IntentAnalysis, prompt string) string {
	var b strings.Builder

	b.WriteString(Preamble(analysis))
	b.WriteString("\n\n🎯 **PROJECT BLUEPRINT CREATED!**\n\n")

	fmt.Fprintf(&b, "**Project Title:** %s\n", rec.Name)
	fmt.Fprintf(&b, "**Domain Focus:** %s\n", TypeLabel(rec.Type))
	fmt.Fprintf(&b, "**Complexity Level:** %s\n", title(string(rec.Complexity)))
	fmt.Fprintf(&b, "**Timeline Estimate:** %s\n\n", rec.Timeline)

	b.WriteString("📋 **CORE FEATURES:**\n")
	writeNumbered(&b, rec.Features)

	b.WriteString("\n🛠️ **TECHNOLOGY STACK:**\n")
	fmt.Fprintf(&b, "**Recommended Technologies:** %s\n", strings.Join(rec.Technologies, ", "))
	fmt.Fprintf(&b, "**Architecture Components:** %s\n\n", strings.Join(rec.Components, ", "))

	b.WriteString("🚧 **POTENTIAL CHALLENGES & SOLUTIONS:**\n")
	writeNumbered(&b, Challenges(string(rec.Complexity)))

	b.WriteString("\n")
	b.WriteString(nextSteps)
	b.WriteString("\n")
	b.WriteString(proTips)
	b.WriteString("\n")
	b.WriteString(followUps)

	return b.String()
}

// Preamble is the templated reasoning trace that opens every blueprint.
func Preamble(analysis domain.IntentAnalysis) string {
	lines := []string{"💭 **Analysis:** I'm analyzing your project request..."}

	switch n := len(analysis.Domains); {
	case n == 1:
		lines = append(lines, fmt.Sprintf("🔍 **Domain detected:** This appears to be a %s project", analysis.Domains[0]))
	case n > 1:
		lines = append(lines, fmt.Sprintf("🔍 **Domains detected:** This involves %s aspects", strings.Join(analysis.Domains, ", ")))
	}

	lines = append(lines, fmt.Sprintf("📊 **Complexity assessment:** %s complexity level identified", title(analysis.Complexity)))

	if analysis.HasSpecificGoal {
		lines = append(lines, "✅ **Specific requirements:** Clear objectives detected in the prompt")
	} else {
		lines = append(lines, "ℹ️ **General request:** Will provide comprehensive starting framework")
	}

	return strings.Join(lines, "\n")
}

// Challenges picks the fixed challenge list for a complexity tag from either
// vocabulary.
func Challenges(complexity string) []string {
	switch complexity {
	case string(domain.IntentComplex), string(domain.ComplexityHigh):
		return append([]string(nil), highComplexityChallenges...)
	default:
		return append([]string(nil), lowComplexityChallenges...)
	}
}

// TypeLabel renders a project type for display: "web_app" becomes "Web App".
func TypeLabel(t domain.ProjectType) string {
	return title(strings.ReplaceAll(string(t), "_", " "))
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, it := range items {
		fmt.Fprintf(b, "  %d. %s\n", i+1, it)
	}
}
