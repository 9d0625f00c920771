package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeIntent(t *testing.T) {
	tests := []struct {
		prompt     string
		domains    []string
		complexity string
		specific   bool
	}{
		{"hi", []string{"general"}, "medium", false},
		{"Build a simple but advanced game", []string{"game"}, "complex", true},
		{"create a mobile app to chat", []string{"chat", "mobile"}, "medium", true},
		{"a quick website", []string{"web"}, "simple", false},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			got := AnalyzeIntent(tt.prompt)
			assert.Equal(t, tt.domains, got.Domains)
			assert.Equal(t, tt.complexity, got.Complexity)
			assert.Equal(t, tt.specific, got.HasSpecificGoal)
		})
	}
}

func TestHasSpecificGoal(t *testing.T) {
	assert.False(t, HasSpecificGoal(""))
	assert.False(t, HasSpecificGoal("one two  three"))
	assert.True(t, HasSpecificGoal("one two three four"))
	assert.True(t, HasSpecificGoal("  one\ttwo\nthree four  "))
}
