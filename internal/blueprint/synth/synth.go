// Package synth turns a prompt into a persisted project blueprint record.
package synth

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/catalogue"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/classifier"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

const (
	nameTokenWindow = 5
	nameMinRunes    = 4
	nameMaxWords    = 3
	defaultNameStem = "Custom Solution"
)

// ProjectStore is the write side of project persistence.
type ProjectStore interface {
	InsertProject(ctx context.Context, rec *domain.ProjectRecord) error
}

type Synthesizer struct {
	store    ProjectStore
	classify func(string) domain.ProjectType
}

func New(store ProjectStore) *Synthesizer {
	return &Synthesizer{store: store, classify: classifier.Classify}
}

// Synthesize classifies prompt, builds a record from the matching template and
// inserts it exactly once. The returned record is the pre-insert copy: ID and
// CreatedAt are never read back.
func (s *Synthesizer) Synthesize(ctx context.Context, prompt string, owner int64) (*domain.ProjectRecord, domain.ProjectType, error) {
	pt := s.classify(prompt)
	tpl := catalogue.Lookup(pt)

	rec := &domain.ProjectRecord{
		OwnerID:        owner,
		Name:           GenerateName(prompt, pt),
		Description:    GenerateDescription(prompt, tpl),
		Type:           pt,
		Features:       tpl.Features,
		Technologies:   tpl.Technologies,
		Components:     tpl.Components,
		Complexity:     tpl.Complexity,
		Timeline:       tpl.Timeline,
		OriginalPrompt: prompt,
	}

	stored := *rec
	if err := s.store.InsertProject(ctx, &stored); err != nil {
		return nil, pt, fmt.Errorf("synthesize: insert project: %w", err)
	}
	return rec, pt, nil
}

// GenerateName keeps up to three words longer than three characters from the
// first five tokens of prompt, title-cases them and appends the type suffix.
func GenerateName(prompt string, t domain.ProjectType) string {
	tokens := strings.Fields(prompt)
	if len(tokens) > nameTokenWindow {
		tokens = tokens[:nameTokenWindow]
	}

	words := make([]string, 0, nameMaxWords)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < nameMinRunes {
			continue
		}
		words = append(words, tok)
		if len(words) == nameMaxWords {
			break
		}
	}

	stem := defaultNameStem
	if len(words) > 0 {
		stem = cases.Title(language.Und).String(strings.Join(words, " "))
	}
	return stem + " " + catalogue.NameSuffix(t)
}

// GenerateDescription quotes the original prompt after the template description.
func GenerateDescription(prompt string, tpl domain.ProjectTemplate) string {
	return fmt.Sprintf("%s based on your request: '%s'", tpl.Description, prompt)
}
