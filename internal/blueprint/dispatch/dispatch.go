// Package dispatch is the chat entry point: it routes each prompt either to
// blueprint creation or to the conversational fallback.
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/classifier"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/compose"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/fallback"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/tracer"
)

// DegradedMessage is returned whenever blueprint creation fails.
const DegradedMessage = `💭 **System Notice:** An error occurred during processing.

❌ **Technical Issue Detected:** the project blueprint could not be saved.

But don't worry! I can still help you create projects.

**Try a simple project request like:** "Create a web application for [your purpose]"

The system will continue functioning in basic mode.`

var (
	creationVerbs = []string{"create", "build", "make", "develop", "design", "start", "begin"}
	projectNouns  = []string{"project", "agent", "app", "application", "bot", "tool", "system", "platform", "website", "dashboard"}

	creationPhrases = []string{
		"create a", "build a", "make a", "develop a", "design a", "start a", "begin a",
		"i want to create", "i need to build", "can you make", "could you build",
		"build me a", "create me a", "i'd like to", "i need a", "i want a",
		"how to create", "how to build", "help me create", "help me build",
	}
)

// Synthesizer builds and persists a project record for a prompt.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string, owner int64) (*domain.ProjectRecord, domain.ProjectType, error)
}

type Dispatcher struct {
	synth Synthesizer
}

func New(s Synthesizer) *Dispatcher {
	return &Dispatcher{synth: s}
}

// IsProjectCreationRequest reports whether prompt carries both a creation verb
// and a project noun, or one of the explicit creation phrases. All tests are
// substring tests on the lower-cased prompt.
func IsProjectCreationRequest(prompt string) bool {
	lower := strings.ToLower(prompt)
	if containsAny(lower, creationVerbs) && containsAny(lower, projectNouns) {
		return true
	}
	return containsAny(lower, creationPhrases)
}

// Handle answers one chat turn. It never returns an error: failures in the
// creation branch come back as a degraded Reply with Err set.
func (d *Dispatcher) Handle(ctx context.Context, prompt string, owner int64) domain.Reply {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "dispatch.Handle")
	defer span.End()

	var reply domain.Reply
	if IsProjectCreationRequest(prompt) {
		reply = d.createProject(ctx, prompt, owner)
	} else {
		trigger, _ := fallback.Match(prompt)
		metrics.RecordFallback(trigger)
		reply = domain.Reply{Kind: domain.ReplyConversation, Text: fallback.Route(prompt)}
	}

	span.SetAttributes(attribute.String("reply.kind", string(reply.Kind)))
	if reply.Err != nil {
		span.RecordError(reply.Err)
		span.SetStatus(codes.Error, "blueprint creation failed")
	}
	metrics.RecordTurn(string(reply.Kind), time.Since(start))
	return reply
}

func (d *Dispatcher) createProject(ctx context.Context, prompt string, owner int64) (reply domain.Reply) {
	log := logger.Op(ctx, "dispatch.create_project")

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			log.Error("blueprint creation panicked", "error", err)
			reply = degraded(err)
		}
	}()

	rec, pt, err := d.synth.Synthesize(ctx, prompt, owner)
	if err != nil {
		log.Error("blueprint creation failed", "error", err, "project_type", pt)
		return degraded(err)
	}

	// The preamble reuses the classified type as its only domain instead of
	// the keyword detector's domains.
	analysis := domain.IntentAnalysis{
		Domains:         []string{string(pt)},
		Complexity:      string(rec.Complexity),
		HasSpecificGoal: classifier.HasSpecificGoal(prompt),
	}

	metrics.RecordProjectCreated(string(pt))
	log.Info("project blueprint created", "project_type", pt, "project_name", rec.Name)

	return domain.Reply{
		Kind:    domain.ReplyProject,
		Text:    compose.Compose(rec, analysis, prompt),
		Type:    pt,
		Project: rec,
	}
}

func degraded(err error) domain.Reply {
	return domain.Reply{Kind: domain.ReplyDegraded, Text: DegradedMessage, Err: err}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
