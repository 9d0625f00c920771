package domain

import (
	"errors"
	"time"
)

// ProjectType is the closed taxonomy a prompt is classified into.
// CustomType is the universal fallback.
type ProjectType string

const (
	WebApp          ProjectType = "web_app"
	DataAnalysis    ProjectType = "data_analysis"
	Chatbot         ProjectType = "chatbot"
	AutomationAgent ProjectType = "automation_agent"
	MobileApp       ProjectType = "mobile_app"
	CustomType      ProjectType = "custom"
)

// AllTypes lists every project type in catalogue order.
var AllTypes = []ProjectType{WebApp, DataAnalysis, Chatbot, AutomationAgent, MobileApp, CustomType}

func (t ProjectType) Valid() bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

// TemplateComplexity is the catalogue's complexity vocabulary.
type TemplateComplexity string

const (
	ComplexityLow    TemplateComplexity = "low"
	ComplexityMedium TemplateComplexity = "medium"
	ComplexityHigh   TemplateComplexity = "high"
)

// IntentComplexity is the vocabulary produced by adjective matching on the
// prompt. It is independent of TemplateComplexity and the two are never mixed
// into a single scale.
type IntentComplexity string

const (
	IntentSimple  IntentComplexity = "simple"
	IntentMedium  IntentComplexity = "medium"
	IntentComplex IntentComplexity = "complex"
)

// ProjectTemplate is one static catalogue entry.
type ProjectTemplate struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Features     []string           `json:"key_features"`
	Technologies []string           `json:"recommended_tech"`
	Components   []string           `json:"components"`
	Complexity   TemplateComplexity `json:"complexity"`
	Timeline     string             `json:"timeline"`
}

// ProjectRecord is the unit persisted once per accepted project-creation prompt.
// ID and CreatedAt are assigned by the store and stay zero on the in-memory copy.
type ProjectRecord struct {
	ID             int64              `json:"id,omitempty"`
	OwnerID        int64              `json:"user_id"`
	Name           string             `json:"project_name"`
	Description    string             `json:"description"`
	Type           ProjectType        `json:"project_type"`
	Features       []string           `json:"key_features"`
	Technologies   []string           `json:"recommended_tech"`
	Components     []string           `json:"components"`
	Complexity     TemplateComplexity `json:"estimated_complexity"`
	Timeline       string             `json:"timeline_estimate"`
	OriginalPrompt string             `json:"original_prompt"`
	CreatedAt      time.Time          `json:"created_at,omitempty"`
}

// ProjectSummary is the row shape the sidebar list reads back.
type ProjectSummary struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        ProjectType `json:"type"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ChatTurn is one persisted exchange.
type ChatTurn struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// IntentAnalysis drives the composer's reasoning preamble. Never persisted.
// Complexity is a plain string because the dispatcher fills it from either
// vocabulary.
type IntentAnalysis struct {
	Domains         []string `json:"domains"`
	Complexity      string   `json:"complexity"`
	HasSpecificGoal bool     `json:"has_specific_goal"`
}

var ErrNotFound = errors.New("not found")
