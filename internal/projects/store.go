// Package projects persists generated project blueprints and serves them back
// to their owner.
package projects

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// Store is implemented by every project backend.
type Store interface {
	InsertProject(ctx context.Context, rec *domain.ProjectRecord) error
	ListProjects(ctx context.Context, owner int64) ([]domain.ProjectSummary, error)
	GetProject(ctx context.Context, owner, id int64) (*domain.ProjectRecord, error)
}

// EncodeList renders a string list as the JSON array stored in a TEXT column.
// A nil list is stored as "[]".
func EncodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// DecodeList parses a stored JSON array. NULL and empty columns decode to nil.
func DecodeList(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

// EncodeRecord returns the features, technologies and components columns.
func EncodeRecord(rec *domain.ProjectRecord) (features, technologies, components string, err error) {
	if features, err = EncodeList(rec.Features); err != nil {
		return
	}
	if technologies, err = EncodeList(rec.Technologies); err != nil {
		return
	}
	components, err = EncodeList(rec.Components)
	return
}

// DecodeRecord fills the list fields of rec from their stored columns.
func DecodeRecord(rec *domain.ProjectRecord, features, technologies, components *string) error {
	var err error
	if rec.Features, err = DecodeList(features); err != nil {
		return err
	}
	if rec.Technologies, err = DecodeList(technologies); err != nil {
		return err
	}
	if rec.Components, err = DecodeList(components); err != nil {
		return err
	}
	return nil
}
