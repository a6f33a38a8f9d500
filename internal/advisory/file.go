package advisory

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prawinrajulu/reclaim/internal/model"
	"github.com/prawinrajulu/reclaim/internal/store"
)

// ClaimFile is the YAML document the CLI consumes: one found item plus one
// claim against it. In production the item comes from the document store
// and the claim from the HTTP layer; the file format exists so operators
// can exercise the engine offline.
type ClaimFile struct {
	ClaimantID string           `yaml:"claimant_id"`
	Item       model.Item       `yaml:"item"`
	Claim      model.ClaimInput `yaml:"claim"`
}

// LoadClaimFile parses a claim file from disk
func LoadClaimFile(path string) (*ClaimFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claim file: %w", err)
	}

	var file ClaimFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse claim file: %w", err)
	}

	if file.Item.ID == "" {
		return nil, fmt.Errorf("claim file %s: item.id is required", path)
	}
	if file.Claim.ItemID == "" {
		file.Claim.ItemID = file.Item.ID
	}
	if file.Item.Status == "" {
		file.Item.Status = model.ItemStatusOpen
	}

	return &file, nil
}

// ItemsFile is the YAML document the match command consumes: the open lost
// reports and open found reports to pair up. In production both lists come
// from the document store.
type ItemsFile struct {
	Lost  []model.Item `yaml:"lost"`
	Found []model.Item `yaml:"found"`
}

// LoadItemsFile parses an items file from disk. Items listed under lost or
// found get that kind and an open status unless the entry says otherwise.
func LoadItemsFile(path string) (*ItemsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	var file ItemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse items file: %w", err)
	}

	defaultItems(file.Lost, model.ItemKindLost)
	defaultItems(file.Found, model.ItemKindFound)

	for _, item := range append(file.Lost, file.Found...) {
		if item.ID == "" {
			return nil, fmt.Errorf("items file %s: every item needs an id", path)
		}
	}

	return &file, nil
}

func defaultItems(items []model.Item, kind model.ItemKind) {
	for i := range items {
		if items[i].Kind == "" {
			items[i].Kind = kind
		}
		if items[i].Status == "" {
			items[i].Status = model.ItemStatusOpen
		}
	}
}

// FileRunner analyzes claim files with a shared engine and an in-memory
// item store
type FileRunner struct {
	engine *Engine
	items  *store.MemoryStore
}

// NewFileRunner creates a runner from configuration
func NewFileRunner(cfg *model.Config) *FileRunner {
	items := store.NewMemoryStore()
	return &FileRunner{
		engine: NewEngine(cfg, items),
		items:  items,
	}
}

// Engine exposes the underlying engine
func (r *FileRunner) Engine() *Engine {
	return r.engine
}

// FileReport couples a claim file with its analysis outcome
type FileReport struct {
	Path   string
	File   *ClaimFile
	Result *Result
}

// AnalyzeFile loads one claim file, registers its item, and runs the full
// advisory pipeline
func (r *FileRunner) AnalyzeFile(ctx context.Context, path string) (*FileReport, error) {
	file, err := LoadClaimFile(path)
	if err != nil {
		return nil, err
	}

	r.items.Put(file.Item)

	result, err := r.engine.AnalyzeClaim(ctx, file.ClaimantID, file.Claim)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}

	return &FileReport{
		Path:   path,
		File:   file,
		Result: result,
	}, nil
}
