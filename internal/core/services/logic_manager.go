package services

import (
	"context"
	"errors"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/parser"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
	"github.com/allanrobert0203/tp/internal/logger"
)

// Ensure LogicManager implements the interface.
var _ driving.Logic = (*LogicManager)(nil)

// LogicManager parses command text, runs the command against the model and
// saves the candidate book whenever a command changed it.
type LogicManager struct {
	model   driving.Model
	storage driven.FindrStorage
}

// NewLogicManager creates a LogicManager.
func NewLogicManager(model driving.Model, storage driven.FindrStorage) *LogicManager {
	return &LogicManager{
		model:   model,
		storage: storage,
	}
}

// Execute parses text as a command and runs it.
// The candidate book is saved only if the command changed it; a failed save
// is reported as a *commands.CommandError, with the change kept in memory.
func (l *LogicManager) Execute(ctx context.Context, text string) (driving.CommandResult, error) {
	logger.Debug("user command: %s", text)

	cmd, err := parser.ParseCommand(text)
	if err != nil {
		return driving.CommandResult{}, err
	}

	before := snapshot(l.model.Findr())
	result, err := cmd.Execute(l.model)
	if err != nil {
		return driving.CommandResult{}, err
	}

	if !before.matches(l.model.Findr()) {
		if err := l.storage.Save(ctx, l.model.Findr()); err != nil {
			logger.Warn("save to %s failed: %v", l.storage.Path(), err)
			return driving.CommandResult{}, commands.Errorf(err, commands.MessageSaveFailed, err)
		}
		logger.Debug("saved candidate book to %s", l.storage.Path())
	}

	return result, nil
}

// Reload re-reads the candidate book from storage and replaces the model's
// copy if it differs. A missing data file leaves the model untouched.
func (l *LogicManager) Reload(ctx context.Context) (bool, error) {
	loaded, err := l.storage.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if snapshot(loaded).matches(l.model.Findr()) {
		return false, nil
	}
	if err := l.model.SetFindr(loaded); err != nil {
		return false, err
	}
	logger.Info("reloaded %d candidates from %s", len(loaded.Candidates()), l.storage.Path())
	return true, nil
}

// Findr returns a read-only view of the candidate book.
func (l *LogicManager) Findr() domain.ReadOnlyFindr {
	return l.model.Findr()
}

// FilteredCandidateList returns the candidates currently shown.
func (l *LogicManager) FilteredCandidateList() []domain.Candidate {
	return l.model.FilteredCandidateList()
}

// FindrFilePath returns the location of the candidate data.
func (l *LogicManager) FindrFilePath() string {
	return l.storage.Path()
}

// GuiSettings returns the stored UI geometry.
func (l *LogicManager) GuiSettings() domain.GuiSettings {
	return l.model.GuiSettings()
}

// SetGuiSettings records the UI geometry for the next session.
func (l *LogicManager) SetGuiSettings(settings domain.GuiSettings) {
	l.model.SetGuiSettings(settings)
}

// Subscribe registers fn to run after the displayed state changes.
func (l *LogicManager) Subscribe(fn func()) func() {
	return l.model.Subscribe(fn)
}

// findrSnapshot is a point-in-time copy of a candidate book's contents.
type findrSnapshot struct {
	candidates []domain.Candidate
	tags       []domain.Tag
}

func snapshot(f domain.ReadOnlyFindr) findrSnapshot {
	return findrSnapshot{candidates: f.Candidates(), tags: f.Tags()}
}

// matches reports whether f holds equal candidates and tags in the same order.
func (s findrSnapshot) matches(f domain.ReadOnlyFindr) bool {
	candidates, tags := f.Candidates(), f.Tags()
	if len(candidates) != len(s.candidates) || len(tags) != len(s.tags) {
		return false
	}
	for i := range candidates {
		if !candidates[i].Equal(s.candidates[i]) {
			return false
		}
	}
	for i := range tags {
		if tags[i] != s.tags[i] {
			return false
		}
	}
	return true
}
