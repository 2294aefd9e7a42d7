package services

import (
	"fmt"
	"slices"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Ensure ModelManager implements the interface.
var _ driving.Model = (*ModelManager)(nil)

// ModelManager is the in-memory model of the application.
// It owns a Findr, the predicate selecting the filtered candidate list and
// the user preferences. It is not safe for concurrent use; UIs serialise
// access through a single event loop.
type ModelManager struct {
	findr     *domain.Findr
	prefs     domain.UserPrefs
	predicate domain.Predicate
	filtered  []domain.Candidate

	listeners []func()
	nextID    int
	ids       []int
}

// NewModelManager creates a model holding a copy of data.
// It panics if data is nil.
func NewModelManager(data domain.ReadOnlyFindr, prefs domain.UserPrefs) (*ModelManager, error) {
	findr, err := domain.NewFindrFrom(data)
	if err != nil {
		return nil, fmt.Errorf("copy findr: %w", err)
	}

	m := &ModelManager{
		findr:     findr,
		prefs:     prefs,
		predicate: domain.MatchAll{},
	}
	m.refilter()
	findr.Subscribe(m.onFindrChanged)
	return m, nil
}

// UserPrefs returns a copy of the current preferences.
func (m *ModelManager) UserPrefs() domain.UserPrefs {
	return m.prefs
}

// SetUserPrefs replaces the preferences.
func (m *ModelManager) SetUserPrefs(prefs domain.UserPrefs) {
	m.prefs = prefs
}

// GuiSettings returns the stored UI geometry.
func (m *ModelManager) GuiSettings() domain.GuiSettings {
	return m.prefs.GuiSettings
}

// SetGuiSettings replaces the stored UI geometry.
func (m *ModelManager) SetGuiSettings(settings domain.GuiSettings) {
	m.prefs.GuiSettings = settings
}

// FindrFilePath returns the data file location from preferences.
func (m *ModelManager) FindrFilePath() string {
	return m.prefs.FindrFilePath
}

// SetFindrFilePath changes the data file location.
func (m *ModelManager) SetFindrFilePath(path string) {
	m.prefs.FindrFilePath = path
}

// Findr returns a read-only view of the candidate book.
func (m *ModelManager) Findr() domain.ReadOnlyFindr {
	return m.findr
}

// SetFindr replaces the candidate book with a copy of data.
func (m *ModelManager) SetFindr(data domain.ReadOnlyFindr) error {
	return m.findr.ResetData(data)
}

// HasCandidate reports whether a candidate with the same identity exists.
func (m *ModelManager) HasCandidate(c domain.Candidate) bool {
	return m.findr.HasCandidate(c)
}

// AddCandidate adds c, registers any of its tags not yet known and resets
// the filter so the new candidate is visible.
func (m *ModelManager) AddCandidate(c domain.Candidate) error {
	if err := m.findr.AddCandidate(c); err != nil {
		return err
	}
	if err := m.registerTags(c.Tags()); err != nil {
		return err
	}
	m.UpdateFilteredCandidateList(domain.MatchAll{})
	return nil
}

// DeleteCandidate removes target, which must exist.
func (m *ModelManager) DeleteCandidate(target domain.Candidate) error {
	return m.findr.RemoveCandidate(target)
}

// SetCandidate replaces target with edited and registers edited's tags.
func (m *ModelManager) SetCandidate(target, edited domain.Candidate) error {
	if err := m.findr.SetCandidate(target, edited); err != nil {
		return err
	}
	return m.registerTags(edited.Tags())
}

// ClearCandidates removes every candidate, whatever the filter. Tags are kept.
func (m *ModelManager) ClearCandidates() {
	m.findr.RemoveCandidatesIf(domain.MatchAll{})
}

// ClearCandidatesAtStage removes every candidate in stage and returns the count.
func (m *ModelManager) ClearCandidatesAtStage(stage domain.Stage) int {
	return m.findr.RemoveCandidatesIf(domain.AtStage{Stage: stage})
}

// HasTag reports whether t is registered.
func (m *ModelManager) HasTag(t domain.Tag) bool {
	return m.findr.HasTag(t)
}

// AddTag registers t.
func (m *ModelManager) AddTag(t domain.Tag) error {
	return m.findr.AddTag(t)
}

// DeleteTag unregisters t and strips it from every candidate carrying it.
func (m *ModelManager) DeleteTag(t domain.Tag) error {
	if err := m.findr.RemoveTag(t); err != nil {
		return err
	}
	for _, c := range m.findr.Candidates() {
		if !c.HasTag(t) {
			continue
		}
		if err := m.findr.SetCandidate(c, c.WithoutTag(t)); err != nil {
			return fmt.Errorf("strip tag %s from %s: %w", t, c.Name(), err)
		}
	}
	return nil
}

func (m *ModelManager) registerTags(tags []domain.Tag) error {
	for _, t := range tags {
		if m.findr.HasTag(t) {
			continue
		}
		if err := m.findr.AddTag(t); err != nil {
			return err
		}
	}
	return nil
}

// FilteredCandidateList returns a copy of the candidates matching the
// current predicate, in candidate book order.
func (m *ModelManager) FilteredCandidateList() []domain.Candidate {
	return append([]domain.Candidate(nil), m.filtered...)
}

// UpdateFilteredCandidateList changes the predicate and recomputes the view.
func (m *ModelManager) UpdateFilteredCandidateList(pred domain.Predicate) {
	if pred == nil {
		panic("services: nil predicate")
	}
	m.predicate = pred
	m.refilter()
	m.notify()
}

// Subscribe registers fn to run after the candidate book or the filter
// changes. The returned function removes the subscription.
func (m *ModelManager) Subscribe(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.listeners = append(m.listeners, fn)
	m.ids = append(m.ids, id)
	return func() {
		for i, existing := range m.ids {
			if existing == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				m.ids = append(m.ids[:i], m.ids[i+1:]...)
				return
			}
		}
	}
}

func (m *ModelManager) onFindrChanged() {
	m.refilter()
	m.notify()
}

func (m *ModelManager) refilter() {
	m.filtered = m.filtered[:0]
	for _, c := range m.findr.Candidates() {
		if m.predicate.Test(c) {
			m.filtered = append(m.filtered, c)
		}
	}
}

func (m *ModelManager) notify() {
	for _, fn := range slices.Clone(m.listeners) {
		fn()
	}
}
