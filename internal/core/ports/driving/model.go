package driving

import "github.com/allanrobert0203/tp/internal/core/domain"

// Model is the in-memory state commands operate on: the candidate book, the
// filtered view of its candidates, and user preferences.
type Model interface {
	// UserPrefs returns a copy of the current preferences.
	UserPrefs() domain.UserPrefs

	// SetUserPrefs replaces the preferences.
	SetUserPrefs(prefs domain.UserPrefs)

	// GuiSettings returns the stored UI geometry.
	GuiSettings() domain.GuiSettings

	// SetGuiSettings replaces the stored UI geometry.
	SetGuiSettings(settings domain.GuiSettings)

	// FindrFilePath returns the data file location from preferences.
	FindrFilePath() string

	// SetFindrFilePath changes the data file location.
	SetFindrFilePath(path string)

	// Findr returns a read-only view of the candidate book.
	Findr() domain.ReadOnlyFindr

	// SetFindr replaces the candidate book with a copy of data.
	SetFindr(data domain.ReadOnlyFindr) error

	// HasCandidate reports whether a candidate with the same identity exists.
	HasCandidate(c domain.Candidate) bool

	// AddCandidate adds c, registers its tags and shows all candidates.
	AddCandidate(c domain.Candidate) error

	// DeleteCandidate removes target, which must exist.
	DeleteCandidate(target domain.Candidate) error

	// SetCandidate replaces target with edited and registers edited's tags.
	SetCandidate(target, edited domain.Candidate) error

	// ClearCandidates removes every candidate. Tags are kept.
	ClearCandidates()

	// ClearCandidatesAtStage removes every candidate in stage and returns the count.
	ClearCandidatesAtStage(stage domain.Stage) int

	// HasTag reports whether t is registered.
	HasTag(t domain.Tag) bool

	// AddTag registers t.
	AddTag(t domain.Tag) error

	// DeleteTag unregisters t and strips it from every candidate.
	DeleteTag(t domain.Tag) error

	// FilteredCandidateList returns the candidates matching the current
	// predicate, in candidate book order.
	FilteredCandidateList() []domain.Candidate

	// UpdateFilteredCandidateList changes the predicate.
	UpdateFilteredCandidateList(pred domain.Predicate)

	// Subscribe registers fn to run after the candidate book or the filter
	// changes. The returned function removes the subscription.
	Subscribe(fn func()) func()
}
