package domain

import "strings"

// Predicate selects candidates for the filtered list.
// Predicates are plain values so commands holding them stay comparable.
type Predicate interface {
	Test(c Candidate) bool
}

// PredicateFunc adapts an ordinary function to a Predicate.
type PredicateFunc func(c Candidate) bool

// Test calls f(c).
func (f PredicateFunc) Test(c Candidate) bool {
	return f(c)
}

// MatchAll accepts every candidate.
type MatchAll struct{}

// Test always returns true.
func (MatchAll) Test(Candidate) bool {
	return true
}

// NameContainsKeywords accepts candidates whose name contains any of the
// keywords as a whole word, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

// Test reports whether any keyword matches a word of c's name.
func (p NameContainsKeywords) Test(c Candidate) bool {
	words := strings.Fields(c.Name().String())
	for _, kw := range p.Keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}

// AtStage accepts candidates in the given stage.
type AtStage struct {
	Stage Stage
}

// Test reports whether c is at p.Stage.
func (p AtStage) Test(c Candidate) bool {
	return c.Stage() == p.Stage
}

// HasTag accepts candidates carrying Tag.
type HasTag struct {
	Tag Tag
}

// Test reports whether c carries p.Tag.
func (p HasTag) Test(c Candidate) bool {
	return c.HasTag(p.Tag)
}
