package testutil

import (
	"github.com/allanrobert0203/tp/internal/core/domain"
)

// One-based indices used throughout command tests.
var (
	IndexFirstCandidate  = domain.IndexFromOneBased(1)
	IndexSecondCandidate = domain.IndexFromOneBased(2)
	IndexThirdCandidate  = domain.IndexFromOneBased(3)
)

// Field values for the two candidates used by parser tests.
const (
	ValidNameAmy    = "Amy Bee"
	ValidNameBob    = "Bob Choo"
	ValidPhoneAmy   = "11111111"
	ValidPhoneBob   = "22222222"
	ValidEmailAmy   = "amy@example.com"
	ValidEmailBob   = "bob@example.com"
	ValidAddressAmy = "Block 312, Amy Street 1"
	ValidAddressBob = "Block 123, Bobby Street 3"
	ValidTagHusband = "husband"
	ValidTagFriend  = "friend"
	ValidStageAmy   = domain.StageApplied
	ValidStageBob   = domain.StageInterview
	InvalidName     = "James&"
	InvalidPhone    = "911a"
	InvalidEmail    = "bob!yahoo"
	InvalidAddress  = ""
	InvalidTag      = "hubby*"
	InvalidStage    = "Hired"
)

// Typical candidates. Their stages cover every pipeline stage.
func Alice() domain.Candidate {
	return NewCandidateBuilder().WithName("Alice Pauline").WithPhone("94351253").
		WithEmail("alice@example.com").WithAddress("123, Jurong West Ave 6, #08-111").
		WithStage(domain.StageApplied).WithTags("friends").Build()
}

func Benson() domain.Candidate {
	return NewCandidateBuilder().WithName("Benson Meier").WithPhone("98765432").
		WithEmail("johnd@example.com").WithAddress("311, Clementi Ave 2, #02-25").
		WithStage(domain.StageInterview).WithTags("owesMoney", "friends").Build()
}

func Carl() domain.Candidate {
	return NewCandidateBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithAddress("wall street").
		WithStage(domain.StageOffer).Build()
}

func Daniel() domain.Candidate {
	return NewCandidateBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithAddress("10th street").
		WithStage(domain.StageApplied).WithTags("friends").Build()
}

func Elle() domain.Candidate {
	return NewCandidateBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithAddress("michegan ave").
		WithStage(domain.StageRejected).Build()
}

func Fiona() domain.Candidate {
	return NewCandidateBuilder().WithName("Fiona Kunz").WithPhone("9482427").
		WithEmail("lydia@example.com").WithAddress("little tokyo").
		WithStage(domain.StageInterview).Build()
}

func George() domain.Candidate {
	return NewCandidateBuilder().WithName("George Best").WithPhone("9482442").
		WithEmail("anna@example.com").WithAddress("4th street").
		WithStage(domain.StageApplied).Build()
}

// Candidates not in the typical Findr.
func Hoon() domain.Candidate {
	return NewCandidateBuilder().WithName("Hoon Meier").WithPhone("8482424").
		WithEmail("stefan@example.com").WithAddress("little india").Build()
}

func Ida() domain.Candidate {
	return NewCandidateBuilder().WithName("Ida Mueller").WithPhone("8482131").
		WithEmail("hans@example.com").WithAddress("chicago ave").Build()
}

func Amy() domain.Candidate {
	return NewCandidateBuilder().WithName(ValidNameAmy).WithPhone(ValidPhoneAmy).
		WithEmail(ValidEmailAmy).WithAddress(ValidAddressAmy).
		WithStage(ValidStageAmy).WithTags(ValidTagFriend).Build()
}

func Bob() domain.Candidate {
	return NewCandidateBuilder().WithName(ValidNameBob).WithPhone(ValidPhoneBob).
		WithEmail(ValidEmailBob).WithAddress(ValidAddressBob).
		WithStage(ValidStageBob).WithTags(ValidTagHusband, ValidTagFriend).Build()
}

// KeywordMatchingMeier is a keyword that matches Benson and Daniel.
const KeywordMatchingMeier = "Meier"

// TypicalCandidates returns the typical candidates in insertion order.
func TypicalCandidates() []domain.Candidate {
	return []domain.Candidate{Alice(), Benson(), Carl(), Daniel(), Elle(), Fiona(), George()}
}

// TypicalFindr returns a Findr holding the typical candidates and their tags.
func TypicalFindr() *domain.Findr {
	f := domain.NewFindr()
	for _, c := range TypicalCandidates() {
		for _, t := range c.Tags() {
			if !f.HasTag(t) {
				if err := f.AddTag(t); err != nil {
					panic(err)
				}
			}
		}
		if err := f.AddCandidate(c); err != nil {
			panic(err)
		}
	}
	return f
}
