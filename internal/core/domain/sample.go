package domain

type sampleCandidate struct {
	name, phone, email, address string
	stage                       Stage
	tags                        []string
}

var sampleCandidates = []sampleCandidate{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40",
		StageApplied, []string{"backend"}},
	{"Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
		StageInterview, []string{"frontend", "referral"}},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04",
		StageOffer, []string{"design"}},
	{"David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43",
		StageApplied, []string{"backend"}},
	{"Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35",
		StageRejected, []string{}},
	{"Roy Balakrishnan", "92624417", "royb@example.com", "Blk 45 Aljunied Street 85, #11-31",
		StageInterview, []string{"referral"}},
}

// SampleFindr returns a Findr populated with demonstration candidates.
// It is used on first launch when no data file exists.
func SampleFindr() *Findr {
	f := NewFindr()
	for _, s := range sampleCandidates {
		tags := make([]Tag, 0, len(s.tags))
		for _, name := range s.tags {
			tag := mustTag(name)
			tags = append(tags, tag)
			if !f.HasTag(tag) {
				_ = f.AddTag(tag)
			}
		}
		c, err := NewCandidate(mustName(s.name), mustPhone(s.phone), mustEmail(s.email),
			mustAddress(s.address), s.stage, tags)
		if err != nil {
			panic(err)
		}
		_ = f.AddCandidate(c)
	}
	return f
}

func mustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func mustPhone(s string) Phone {
	p, err := NewPhone(s)
	if err != nil {
		panic(err)
	}
	return p
}

func mustEmail(s string) Email {
	e, err := NewEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}

func mustAddress(s string) Address {
	a, err := NewAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func mustTag(s string) Tag {
	t, err := NewTag(s)
	if err != nil {
		panic(err)
	}
	return t
}
