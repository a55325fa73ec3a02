package profile

import (
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Synthesizer produces complete profiles from an explicit random source.
// Both the weighted draws and the faker share the same seed, so a fixed
// seed reproduces the exact row sequence.
type Synthesizer struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewSynthesizer creates a synthesizer seeded with the given value.
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

// Synthesize draws one complete profile. Every branch is exhaustive: all
// nine fields are populated on every path.
func (s *Synthesizer) Synthesize() UserProfile {
	country := s.randomCountry()

	p := UserProfile{
		Name:    s.randomName(),
		Country: country,
		State:   s.randomState(country),
		Age:     s.rng.Intn(maxAge-minAge+1) + minAge,
		OS:      weightedChoice(s.rng, osChoices, osWeights),
	}

	pol := policies[p.OS]

	insane := pol.alwaysInsane
	forceRich := false
	nice := weightedChoice(s.rng, pol.niceValues, pol.niceWeights)

	if pol.problematicProb > 0 && s.rng.Float64() < pol.problematicProb {
		// Joint perturbation: the same branch that degrades niceness may
		// also flip the insanity and wealth flags.
		nice = "no"
		if s.rng.Float64() < 0.5 {
			insane = true
		}
		if s.rng.Float64() < 0.5 {
			forceRich = true
		}
	} else if !insane && pol.insaneProb > 0 && s.rng.Float64() < pol.insaneProb {
		insane = true
	}

	p.IsNice = nice
	p.IsInsane = s.insaneLabel(insane)
	p.IsRich = s.richLabel(pol, forceRich)
	p.Reason = s.reason(pol)

	return p
}

func (s *Synthesizer) randomName() string {
	// 70% Brazilian names, 30% global.
	if s.rng.Float64() < 0.7 {
		first := brFirstNames[s.rng.Intn(len(brFirstNames))]
		last := brSurnames[s.rng.Intn(len(brSurnames))]
		return first + " " + last
	}
	return s.faker.Name()
}

func (s *Synthesizer) randomCountry() string {
	// 70% brazil, 30% other countries.
	if s.rng.Float64() < 0.7 {
		return "brazil"
	}
	return strings.ToLower(s.faker.Country())
}

func (s *Synthesizer) randomState(country string) string {
	if country == "brazil" {
		return brStates[s.rng.Intn(len(brStates))]
	}
	return strings.ToLower(s.faker.State())
}

func (s *Synthesizer) insaneLabel(insane bool) string {
	if insane {
		return insanePositive[s.rng.Intn(len(insanePositive))]
	}
	return insaneNegative[s.rng.Intn(len(insaneNegative))]
}

func (s *Synthesizer) richLabel(pol osPolicy, force bool) string {
	if force || s.rng.Float64() < pol.richThreshold {
		return "yes"
	}
	return richNegative[s.rng.Intn(len(richNegative))]
}

func (s *Synthesizer) reason(pol osPolicy) string {
	if s.rng.Float64() < 0.5 {
		return pol.reasonPool[s.rng.Intn(len(pol.reasonPool))]
	}
	tpl := pol.templates[s.rng.Intn(len(pol.templates))]
	return tpl(s.faker)
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
