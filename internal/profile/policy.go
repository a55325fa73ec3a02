package profile

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// OS draw is weighted rather than uniform: slight bias toward linux/windows.
var (
	osChoices = []string{OSLinux, OSWindows, OSMac}
	osWeights = []float64{0.35, 0.35, 0.30}
)

// Age bounds, inclusive.
const (
	minAge = 18
	maxAge = 70
)

// Label pools for the trait enumerations.
var (
	insanePositive = []string{"yes", "for sure"}
	insaneNegative = []string{"no", "couldn't be more lucid"}
	richNegative   = []string{"no", "not at all", "just crazy", "Believe so"}
)

// osPolicy centralizes every OS-conditioned weight, threshold and reason
// source so the distributions stay auditable as data instead of being
// scattered across control flow.
type osPolicy struct {
	// alwaysInsane short-circuits the insanity draw (mac users).
	alwaysInsane bool
	// insaneProb is the independent chance of the insane flag when
	// alwaysInsane is false and no problematic branch fired.
	insaneProb float64
	// problematicProb is the chance of the joint degradation branch:
	// niceness drops to "no" and the insanity/wealth flags each flip
	// with 50% probability inside that same branch.
	problematicProb float64
	// niceValues/niceWeights drive the default niceness draw.
	niceValues  []string
	niceWeights []float64
	// richThreshold is the chance the wealth label resolves to "yes"
	// without a force-rich override.
	richThreshold float64
	// reasonPool and templates are the two reason sources; a row picks
	// between them with equal probability.
	reasonPool []string
	templates  []func(f *gofakeit.Faker) string
}

var policies = map[string]osPolicy{
	OSMac: {
		alwaysInsane:  true,
		niceValues:    []string{"yes", "sometimes", "no"},
		niceWeights:   []float64{0.70, 0.15, 0.15},
		richThreshold: 0.15,
		reasonPool: []string{
			"newbies",
			"dummies",
			"don't know what's doing",
			"like the apple",
			"read steve jobs book",
			"feels good using an overpriced product",
			"because people say it's good",
		},
		templates: []func(f *gofakeit.Faker) string{
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Chose mac because the %s hardware felt inspiring during %s", f.Adjective(), f.Word())
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Uses mac due to %s", f.Sentence(7))
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Mac seemed like a good idea after %s", f.Sentence(4))
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Believes mac helps with %s, for some reason", f.Word())
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Mac felt more premium while dealing with %s", f.Word())
			},
		},
	},
	OSWindows: {
		problematicProb: 0.20,
		niceValues:      []string{"yes"},
		niceWeights:     []float64{1.0},
		richThreshold:   0.20,
		reasonPool: []string{
			"productivity",
			"compatibility",
			"gaming",
			"has linux",
			"has evolved since windows 10",
		},
		templates: []func(f *gofakeit.Faker) string{
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Uses windows for improved %s and more %s workflows", f.Word(), f.Adjective())
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Windows provides better %s support according to %s", f.Word(), f.Sentence(4))
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Feels more productive on windows while handling %s", f.Word())
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Windows tooling fits the current %s stack", f.Word())
			},
		},
	},
	OSLinux: {
		insaneProb:    0.15,
		niceValues:    []string{"yes"},
		niceWeights:   []float64{1.0},
		richThreshold: 0.20,
		reasonPool: []string{
			"like to develop their own drivers",
			"security",
			"for work",
			"lightweight",
			"GUI has evolved",
			"usability is nice",
			"the Original Linux",
		},
		templates: []func(f *gofakeit.Faker) string{
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Linux chosen for %s efficiency and stability", f.Word())
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Believes linux improves %s and reliability", f.Word())
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Uses linux because %s", f.Sentence(7))
			},
			func(f *gofakeit.Faker) string {
				return fmt.Sprintf("Linux gives more control over %s and system behavior", f.Word())
			},
		},
	},
}

// Brazilian name and state pools. The faker has no pt-BR locale, so the
// majority-locale bias draws from these fixed lists.
var brFirstNames = []string{
	"Ana", "João", "Maria", "Pedro", "Lucas", "Mariana", "Gabriel", "Beatriz",
	"Rafael", "Camila", "Felipe", "Larissa", "Gustavo", "Juliana", "Thiago",
	"Fernanda", "Bruno", "Carolina", "Diego", "Patrícia", "Rodrigo", "Aline",
	"Marcos", "Letícia",
}

var brSurnames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Pereira", "Costa", "Rodrigues",
	"Almeida", "Nascimento", "Lima", "Araújo", "Fernandes", "Carvalho",
	"Gomes", "Martins", "Rocha", "Ribeiro", "Alves", "Monteiro", "Barbosa",
}

var brStates = []string{
	"acre", "alagoas", "amapá", "amazonas", "bahia", "ceará",
	"distrito federal", "espírito santo", "goiás", "maranhão", "mato grosso",
	"mato grosso do sul", "minas gerais", "pará", "paraíba", "paraná",
	"pernambuco", "piauí", "rio de janeiro", "rio grande do norte",
	"rio grande do sul", "rondônia", "roraima", "santa catarina", "são paulo",
	"sergipe", "tocantins",
}
