package genre

import (
	"errors"
	"strings"
)

// ErrUnrecognized is returned when a label is not part of the taxonomy.
var ErrUnrecognized = errors.New("unrecognized genre")

// Other is the sentinel primary genre for titles with no indicator set.
const Other = "Other"

// Genre is one entry of the fixed taxonomy. Label is the canonical display
// label, Column the movies_titles indicator column it maps to.
type Genre struct {
	Label   string
	Column  string
	aliases []string
}

// Taxonomy is the fixed, ordered genre list. The order is the priority
// ranking used for primary-genre resolution and must not be reordered.
var Taxonomy = []Genre{
	{Label: "Action", Column: "Action"},
	{Label: "Adventure", Column: "Adventure"},
	{Label: "Anime Series International TV Shows", Column: "Anime Series International TV Shows", aliases: []string{"Anime"}},
	{Label: "British TV Shows Docuseries International TV Shows", Column: "British TV Shows Docuseries International TV Shows", aliases: []string{"British TV"}},
	{Label: "Children", Column: "Children"},
	{Label: "Comedy", Column: "Comedies", aliases: []string{"Comedies"}},
	{Label: "Comedy Dramas International Movies", Column: "Comedies Dramas International Movies", aliases: []string{"Comedies Dramas International Movies"}},
	{Label: "Comedy Romantic Movies", Column: "Comedies Romantic Movies", aliases: []string{"Comedies Romantic Movies"}},
	{Label: "Crime TV Shows Docuseries", Column: "Crime TV Shows Docuseries"},
	{Label: "Documentaries", Column: "Documentaries", aliases: []string{"Documentary"}},
	{Label: "Documentaries International Movies", Column: "Documentaries International Movies"},
	{Label: "Docuseries", Column: "Docuseries"},
	{Label: "Drama", Column: "Dramas", aliases: []string{"Dramas"}},
	{Label: "Drama International Movies", Column: "Dramas International Movies", aliases: []string{"Dramas International Movies"}},
	{Label: "Drama Romantic Movies", Column: "Dramas Romantic Movies", aliases: []string{"Dramas Romantic Movies"}},
	{Label: "Family Movies", Column: "Family Movies", aliases: []string{"Family"}},
	{Label: "Fantasy", Column: "Fantasy"},
	{Label: "Horror", Column: "Horror Movies", aliases: []string{"Horror Movies"}},
	{Label: "International Movies Thrillers", Column: "International Movies Thrillers"},
	{Label: "International TV Shows Romantic TV Shows TV Dramas", Column: "International TV Shows Romantic TV Shows TV Dramas"},
	{Label: "Kids' TV", Column: "Kids' TV", aliases: []string{"Kids TV"}},
	{Label: "Language TV Shows", Column: "Language TV Shows"},
	{Label: "Musicals", Column: "Musicals"},
	{Label: "Nature TV", Column: "Nature TV"},
	{Label: "Reality TV", Column: "Reality TV"},
	{Label: "Spirituality", Column: "Spirituality"},
	{Label: "TV Action", Column: "TV Action"},
	{Label: "TV Comedies", Column: "TV Comedies"},
	{Label: "TV Dramas", Column: "TV Dramas"},
	{Label: "Talk Shows TV Comedies", Column: "Talk Shows TV Comedies"},
	{Label: "Thriller", Column: "Thrillers", aliases: []string{"Thrillers"}},
}

// Count is the number of genres in the taxonomy.
var Count = len(Taxonomy)

// Flags holds the per-title genre indicators, indexed by taxonomy position.
type Flags []bool

// NewFlags returns an all-false indicator set.
func NewFlags() Flags {
	return make(Flags, Count)
}

// Has reports whether the indicator at taxonomy position i is set.
func (f Flags) Has(i int) bool {
	return i >= 0 && i < len(f) && f[i]
}

// Set sets the indicator at taxonomy position i.
func (f Flags) Set(i int) {
	if i >= 0 && i < len(f) {
		f[i] = true
	}
}

// lookup maps lower-cased labels, aliases and column names to taxonomy
// positions. Built once at init.
var lookup = buildLookup()

func buildLookup() map[string]int {
	m := make(map[string]int, Count*2)
	for i, g := range Taxonomy {
		m[strings.ToLower(g.Label)] = i
		m[strings.ToLower(g.Column)] = i
		for _, a := range g.aliases {
			m[strings.ToLower(a)] = i
		}
	}
	return m
}

// Index resolves a label (canonical, alias or column form, case-insensitive)
// to its taxonomy position.
func Index(label string) (int, error) {
	i, ok := lookup[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, ErrUnrecognized
	}
	return i, nil
}

// Canonical resolves a label to its canonical display form.
func Canonical(label string) (string, error) {
	i, err := Index(label)
	if err != nil {
		return "", err
	}
	return Taxonomy[i].Label, nil
}

// Of returns the labels of all set indicators, in taxonomy order.
func Of(f Flags) []string {
	var out []string
	for i := range Taxonomy {
		if f.Has(i) {
			out = append(out, Taxonomy[i].Label)
		}
	}
	return out
}

// PrimaryOf returns the first set indicator's label in taxonomy order, or
// Other when no indicator is set. Total; never fails.
func PrimaryOf(f Flags) string {
	for i := range Taxonomy {
		if f.Has(i) {
			return Taxonomy[i].Label
		}
	}
	return Other
}

// Labels returns all canonical labels in taxonomy order.
func Labels() []string {
	out := make([]string, Count)
	for i, g := range Taxonomy {
		out[i] = g.Label
	}
	return out
}

// Columns returns all indicator column names in taxonomy order.
func Columns() []string {
	out := make([]string, Count)
	for i, g := range Taxonomy {
		out[i] = g.Column
	}
	return out
}
