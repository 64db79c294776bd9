package matching

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/profile"
)

const maxPrimaryCategories = 3

// Duplicate describes a phrase that appears more than once in a keyword table.
type Duplicate struct {
	Phrase string
	First  career.Category
	Last   career.Category
}

// Conflict reports whether the duplicated phrase maps to different categories.
func (d Duplicate) Conflict() bool { return d.First != d.Last }

// CheckKeywords returns every duplicated phrase in table order.
func CheckKeywords(entries []Keyword) []Duplicate {
	first := make(map[string]career.Category, len(entries))
	last := make(map[string]career.Category, len(entries))
	var order []string

	for _, e := range entries {
		phrase := strings.ToLower(strings.TrimSpace(e.Phrase))
		if _, ok := first[phrase]; !ok {
			first[phrase] = e.Category
			continue
		}
		if _, seen := last[phrase]; !seen {
			order = append(order, phrase)
		}
		last[phrase] = e.Category
	}

	dups := make([]Duplicate, 0, len(order))
	for _, phrase := range order {
		dups = append(dups, Duplicate{Phrase: phrase, First: first[phrase], Last: last[phrase]})
	}
	return dups
}

// Mapper infers categories from free text.
type Mapper struct {
	keywords []Keyword
	tech     []string
	creative []string
}

// NewMapper collapses duplicated phrases (the phrase keeps its first position
// and takes its last category) and logs every conflicting duplicate.
func NewMapper(entries []Keyword, logger *zap.Logger) *Mapper {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, d := range CheckKeywords(entries) {
		if d.Conflict() {
			logger.Warn("conflicting keyword in category table",
				zap.String("keyword", d.Phrase),
				zap.String("first", d.First.String()),
				zap.String("effective", d.Last.String()),
			)
			continue
		}
		logger.Debug("duplicate keyword in category table", zap.String("keyword", d.Phrase))
	}

	index := make(map[string]int, len(entries))
	keywords := make([]Keyword, 0, len(entries))
	for _, e := range entries {
		phrase := strings.ToLower(strings.TrimSpace(e.Phrase))
		if phrase == "" {
			continue
		}
		if i, ok := index[phrase]; ok {
			keywords[i].Category = e.Category
			continue
		}
		index[phrase] = len(keywords)
		keywords = append(keywords, Keyword{Phrase: phrase, Category: e.Category})
	}

	return &Mapper{
		keywords: keywords,
		tech:     TechKeywords,
		creative: CreativeKeywords,
	}
}

// DefaultMapper returns a mapper over the built-in tables.
func DefaultMapper(logger *zap.Logger) *Mapper {
	return NewMapper(DefaultKeywords, logger)
}

// Category returns the category of the first table phrase contained in text.
func (m *Mapper) Category(text string) (career.Category, bool) {
	lower := strings.ToLower(text)
	for _, k := range m.keywords {
		if strings.Contains(lower, k.Phrase) {
			return k.Category, true
		}
	}
	return "", false
}

// PrimaryCategories ranks the categories signalled by the interests, hobbies
// and preferred subjects of a profile and returns at most three of them.
func (m *Mapper) PrimaryCategories(p *profile.StudentProfile) []career.Category {
	scores := make(map[career.Category]int)
	var order []career.Category
	add := func(c career.Category, n int) {
		if _, ok := scores[c]; !ok {
			order = append(order, c)
		}
		scores[c] += n
	}

	for _, item := range lowered(p.Interests, p.Hobbies, p.PreferredSubjects) {
		for _, k := range m.keywords {
			if strings.Contains(item, k.Phrase) {
				add(k.Category, 1)
			}
		}
		if containsAny(item, m.tech) {
			add(career.Technology, 2)
			add(career.STEM, 1)
		}
		if containsAny(item, m.creative) {
			add(career.Arts, 2)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	out := make([]career.Category, 0, maxPrimaryCategories)
	for _, c := range order {
		if scores[c] <= 0 || len(out) == maxPrimaryCategories {
			break
		}
		out = append(out, c)
	}
	return out
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// lowered flattens the lists into trimmed lower-case entries, skipping blanks.
func lowered(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, item := range list {
			item = strings.ToLower(strings.TrimSpace(item))
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
