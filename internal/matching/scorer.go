package matching

import (
	"slices"
	"strings"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/profile"
)

const (
	InterestWeight = 0.40
	AcademicWeight = 0.25
	SkillsWeight   = 0.20
	GoalsWeight    = 0.15

	neutralScore = 0.5
)

// Breakdown holds the sub-scores behind a match score.
type Breakdown struct {
	Interest float64 `json:"interest"`
	Academic float64 `json:"academic"`
	Skills   float64 `json:"skills"`
	Goals    float64 `json:"goals"`
	Total    float64 `json:"total"`
}

// Scorer computes how well a career fits a student profile.
type Scorer struct {
	mapper   *Mapper
	subjects map[string][]string
	science  []string
}

func NewScorer(mapper *Mapper) *Scorer {
	return &Scorer{
		mapper:   mapper,
		subjects: SubjectCareers,
		science:  ScienceSubjects,
	}
}

// Score returns the weighted match score in [0,1].
func (s *Scorer) Score(p *profile.StudentProfile, r career.Record) float64 {
	return s.Breakdown(p, r).Total
}

// Breakdown returns every sub-score together with the weighted total.
func (s *Scorer) Breakdown(p *profile.StudentProfile, r career.Record) Breakdown {
	b := Breakdown{
		Interest: s.interest(p, r),
		Academic: s.academic(p, r),
		Skills:   skills(p, r),
		Goals:    goals(p, r),
	}

	weighted := b.Interest*InterestWeight + b.Academic*AcademicWeight + b.Skills*SkillsWeight + b.Goals*GoalsWeight
	b.Total = clamp(weighted / (InterestWeight + AcademicWeight + SkillsWeight + GoalsWeight))
	return b
}

func (s *Scorer) interest(p *profile.StudentProfile, r career.Record) float64 {
	items := lowered(p.Interests, p.Hobbies)
	if len(items) == 0 {
		return 0
	}

	keywords := s.careerKeywords(r)
	titleWords := strings.Fields(strings.ToLower(r.Title))
	skills := lowered(r.RequiredSkills)

	var total float64
	for _, item := range items {
		switch {
		case containsAny(item, keywords):
			total += 1.0
		case s.categoryOf(item) == r.Category:
			total += 0.8
		case overlapsAny(item, skills):
			total += 0.6
		case containsAny(item, titleWords):
			total += 0.4
		}
	}
	return clamp(total / float64(len(items)))
}

func (s *Scorer) categoryOf(text string) career.Category {
	c, _ := s.mapper.Category(text)
	return c
}

// careerKeywords combines title words, the category keyword list for
// technology and arts careers, and the required skills.
func (s *Scorer) careerKeywords(r career.Record) []string {
	keywords := strings.Fields(strings.ToLower(r.Title))
	switch r.Category {
	case career.Technology:
		keywords = append(keywords, s.mapper.tech...)
	case career.Arts:
		keywords = append(keywords, s.mapper.creative...)
	}
	return append(keywords, lowered(r.RequiredSkills)...)
}

func (s *Scorer) academic(p *profile.StudentProfile, r career.Record) float64 {
	subjects := lowered(p.PreferredSubjects)
	if len(subjects) == 0 {
		return neutralScore
	}

	titleWords := strings.Fields(strings.ToLower(r.Title))
	stemLike := r.Category == career.STEM || r.Category == career.Technology

	var total float64
	for _, subject := range subjects {
		switch {
		case slices.Contains(s.subjects[subject], r.Title):
			total += 1.0
		case containsAny(subject, titleWords):
			total += 0.6
		case stemLike && slices.Contains(s.science, subject):
			total += 0.5
		}
	}
	return clamp(total / float64(len(subjects)))
}

// skills counts required skills matched by at least one activity. Interests
// and hobbies count as activities too.
func skills(p *profile.StudentProfile, r career.Record) float64 {
	activities := lowered(p.Extracurriculars, p.Interests, p.Hobbies)
	if len(activities) == 0 {
		return neutralScore
	}
	required := lowered(r.RequiredSkills)
	if len(required) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range required {
		words := strings.Fields(skill)
		for _, activity := range activities {
			if overlaps(activity, skill) || containsAny(activity, words) {
				matched++
				break
			}
		}
	}

	score := float64(matched)
	switch {
	case matched >= 3:
		score *= 1.2
	case matched >= 2:
		score *= 1.1
	}
	return clamp(score / float64(len(required)))
}

func goals(p *profile.StudentProfile, r career.Record) float64 {
	text := strings.ToLower(strings.TrimSpace(p.CareerGoals))
	if text == "" {
		return neutralScore
	}

	careerWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(r.Title + " " + r.Description)) {
		careerWords[w] = struct{}{}
	}

	shared := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		if _, ok := careerWords[w]; ok {
			shared[w] = struct{}{}
		}
	}

	switch n := len(shared); {
	case n >= 3:
		return 0.9
	case n >= 2:
		return 0.7
	case n >= 1:
		return 0.5
	default:
		return 0.3
	}
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func overlapsAny(item string, candidates []string) bool {
	for _, c := range candidates {
		if overlaps(item, c) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
