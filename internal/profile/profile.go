package profile

import (
	"sort"
	"strings"
)

// StudentProfile accumulates everything known about a student during a session.
type StudentProfile struct {
	Name                      string            `json:"name,omitempty" mapstructure:"name"`
	Interests                 []string          `json:"interests" mapstructure:"interests"`
	Hobbies                   []string          `json:"hobbies" mapstructure:"hobbies"`
	AcademicScores            map[string]string `json:"academic_scores,omitempty" mapstructure:"academic_scores"`
	PreferredSubjects         []string          `json:"preferred_subjects" mapstructure:"preferred_subjects"`
	CareerGoals               string            `json:"career_goals,omitempty" mapstructure:"career_goals"`
	LearningStyle             string            `json:"learning_style,omitempty" mapstructure:"learning_style"`
	Extracurriculars          []string          `json:"extracurricular_activities" mapstructure:"extracurricular_activities"`
	WorkEnvironmentPreference string            `json:"work_environment_preference,omitempty" mapstructure:"work_environment_preference"`
}

// Fragment is newly discovered profile information. It has the same shape as
// StudentProfile but is merged rather than assigned.
type Fragment StudentProfile

// Merge folds the fragment into the profile. List entries are appended unless
// already present (trimmed, case-insensitive), scalars are only set while
// still empty and academic scores overwrite per subject.
func (p *StudentProfile) Merge(f Fragment) {
	if p.Name == "" {
		p.Name = strings.TrimSpace(f.Name)
	}
	if p.CareerGoals == "" {
		p.CareerGoals = strings.TrimSpace(f.CareerGoals)
	}
	if p.LearningStyle == "" {
		p.LearningStyle = strings.TrimSpace(f.LearningStyle)
	}
	if p.WorkEnvironmentPreference == "" {
		p.WorkEnvironmentPreference = strings.TrimSpace(f.WorkEnvironmentPreference)
	}

	p.Interests = appendUnique(p.Interests, f.Interests...)
	p.Hobbies = appendUnique(p.Hobbies, f.Hobbies...)
	p.PreferredSubjects = appendUnique(p.PreferredSubjects, f.PreferredSubjects...)
	p.Extracurriculars = appendUnique(p.Extracurriculars, f.Extracurriculars...)

	for subject, level := range f.AcademicScores {
		subject = strings.TrimSpace(subject)
		if subject == "" {
			continue
		}
		if p.AcademicScores == nil {
			p.AcademicScores = make(map[string]string)
		}
		p.AcademicScores[subject] = strings.TrimSpace(level)
	}
}

func appendUnique(list []string, items ...string) []string {
	seen := make(map[string]struct{}, len(list)+len(items))
	for _, existing := range list {
		seen[normalize(existing)] = struct{}{}
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := normalize(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		list = append(list, item)
	}
	return list
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// HasInterests reports whether any interest or hobby is known.
func (p *StudentProfile) HasInterests() bool {
	return len(p.Interests) > 0 || len(p.Hobbies) > 0
}

// HasSubstantialInfo reports whether the student has introduced themselves in
// enough detail to skip generic follow-up questions.
func (p *StudentProfile) HasSubstantialInfo() bool {
	hasDetail := len(p.PreferredSubjects) > 0 || p.CareerGoals != "" || len(p.Extracurriculars) > 0
	return p.Name != "" && p.HasInterests() && hasDetail
}

// HasSufficientInfo reports whether matching can produce meaningful results.
func (p *StudentProfile) HasSufficientInfo() bool {
	hasAcademics := len(p.PreferredSubjects) > 0 || len(p.AcademicScores) > 0
	hasDirection := p.CareerGoals != "" || len(p.Extracurriculars) > 0
	return p.HasInterests() && (hasAcademics || hasDirection)
}

// Missing lists the areas still unknown, most important first.
func (p *StudentProfile) Missing() []string {
	missing := make([]string, 0, 4)
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if !p.HasInterests() {
		missing = append(missing, "interests or hobbies")
	}
	if len(p.PreferredSubjects) == 0 {
		missing = append(missing, "favorite subjects")
	}
	if p.CareerGoals == "" {
		missing = append(missing, "career goals or aspirations")
	}
	return missing
}

// Summary renders a one-line description used in prompts.
func (p *StudentProfile) Summary() string {
	parts := make([]string, 0, 6)
	if p.Name != "" {
		parts = append(parts, "Name: "+p.Name)
	}
	if len(p.Interests) > 0 {
		parts = append(parts, "Interests: "+strings.Join(p.Interests, ", "))
	}
	if len(p.Hobbies) > 0 {
		parts = append(parts, "Hobbies: "+strings.Join(p.Hobbies, ", "))
	}
	if len(p.PreferredSubjects) > 0 {
		parts = append(parts, "Favorite subjects: "+strings.Join(p.PreferredSubjects, ", "))
	}
	if p.CareerGoals != "" {
		parts = append(parts, "Career goals: "+p.CareerGoals)
	}
	if len(p.Extracurriculars) > 0 {
		parts = append(parts, "Activities: "+strings.Join(p.Extracurriculars, ", "))
	}
	if len(parts) == 0 {
		return "Limited information available"
	}
	return strings.Join(parts, "; ")
}

// AcademicSummary renders academic scores in a stable order.
func (p *StudentProfile) AcademicSummary() string {
	if len(p.AcademicScores) == 0 {
		return ""
	}
	subjects := make([]string, 0, len(p.AcademicScores))
	for subject := range p.AcademicScores {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	parts := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		parts = append(parts, subject+": "+p.AcademicScores[subject])
	}
	return strings.Join(parts, ", ")
}

// Clone returns a deep copy of the profile.
func (p *StudentProfile) Clone() StudentProfile {
	out := *p
	out.Interests = append([]string(nil), p.Interests...)
	out.Hobbies = append([]string(nil), p.Hobbies...)
	out.PreferredSubjects = append([]string(nil), p.PreferredSubjects...)
	out.Extracurriculars = append([]string(nil), p.Extracurriculars...)
	if p.AcademicScores != nil {
		out.AcademicScores = make(map[string]string, len(p.AcademicScores))
		for k, v := range p.AcademicScores {
			out.AcademicScores[k] = v
		}
	}
	return out
}
