package career

import "fmt"

// Record is a single catalog entry. Records handed out by the catalog are copies.
type Record struct {
	Title          string   `json:"title"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Education      string   `json:"education_requirements"`
	Salary         string   `json:"average_salary"`
	Outlook        string   `json:"job_outlook"`
	Related        []string `json:"related_careers"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	r.RequiredSkills = append([]string(nil), r.RequiredSkills...)
	r.Related = append([]string(nil), r.Related...)
	return r
}

// Scored is a record annotated with a match score in [0,1] and an explanation.
type Scored struct {
	Record
	Score       float64 `json:"match_score"`
	Explanation string  `json:"explanation"`
}

// Percent renders the score the way it is shown to students, e.g. "68%".
func (s Scored) Percent() string {
	return FormatPercent(s.Score)
}

// FormatPercent renders a fraction as a whole percentage.
func FormatPercent(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}
