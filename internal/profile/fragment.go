package profile

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ExtractionSchema describes the fields a structured extraction should return.
var ExtractionSchema = map[string]any{
	"name":                        "string or null",
	"interests":                   []string{"array of strings"},
	"hobbies":                     []string{"array of strings"},
	"preferred_subjects":          []string{"array of strings"},
	"academic_scores":             map[string]string{"subject": "performance_level"},
	"career_goals":                "string or null",
	"learning_style":              "string or null",
	"extracurricular_activities":  []string{"array of strings"},
	"work_environment_preference": "string or null",
}

var placeholders = map[string]struct{}{
	"":              {},
	"null":          {},
	"none":          {},
	"n/a":           {},
	"unknown":       {},
	"not provided":  {},
	"not specified": {},
}

// FragmentFromMap narrows an untyped extraction result into a Fragment.
// Unknown keys are ignored. A key whose value has the wrong shape is dropped
// without affecting the others. The returned error lists dropped keys and is
// informational only: the fragment is always usable.
func FragmentFromMap(data map[string]any) (Fragment, error) {
	var f Fragment
	if len(data) == 0 {
		return f, nil
	}

	if err := decode(data, &f); err == nil {
		return clean(f), nil
	}

	// Decode key by key so one malformed value does not discard the rest.
	f = Fragment{}
	var dropped []string
	for key, value := range data {
		var single Fragment
		if err := decode(map[string]any{key: value}, &single); err != nil {
			dropped = append(dropped, key)
			continue
		}
		mergeFragment(&f, single)
	}

	f = clean(f)
	if len(dropped) > 0 {
		return f, fmt.Errorf("dropped malformed fields: %s", strings.Join(dropped, ", "))
	}
	return f, nil
}

func decode(input map[string]any, out *Fragment) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func mergeFragment(dst *Fragment, src Fragment) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.CareerGoals != "" {
		dst.CareerGoals = src.CareerGoals
	}
	if src.LearningStyle != "" {
		dst.LearningStyle = src.LearningStyle
	}
	if src.WorkEnvironmentPreference != "" {
		dst.WorkEnvironmentPreference = src.WorkEnvironmentPreference
	}
	dst.Interests = append(dst.Interests, src.Interests...)
	dst.Hobbies = append(dst.Hobbies, src.Hobbies...)
	dst.PreferredSubjects = append(dst.PreferredSubjects, src.PreferredSubjects...)
	dst.Extracurriculars = append(dst.Extracurriculars, src.Extracurriculars...)
	if len(src.AcademicScores) > 0 {
		if dst.AcademicScores == nil {
			dst.AcademicScores = make(map[string]string, len(src.AcademicScores))
		}
		for k, v := range src.AcademicScores {
			dst.AcademicScores[k] = v
		}
	}
}

func clean(f Fragment) Fragment {
	f.Name = cleanScalar(f.Name)
	f.CareerGoals = cleanScalar(f.CareerGoals)
	f.LearningStyle = cleanScalar(f.LearningStyle)
	f.WorkEnvironmentPreference = cleanScalar(f.WorkEnvironmentPreference)
	f.Interests = cleanList(f.Interests)
	f.Hobbies = cleanList(f.Hobbies)
	f.PreferredSubjects = cleanList(f.PreferredSubjects)
	f.Extracurriculars = cleanList(f.Extracurriculars)

	for subject, level := range f.AcademicScores {
		if cleanScalar(subject) == "" || cleanScalar(level) == "" {
			delete(f.AcademicScores, subject)
		}
	}
	if len(f.AcademicScores) == 0 {
		f.AcademicScores = nil
	}
	return f
}

func cleanScalar(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := placeholders[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if item = cleanScalar(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
