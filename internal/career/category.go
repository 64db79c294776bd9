package career

import (
	"fmt"
	"strings"
)

// Category is an interest domain shared by careers and profile inference.
type Category string

const (
	STEM           Category = "STEM"
	Arts           Category = "Arts & Creative"
	Business       Category = "Business & Finance"
	Healthcare     Category = "Healthcare & Medicine"
	Education      Category = "Education & Training"
	Sports         Category = "Sports & Recreation"
	SocialServices Category = "Social Services"
	Technology     Category = "Technology & IT"
	Law            Category = "Law & Legal"
	Environment    Category = "Environment & Sustainability"
)

var categories = []Category{
	STEM,
	Arts,
	Business,
	Healthcare,
	Education,
	Sports,
	SocialServices,
	Technology,
	Law,
	Environment,
}

var slugs = map[Category]string{
	STEM:           "stem",
	Arts:           "arts",
	Business:       "business",
	Healthcare:     "healthcare",
	Education:      "education",
	Sports:         "sports",
	SocialServices: "social-services",
	Technology:     "technology",
	Law:            "law",
	Environment:    "environment",
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string { return string(c) }

// Slug returns the short machine-friendly name of the category.
func (c Category) Slug() string { return slugs[c] }

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := slugs[c]
	return ok
}

// ParseCategory accepts either the display name or the slug, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, slugs[c]) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
