package matching

import "github.com/spigell/pathfinder/internal/career"

// Keyword maps a lower-case phrase to the category it signals.
type Keyword struct {
	Phrase   string
	Category career.Category
}

// DefaultKeywords is the ordered keyword table. Order matters: the first
// phrase contained in a text decides its category.
var DefaultKeywords = []Keyword{
	{"programming", career.Technology},
	{"coding", career.Technology},
	{"computer", career.Technology},
	{"technology", career.Technology},
	{"software", career.Technology},
	{"web development", career.Technology},
	{"app development", career.Technology},
	{"artificial intelligence", career.Technology},
	{"ai", career.Technology},
	{"machine learning", career.Technology},
	{"ml", career.Technology},
	{"nlp", career.Technology},
	{"natural language processing", career.Technology},
	{"data science", career.STEM},
	{"algorithms", career.Technology},
	{"python", career.Technology},
	{"javascript", career.Technology},
	{"react", career.Technology},
	{"streamlit", career.Technology},
	{"llm", career.Technology},
	{"large language models", career.Technology},

	{"math", career.STEM},
	{"mathematics", career.STEM},
	{"science", career.STEM},
	{"physics", career.STEM},
	{"chemistry", career.STEM},
	{"biology", career.STEM},
	{"engineering", career.STEM},
	{"data", career.STEM},
	{"statistics", career.STEM},
	{"analytics", career.STEM},

	{"art", career.Arts},
	{"arts", career.Arts},
	{"creative", career.Arts},
	{"creativity", career.Arts},
	{"drawing", career.Arts},
	{"painting", career.Arts},
	{"music", career.Arts},
	{"singing", career.Arts},
	{"design", career.Arts},
	{"graphic design", career.Arts},
	{"visual design", career.Arts},
	{"photography", career.Arts},
	{"writing", career.Arts},
	{"creative writing", career.Arts},
	{"literature", career.Arts},
	{"drama", career.Arts},
	{"theater", career.Arts},
	{"theatre", career.Arts},
	{"film", career.Arts},
	{"video", career.Arts},
	{"animation", career.Arts},
	{"illustration", career.Arts},
	{"digital art", career.Arts},
	{"fine arts", career.Arts},
	{"visual arts", career.Arts},
	{"english", career.Arts},

	{"health", career.Healthcare},
	{"medicine", career.Healthcare},
	{"medical", career.Healthcare},
	{"helping people", career.Healthcare},
	{"care", career.Healthcare},
	{"nursing", career.Healthcare},
	{"doctor", career.Healthcare},
	{"physician", career.Healthcare},
	{"helping people", career.Healthcare},
	{"patient care", career.Healthcare},
	{"human health", career.Healthcare},
	{"medical care", career.Healthcare},

	{"business", career.Business},
	{"finance", career.Business},
	{"money", career.Business},
	{"economics", career.Business},
	{"marketing", career.Business},
	{"sales", career.Business},
	{"management", career.Business},
	{"entrepreneurship", career.Business},
	{"startup", career.Business},

	{"teaching", career.Education},
	{"education", career.Education},
	{"tutoring", career.Education},
	{"mentoring", career.Education},

	{"sports", career.Sports},
	{"athletics", career.Sports},
	{"fitness", career.Sports},
	{"exercise", career.Sports},
	{"physical", career.Sports},

	{"social work", career.SocialServices},
	{"community", career.SocialServices},
	{"volunteering", career.SocialServices},
	{"counseling", career.SocialServices},

	{"law", career.Law},
	{"legal", career.Law},
	{"justice", career.Law},
	{"debate", career.Law},

	{"environment", career.Environment},
	{"nature", career.Environment},
	{"outdoors", career.Environment},
	{"sustainability", career.Environment},
}

// TechKeywords strongly signal a technology interest.
var TechKeywords = []string{
	"coding", "programming", "software", "ai", "artificial intelligence",
	"machine learning", "nlp", "natural language processing", "data science",
	"web development", "app development", "python", "javascript", "react",
	"streamlit", "llm", "algorithms", "computer science", "technology",
}

// CreativeKeywords strongly signal a creative interest.
var CreativeKeywords = []string{
	"art", "arts", "creative", "creativity", "design", "drawing", "painting",
	"music", "writing", "literature", "photography", "visual", "graphic",
	"illustration", "animation", "film", "video", "theater", "drama",
}

// SubjectCareers lists the careers a school subject typically leads to.
// "Content Creator" does not name a catalog entry and never matches.
var SubjectCareers = map[string][]string{
	"computer science": {"Software Engineer", "Data Scientist", "AI/Machine Learning Engineer", "Web Developer"},
	"mathematics":      {"Data Scientist", "Financial Analyst", "Research Scientist", "AI/Machine Learning Engineer"},
	"art":              {"UX/UI Designer", "Graphic Designer", "Digital Artist", "Content Creator"},
	"biology":          {"Medical Doctor", "Medical Researcher", "Health Informatics Specialist"},
	"business":         {"Product Manager", "Financial Analyst", "Business Analyst", "Digital Marketing Specialist"},
	"english":          {"Content Creator", "Digital Marketing Specialist", "Teacher"},
	"physics":          {"Research Scientist", "Data Scientist", "Software Engineer"},
	"chemistry":        {"Medical Researcher", "Research Scientist", "Medical Doctor"},
}

// ScienceSubjects earn partial academic credit towards STEM and technology careers.
var ScienceSubjects = []string{"math", "mathematics", "science", "physics", "chemistry"}
