package profile

// Scenario is a ready-made student profile used by quick mode.
type Scenario struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Profile     StudentProfile `json:"profile"`
}

const quickModeName = "Student"

// Scenarios returns the built-in sample scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Title:       "Technology Enthusiast",
			Description: "I love coding, AI, and building software solutions",
			Profile: StudentProfile{
				Name:              quickModeName,
				Interests:         []string{"programming", "artificial intelligence", "software development", "problem-solving"},
				Hobbies:           []string{"coding projects", "tech blogs", "hackathons"},
				PreferredSubjects: []string{"computer science", "mathematics", "physics"},
				CareerGoals:       "Build innovative technology solutions that solve real-world problems",
			},
		},
		{
			Title:       "Creative Designer",
			Description: "I enjoy art, design, and visual creativity",
			Profile: StudentProfile{
				Name:              quickModeName,
				Interests:         []string{"graphic design", "user experience", "visual arts", "creativity"},
				Hobbies:           []string{"drawing", "photography", "digital art"},
				PreferredSubjects: []string{"art", "design", "english"},
				CareerGoals:       "Create beautiful and functional designs that inspire people",
			},
		},
		{
			Title:       "Science Explorer",
			Description: "I'm fascinated by research, data, and scientific discovery",
			Profile: StudentProfile{
				Name:              quickModeName,
				Interests:         []string{"data science", "research", "analytics", "scientific discovery"},
				Hobbies:           []string{"reading research papers", "data visualization", "experiments"},
				PreferredSubjects: []string{"mathematics", "statistics", "biology", "chemistry"},
				CareerGoals:       "Use data and research to make important discoveries",
			},
		},
		{
			Title:       "Business Leader",
			Description: "I'm interested in entrepreneurship, strategy, and leadership",
			Profile: StudentProfile{
				Name:              quickModeName,
				Interests:         []string{"business strategy", "entrepreneurship", "leadership", "innovation"},
				Hobbies:           []string{"reading business books", "networking", "startup events"},
				PreferredSubjects: []string{"economics", "business studies", "mathematics"},
				CareerGoals:       "Lead teams and build successful businesses",
			},
		},
		{
			Title:       "Healthcare Helper",
			Description: "I want to help people and work in healthcare",
			Profile: StudentProfile{
				Name:              quickModeName,
				Interests:         []string{"helping people", "medicine", "health", "patient care"},
				Hobbies:           []string{"volunteering", "health research", "fitness"},
				PreferredSubjects: []string{"biology", "chemistry", "psychology"},
				CareerGoals:       "Make a positive impact on people's health and wellbeing",
			},
		},
		{
			Title:       "Education Advocate",
			Description: "I love teaching, mentoring, and sharing knowledge",
			Profile: StudentProfile{
				Name:              quickModeName,
				Interests:         []string{"teaching", "education", "mentoring", "knowledge sharing"},
				Hobbies:           []string{"tutoring", "reading", "educational content creation"},
				PreferredSubjects: []string{"english", "history", "mathematics"},
				CareerGoals:       "Inspire and educate the next generation",
			},
		},
	}
}
