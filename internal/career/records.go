package career

func defaultRecords() []Record {
	return []Record{
		{
			Title:          "Software Engineer",
			Category:       Technology,
			Description:    "Design, develop, and maintain software applications and systems using various programming languages and frameworks",
			RequiredSkills: []string{"Programming", "Problem-solving", "Logical thinking", "Software Development", "Debugging"},
			Education:      "Bachelor's degree in Computer Science, Software Engineering, or related field",
			Salary:         "$85,000 - $150,000",
			Outlook:        "Excellent (22% growth)",
			Related:        []string{"Data Scientist", "Web Developer", "Systems Analyst", "DevOps Engineer"},
		},
		{
			Title:          "Data Scientist",
			Category:       STEM,
			Description:    "Analyze complex data using statistical methods, machine learning, and AI to help organizations make data-driven decisions",
			RequiredSkills: []string{"Statistics", "Programming", "Machine Learning", "Data visualization", "Python", "Critical thinking"},
			Education:      "Bachelor's/Master's in Data Science, Statistics, Computer Science, or related field",
			Salary:         "$95,000 - $165,000",
			Outlook:        "Excellent (35% growth)",
			Related:        []string{"Machine Learning Engineer", "Business Analyst", "Statistician", "AI Research Scientist"},
		},
		{
			Title:          "AI/Machine Learning Engineer",
			Category:       Technology,
			Description:    "Develop and implement artificial intelligence and machine learning solutions to solve complex problems",
			RequiredSkills: []string{"Machine Learning", "Deep Learning", "Python", "TensorFlow", "PyTorch", "NLP", "Computer Vision"},
			Education:      "Bachelor's/Master's in Computer Science, AI, or related field",
			Salary:         "$110,000 - $180,000",
			Outlook:        "Excellent (40% growth)",
			Related:        []string{"Data Scientist", "Research Scientist", "Software Engineer", "NLP Engineer"},
		},
		{
			Title:          "Web Developer",
			Category:       Technology,
			Description:    "Create and maintain websites and web applications using various programming languages and frameworks",
			RequiredSkills: []string{"HTML/CSS", "JavaScript", "React", "Node.js", "Problem-solving", "UI/UX Design"},
			Education:      "Bachelor's degree in Computer Science or equivalent experience/bootcamp",
			Salary:         "$60,000 - $120,000",
			Outlook:        "Good (13% growth)",
			Related:        []string{"Full-Stack Developer", "Frontend Developer", "UI/UX Designer", "Software Engineer"},
		},
		{
			Title:          "Cybersecurity Analyst",
			Category:       Technology,
			Description:    "Protect organizations from cyber threats by monitoring security systems and investigating security breaches",
			RequiredSkills: []string{"Network Security", "Risk Assessment", "Incident Response", "Ethical Hacking", "Problem-solving"},
			Education:      "Bachelor's degree in Cybersecurity, Computer Science, or related field",
			Salary:         "$80,000 - $140,000",
			Outlook:        "Excellent (33% growth)",
			Related:        []string{"Information Security Manager", "Penetration Tester", "Security Consultant", "Network Administrator"},
		},
		{
			Title:          "UX/UI Designer",
			Category:       Arts,
			Description:    "Design user interfaces and experiences for digital products, combining creativity with user research",
			RequiredSkills: []string{"User Research", "Prototyping", "Visual Design", "Figma", "Adobe Creative Suite", "Problem-solving"},
			Education:      "Bachelor's degree in Design, HCI, or related field",
			Salary:         "$70,000 - $130,000",
			Outlook:        "Good (13% growth)",
			Related:        []string{"Product Designer", "Graphic Designer", "Web Designer", "Design Researcher"},
		},
		{
			Title:          "Graphic Designer",
			Category:       Arts,
			Description:    "Create visual concepts to communicate ideas through art and design for various media",
			RequiredSkills: []string{"Creativity", "Visual design", "Adobe Creative Suite", "Typography", "Communication"},
			Education:      "Bachelor's degree in Graphic Design or related field",
			Salary:         "$45,000 - $75,000",
			Outlook:        "Good (3% growth)",
			Related:        []string{"UX/UI Designer", "Art Director", "Web Designer", "Brand Designer"},
		},
		{
			Title:          "Product Manager",
			Category:       Business,
			Description:    "Guide the development and strategy of products, working with engineering, design, and business teams",
			RequiredSkills: []string{"Strategic thinking", "Communication", "Data analysis", "Project management", "Technical understanding"},
			Education:      "Bachelor's degree in Business, Engineering, or related field",
			Salary:         "$90,000 - $160,000",
			Outlook:        "Excellent (19% growth)",
			Related:        []string{"Technical Product Manager", "Business Analyst", "Project Manager", "Strategy Consultant"},
		},
		{
			Title:          "Financial Analyst",
			Category:       Business,
			Description:    "Analyze financial data and trends to guide investment decisions and business strategy",
			RequiredSkills: []string{"Mathematics", "Analytical thinking", "Excel proficiency", "Financial modeling", "Communication"},
			Education:      "Bachelor's degree in Finance, Economics, or related field",
			Salary:         "$65,000 - $120,000",
			Outlook:        "Good (6% growth)",
			Related:        []string{"Investment Banker", "Financial Advisor", "Budget Analyst", "Quantitative Analyst"},
		},
		{
			Title:          "Health Informatics Specialist",
			Category:       Healthcare,
			Description:    "Use technology and data analysis to improve healthcare delivery and patient outcomes",
			RequiredSkills: []string{"Healthcare knowledge", "Data analysis", "Programming", "Database management", "Problem-solving"},
			Education:      "Bachelor's/Master's in Health Informatics, Computer Science, or Healthcare + IT training",
			Salary:         "$75,000 - $125,000",
			Outlook:        "Excellent (8% growth)",
			Related:        []string{"Clinical Data Manager", "Healthcare Data Analyst", "Medical Software Developer"},
		},
		{
			Title:          "Medical Doctor",
			Category:       Healthcare,
			Description:    "Diagnose and treat illnesses while directly helping patients improve their health",
			RequiredSkills: []string{"Science knowledge", "Empathy", "Problem-solving", "Communication", "Critical thinking"},
			Education:      "Medical degree (MD) + residency training (8+ years)",
			Salary:         "$200,000 - $400,000",
			Outlook:        "Excellent (4% growth)",
			Related:        []string{"Nurse Practitioner", "Physician Assistant", "Medical Researcher"},
		},
		{
			Title:          "Physician Assistant",
			Category:       Healthcare,
			Description:    "Provide healthcare services under physician supervision with direct patient interaction",
			RequiredSkills: []string{"Medical knowledge", "Diagnosis", "Patient care", "Communication"},
			Education:      "Master's degree from accredited PA program",
			Salary:         "$110,000 - $130,000",
			Outlook:        "Excellent (31% growth)",
			Related:        []string{"Nurse Practitioner", "Medical Doctor", "Registered Nurse"},
		},
		{
			Title:          "Medical Researcher",
			Category:       Healthcare,
			Description:    "Conduct research to improve human health and advance medical knowledge",
			RequiredSkills: []string{"Research methodology", "Data analysis", "Scientific writing", "Biology"},
			Education:      "PhD in Biomedical Sciences or related field",
			Salary:         "$80,000 - $120,000",
			Outlook:        "Good (8% growth)",
			Related:        []string{"Epidemiologist", "Biochemist", "Clinical Research Coordinator"},
		},
		{
			Title:          "Computer Science Teacher",
			Category:       Education,
			Description:    "Teach programming, computer science concepts, and technology skills to students",
			RequiredSkills: []string{"Programming", "Communication", "Patience", "Curriculum development", "Teaching"},
			Education:      "Bachelor's degree in Computer Science + teaching certification",
			Salary:         "$50,000 - $80,000",
			Outlook:        "Good (8% growth)",
			Related:        []string{"Corporate Trainer", "Curriculum Developer", "Educational Technology Specialist"},
		},
		{
			Title:          "Teacher",
			Category:       Education,
			Description:    "Educate and inspire students in various subjects and grade levels",
			RequiredSkills: []string{"Communication", "Patience", "Subject expertise", "Classroom management", "Empathy"},
			Education:      "Bachelor's degree + teaching certification",
			Salary:         "$45,000 - $70,000",
			Outlook:        "Average (4% growth)",
			Related:        []string{"School Counselor", "Principal", "Curriculum Developer", "Educational Consultant"},
		},
		{
			Title:          "Research Scientist",
			Category:       STEM,
			Description:    "Conduct research in specialized fields to advance knowledge and develop new technologies",
			RequiredSkills: []string{"Research methodology", "Critical thinking", "Data analysis", "Scientific writing", "Problem-solving"},
			Education:      "PhD in relevant field",
			Salary:         "$80,000 - $150,000",
			Outlook:        "Good (7% growth)",
			Related:        []string{"University Professor", "R&D Engineer", "Data Scientist", "Lab Manager"},
		},
		{
			Title:          "DevOps Engineer",
			Category:       Technology,
			Description:    "Bridge the gap between development and operations, focusing on automation and infrastructure",
			RequiredSkills: []string{"Cloud platforms", "CI/CD", "Containerization", "Scripting", "System administration"},
			Education:      "Bachelor's in Computer Science or equivalent experience",
			Salary:         "$90,000 - $150,000",
			Outlook:        "Excellent (25% growth)",
			Related:        []string{"Software Engineer", "Systems Administrator", "Cloud Architect", "Site Reliability Engineer"},
		},
		{
			Title:          "Mobile App Developer",
			Category:       Technology,
			Description:    "Create mobile applications for iOS and Android platforms",
			RequiredSkills: []string{"Swift/Kotlin", "Mobile UI/UX", "API integration", "App store optimization", "Problem-solving"},
			Education:      "Bachelor's in Computer Science or equivalent experience",
			Salary:         "$70,000 - $130,000",
			Outlook:        "Good (22% growth)",
			Related:        []string{"Web Developer", "Software Engineer", "UI/UX Designer", "Game Developer"},
		},
		{
			Title:          "Game Developer",
			Category:       Technology,
			Description:    "Design and develop video games for various platforms using game engines and programming",
			RequiredSkills: []string{"Game engines", "Programming", "3D modeling", "Game design", "Mathematics"},
			Education:      "Bachelor's in Computer Science, Game Development, or related field",
			Salary:         "$65,000 - $120,000",
			Outlook:        "Good (11% growth)",
			Related:        []string{"Software Engineer", "3D Artist", "Game Designer", "Animation Programmer"},
		},
		{
			Title:          "Digital Artist",
			Category:       Arts,
			Description:    "Create digital artwork for games, films, advertising, and other media",
			RequiredSkills: []string{"Digital art software", "Creativity", "Color theory", "Drawing", "3D modeling"},
			Education:      "Bachelor's in Fine Arts, Digital Arts, or equivalent portfolio",
			Salary:         "$50,000 - $90,000",
			Outlook:        "Good (4% growth)",
			Related:        []string{"Graphic Designer", "Game Artist", "Animator", "Concept Artist"},
		},
		{
			Title:          "Content Creator/Influencer",
			Category:       Arts,
			Description:    "Create engaging content across digital platforms to build audiences and brand partnerships",
			RequiredSkills: []string{"Content creation", "Social media", "Video editing", "Marketing", "Communication"},
			Education:      "Variable - often self-taught or communications/marketing degree",
			Salary:         "$30,000 - $100,000+",
			Outlook:        "Excellent (growing field)",
			Related:        []string{"Social Media Manager", "Digital Marketer", "Video Producer", "Brand Ambassador"},
		},
		{
			Title:          "Business Analyst",
			Category:       Business,
			Description:    "Analyze business processes and requirements to improve organizational efficiency",
			RequiredSkills: []string{"Data analysis", "Process modeling", "Communication", "Problem-solving", "Documentation"},
			Education:      "Bachelor's in Business, Economics, or related field",
			Salary:         "$70,000 - $120,000",
			Outlook:        "Good (14% growth)",
			Related:        []string{"Data Analyst", "Product Manager", "Management Consultant", "Project Manager"},
		},
		{
			Title:          "Digital Marketing Specialist",
			Category:       Business,
			Description:    "Develop and execute online marketing campaigns across digital platforms",
			RequiredSkills: []string{"SEO/SEM", "Social media marketing", "Analytics", "Content marketing", "Email marketing"},
			Education:      "Bachelor's in Marketing, Communications, or related field",
			Salary:         "$55,000 - $95,000",
			Outlook:        "Good (10% growth)",
			Related:        []string{"Content Creator", "Social Media Manager", "Brand Manager", "Growth Hacker"},
		},
		{
			Title:          "Lawyer",
			Category:       Law,
			Description:    "Advise clients on legal matters and represent them in negotiations and court proceedings",
			RequiredSkills: []string{"Legal research", "Argumentation", "Writing", "Negotiation", "Critical thinking"},
			Education:      "Bachelor's degree + Juris Doctor (JD) + bar admission",
			Salary:         "$80,000 - $180,000",
			Outlook:        "Good (8% growth)",
			Related:        []string{"Paralegal", "Judge", "Legal Consultant", "Compliance Officer"},
		},
		{
			Title:          "Social Worker",
			Category:       SocialServices,
			Description:    "Support individuals and families through challenges by connecting them with community resources",
			RequiredSkills: []string{"Empathy", "Counseling", "Case management", "Communication", "Advocacy"},
			Education:      "Bachelor's/Master's in Social Work (BSW/MSW)",
			Salary:         "$45,000 - $75,000",
			Outlook:        "Good (7% growth)",
			Related:        []string{"School Counselor", "Community Outreach Coordinator", "Case Manager", "Therapist"},
		},
		{
			Title:          "Sports Coach",
			Category:       Sports,
			Description:    "Train athletes and teams, plan practice sessions and develop game strategies",
			RequiredSkills: []string{"Leadership", "Fitness training", "Motivation", "Strategy", "Communication"},
			Education:      "Bachelor's in Kinesiology, Sports Science, or coaching certification",
			Salary:         "$35,000 - $80,000",
			Outlook:        "Good (9% growth)",
			Related:        []string{"Athletic Trainer", "Fitness Instructor", "Physical Education Teacher", "Sports Analyst"},
		},
		{
			Title:          "Environmental Scientist",
			Category:       Environment,
			Description:    "Study the natural environment and develop solutions to protect ecosystems and promote sustainability",
			RequiredSkills: []string{"Field research", "Data analysis", "Ecology", "Report writing", "GIS"},
			Education:      "Bachelor's degree in Environmental Science, Biology, or related field",
			Salary:         "$55,000 - $100,000",
			Outlook:        "Good (6% growth)",
			Related:        []string{"Conservation Scientist", "Sustainability Consultant", "Ecologist", "Environmental Engineer"},
		},
	}
}
