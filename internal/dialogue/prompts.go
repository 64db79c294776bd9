package dialogue

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/profile"
)

//go:embed greeting_prompt.md
var greetingSystemPrompt string

const (
	greetingRequest = "Generate a warm, welcoming greeting to start a career counseling session with a student. Introduce yourself as PathFinder."

	fallbackGreeting = "Hi, I'm PathFinder, your career guide! I'd love to help you explore career paths that fit you. " +
		"What's your name, and what do you enjoy doing in your free time?"

	apologyReply = "I'm sorry, I'm having trouble responding right now. Could you try again in a moment?"

	contextualFallback = "That's really interesting! I can see you have clear interests and passions. " +
		"Would you like me to analyze your profile and suggest some career paths that might be perfect for you?"

	noMatchesReply = "I'd love to help you find great career matches, but I need a bit more information about " +
		"your interests and goals first. Could you tell me more about what you enjoy doing?"

	notProvided = "Not provided"
)

func contextualPrompt(text string, p *profile.StudentProfile) string {
	return fmt.Sprintf(`As PathFinder, a friendly AI career counselor, respond to the student's message: %q

Current student profile: %s

Guidelines:
1. Acknowledge what they shared with enthusiasm
2. Show genuine interest in their projects and experiences
3. If they've shared substantial information about their interests, ask ONE specific follow-up question about their goals or preferences
4. If you have enough information (name, interests, some background), suggest moving to career recommendations
5. Keep the tone conversational and encouraging
6. Don't ask multiple questions at once
7. Don't repeat information they've already provided

Respond naturally as PathFinder would in a real conversation.`, text, p.Summary())
}

func followUpPrompt(missing []string, p *profile.StudentProfile) string {
	return fmt.Sprintf(`As PathFinder, generate 1-2 friendly follow-up questions to learn more about the student's:
%s

Current profile: %s

Make the questions conversational and engaging.`, strings.Join(missing, ", "), p.Summary())
}

func clarifyingPrompt(p *profile.StudentProfile) string {
	scores := p.AcademicSummary()
	if scores == "" {
		scores = notProvided
	}

	return fmt.Sprintf(`As PathFinder, based on this student profile, generate 2-3 thoughtful follow-up questions to better understand their career preferences:

Current student profile:
- Name: %s
- Interests: %s
- Hobbies: %s
- Preferred subjects: %s
- Academic performance: %s
- Career goals: %s

The questions should fill in missing information, clarify vague answers and explore deeper motivations.
Provide the questions in a natural, encouraging tone as PathFinder.`,
		orNotProvided(p.Name),
		orNotProvided(strings.Join(p.Interests, ", ")),
		orNotProvided(strings.Join(p.Hobbies, ", ")),
		orNotProvided(strings.Join(p.PreferredSubjects, ", ")),
		scores,
		orNotProvided(p.CareerGoals),
	)
}

// fallbackFollowUp asks for the most important missing field without a model.
func fallbackFollowUp(missing []string) string {
	if len(missing) == 0 {
		return "Thanks for sharing! What kind of work environment do you picture yourself in, and what would you like to achieve in your career?"
	}
	return fmt.Sprintf("Thanks for sharing! To point you to the right careers, I'd love to know your %s.", missing[0])
}

func detailPrompt(text string, p *profile.StudentProfile, recs []career.Scored) string {
	available := "None yet"
	if len(recs) > 0 {
		titles := make([]string, 0, len(recs))
		for _, r := range recs {
			titles = append(titles, r.Title)
		}
		available = strings.Join(titles, ", ")
	}

	return fmt.Sprintf(`As PathFinder, the student asked: %q

Student profile: %s
Available recommendations: %s

Provide a helpful, detailed response addressing their question.`, text, p.Summary(), available)
}

func presentPrompt(name string, top []career.Scored) string {
	if name == "" {
		name = "there"
	}

	var b strings.Builder
	for i, c := range top {
		fmt.Fprintf(&b, "%d. %s (%s match)\n", i+1, c.Title, c.Percent())
		fmt.Fprintf(&b, "- Description: %s\n", c.Description)
		fmt.Fprintf(&b, "- Salary: %s\n", c.Salary)
		fmt.Fprintf(&b, "- Job Outlook: %s\n", c.Outlook)
		fmt.Fprintf(&b, "- Why it matches: %s\n\n", c.Explanation)
	}

	return fmt.Sprintf(`As PathFinder, present these top %d career recommendations to %s:

%s
Guidelines:
1. Be enthusiastic and encouraging
2. Mention why each career matches their profile
3. Include key details like salary and job outlook
4. Ask if they'd like to know more about any specific career
5. Keep it conversational and personalized

Present this as a friendly career counselor would.`, len(top), name, b.String())
}

// formatRecommendations renders recommendations without a model.
func formatRecommendations(top []career.Scored) string {
	var b strings.Builder
	b.WriteString("Great news! I've found some excellent career matches for you:\n\n")
	for i, c := range top {
		fmt.Fprintf(&b, "%d. %s (%s match)\n", i+1, c.Title, c.Percent())
		fmt.Fprintf(&b, "   %s\n", c.Description)
		fmt.Fprintf(&b, "   Salary: %s\n", c.Salary)
		fmt.Fprintf(&b, "   Outlook: %s\n\n", c.Outlook)
	}
	b.WriteString("Would you like to learn more about any of these careers?")
	return b.String()
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}
