package dialogue

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/profile"
)

type stubGenerator struct {
	mu      sync.Mutex
	reply   func(system, prompt string) (string, error)
	systems []string
	prompts []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systems = append(s.systems, system)
	s.prompts = append(s.prompts, prompt)
	if s.reply == nil {
		return "", errors.New("no reply configured")
	}
	return s.reply(system, prompt)
}

func (s *stubGenerator) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

type stubExtractor struct {
	mu      sync.Mutex
	results []map[string]any
	texts   []string
}

func (s *stubExtractor) Extract(_ context.Context, text string, _ map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	if len(s.results) == 0 {
		return map[string]any{}
	}
	next := s.results[0]
	s.results = s.results[1:]
	return next
}

type stubRecommender struct {
	mu      sync.Mutex
	results [][]career.Scored
	err     error
	calls   int
}

func (s *stubRecommender) Recommend(context.Context, *profile.StudentProfile) ([]career.Scored, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(s.results) == 0 {
		return nil, nil
	}
	next := s.results[0]
	if len(s.results) > 1 {
		s.results = s.results[1:]
	}
	return next, nil
}

func sampleRecommendations() []career.Scored {
	return []career.Scored{
		{Record: career.Record{Title: "Software Engineer", Category: career.Technology, Description: "Builds software", Salary: "$110k", Outlook: "Growing"}, Score: 0.68},
		{Record: career.Record{Title: "Data Scientist", Category: career.STEM, Description: "Finds insights", Salary: "$120k", Outlook: "Strong"}, Score: 0.55},
		{Record: career.Record{Title: "Web Developer", Category: career.Technology, Description: "Builds websites", Salary: "$80k", Outlook: "Steady"}, Score: 0.5},
		{Record: career.Record{Title: "UX/UI Designer", Category: career.Arts, Description: "Designs interfaces", Salary: "$90k", Outlook: "Growing"}, Score: 0.4},
	}
}

var substantialFragment = map[string]any{
	"name":               "Ada",
	"interests":          []any{"programming", "robots"},
	"preferred_subjects": []any{"mathematics"},
}

func newTestSession(gen *stubGenerator, ext *stubExtractor, rec *stubRecommender) *Session {
	deps := Deps{Logger: zap.NewNop()}
	if gen != nil {
		deps.Generator = gen
	}
	if ext != nil {
		deps.Extractor = ext
	}
	if rec != nil {
		deps.Recommender = rec
	}
	return NewSession("test-session", deps, Config{})
}

func TestStartGreeting(t *testing.T) {
	gen := &stubGenerator{reply: func(string, string) (string, error) { return "  Hello, I'm PathFinder!  ", nil }}
	s := newTestSession(gen, nil, nil)

	greeting := s.Start(context.Background())
	if greeting != "Hello, I'm PathFinder!" {
		t.Fatalf("unexpected greeting: %q", greeting)
	}
	if s.Phase() != PhaseGreeting {
		t.Fatalf("expected greeting phase, got %s", s.Phase())
	}
	if gen.systems[0] != greetingSystemPrompt || !strings.Contains(gen.systems[0], "PathFinder") {
		t.Fatalf("expected PathFinder system prompt, got %q", gen.systems[0])
	}

	history := s.History()
	if len(history) != 1 || history[0].Role != RoleAssistant || history[0].Text != greeting {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestStartGreetingFallback(t *testing.T) {
	s := newTestSession(nil, nil, nil)

	if greeting := s.Start(context.Background()); greeting != fallbackGreeting {
		t.Fatalf("expected fallback greeting, got %q", greeting)
	}
}

func TestGreetingWithSubstantialInformation(t *testing.T) {
	gen := &stubGenerator{reply: func(system, prompt string) (string, error) {
		if system != "" {
			return "Welcome!", nil
		}
		return "Robots and code, great combination! What kind of problems do you like solving?", nil
	}}
	ext := &stubExtractor{results: []map[string]any{substantialFragment}}
	s := newTestSession(gen, ext, &stubRecommender{})

	greeting := s.Start(context.Background())
	reply := s.ProcessTurn(context.Background(), "I'm Ada, I love programming and robots, and math is my favorite subject")

	if s.Phase() != PhaseGathering {
		t.Fatalf("expected %s, got %s", PhaseGathering, s.Phase())
	}
	if reply == greeting {
		t.Fatalf("expected an acknowledging reply, got the greeting again")
	}
	if !strings.HasPrefix(gen.lastPrompt(), "As PathFinder, a friendly AI career counselor, respond") {
		t.Fatalf("expected a contextual prompt, got %q", gen.lastPrompt())
	}
	if !strings.Contains(gen.lastPrompt(), "Name: Ada") {
		t.Fatalf("expected profile summary in prompt, got %q", gen.lastPrompt())
	}

	p := s.Profile()
	if p.Name != "Ada" || len(p.Interests) != 2 || p.PreferredSubjects[0] != "mathematics" {
		t.Fatalf("profile was not merged: %+v", p)
	}
}

func TestGreetingAsksFollowUpQuestions(t *testing.T) {
	gen := &stubGenerator{reply: func(string, string) (string, error) { return "What's your name?", nil }}
	s := newTestSession(gen, &stubExtractor{}, nil)

	s.Start(context.Background())
	s.ProcessTurn(context.Background(), "hi")

	if s.Phase() != PhaseGathering || s.Questions() != 0 {
		t.Fatalf("unexpected state: phase=%s questions=%d", s.Phase(), s.Questions())
	}
	if !strings.Contains(gen.lastPrompt(), "name, interests or hobbies, favorite subjects, career goals or aspirations") {
		t.Fatalf("expected missing fields in priority order, got %q", gen.lastPrompt())
	}
}

func TestFollowUpFallback(t *testing.T) {
	s := newTestSession(nil, &stubExtractor{}, nil)

	s.Start(context.Background())
	reply := s.ProcessTurn(context.Background(), "hi")

	if !strings.Contains(reply, "know your name") {
		t.Fatalf("expected templated follow-up asking for the name, got %q", reply)
	}
}

func TestQuestionCeilingForcesMatching(t *testing.T) {
	rec := &stubRecommender{results: [][]career.Scored{sampleRecommendations()}}
	s := newTestSession(nil, &stubExtractor{}, rec)
	ctx := context.Background()

	s.Start(ctx)
	s.ProcessTurn(ctx, "hello")
	for i := 0; i < 2; i++ {
		reply := s.ProcessTurn(ctx, "not sure")
		if s.Phase() != PhaseGathering {
			t.Fatalf("turn %d: expected gathering, got %s", i+2, s.Phase())
		}
		if reply != contextualFallback {
			t.Fatalf("turn %d: unexpected reply %q", i+2, reply)
		}
	}

	reply := s.ProcessTurn(ctx, "still not sure")
	if s.Phase() != PhaseMatching {
		t.Fatalf("expected %s on the fourth turn, got %s", PhaseMatching, s.Phase())
	}
	if !strings.HasPrefix(reply, "Great news!") || !strings.Contains(reply, "1. Software Engineer (68% match)") {
		t.Fatalf("expected templated recommendations, got %q", reply)
	}
	if strings.Contains(reply, "UX/UI Designer") {
		t.Fatalf("only the top 3 should be presented: %q", reply)
	}
	if len(s.Recommendations()) != 4 {
		t.Fatalf("expected cached recommendations, got %d", len(s.Recommendations()))
	}

	reply = s.ProcessTurn(ctx, "tell me more about software engineering")
	if s.Phase() != PhaseGeneral {
		t.Fatalf("expected %s, got %s", PhaseGeneral, s.Phase())
	}
	if reply != apologyReply {
		t.Fatalf("expected apology fallback for detailed answer, got %q", reply)
	}
	if rec.calls != 1 {
		t.Fatalf("recommendations must be computed once, got %d calls", rec.calls)
	}
}

func TestSufficientInformationTriggersMatching(t *testing.T) {
	gen := &stubGenerator{reply: func(_, prompt string) (string, error) { return "generated", nil }}
	rec := &stubRecommender{results: [][]career.Scored{sampleRecommendations()}}
	s := newTestSession(gen, &stubExtractor{results: []map[string]any{substantialFragment}}, rec)
	ctx := context.Background()

	s.Start(ctx)
	s.ProcessTurn(ctx, "I'm Ada and I like programming and math")
	reply := s.ProcessTurn(ctx, "what else do you need?")

	if s.Phase() != PhaseMatching || s.Questions() != 1 {
		t.Fatalf("unexpected state: phase=%s questions=%d", s.Phase(), s.Questions())
	}
	if reply != "generated" {
		t.Fatalf("expected generated presentation, got %q", reply)
	}
	if !strings.Contains(gen.lastPrompt(), "present these top 3 career recommendations to Ada") {
		t.Fatalf("unexpected presentation prompt: %q", gen.lastPrompt())
	}
}

func TestEmptyRecommendationsNudge(t *testing.T) {
	rec := &stubRecommender{results: [][]career.Scored{nil, sampleRecommendations()}}
	s := newTestSession(nil, &stubExtractor{results: []map[string]any{substantialFragment}}, rec)
	ctx := context.Background()

	s.Start(ctx)
	s.ProcessTurn(ctx, "I'm Ada and I like programming and math")

	if reply := s.ProcessTurn(ctx, "go on"); reply != noMatchesReply {
		t.Fatalf("expected nudge, got %q", reply)
	}
	if s.Phase() != PhaseMatching {
		t.Fatalf("expected phase to stay %s, got %s", PhaseMatching, s.Phase())
	}
	if s.Recommendations() != nil {
		t.Fatalf("empty result must not be cached")
	}

	reply := s.ProcessTurn(ctx, "I also like robotics club")
	if !strings.HasPrefix(reply, "Great news!") {
		t.Fatalf("expected recommendations on retry, got %q", reply)
	}
	if rec.calls != 2 {
		t.Fatalf("expected recommender to be retried, got %d calls", rec.calls)
	}
}

func TestRecommenderErrorIsNudge(t *testing.T) {
	rec := &stubRecommender{err: errors.New("boom")}
	s := newTestSession(nil, &stubExtractor{results: []map[string]any{substantialFragment}}, rec)
	ctx := context.Background()

	s.Start(ctx)
	s.ProcessTurn(ctx, "I'm Ada and I like programming and math")

	if reply := s.ProcessTurn(ctx, "ready"); reply != noMatchesReply {
		t.Fatalf("expected nudge, got %q", reply)
	}
}

func TestGeneralDetailedAnswer(t *testing.T) {
	gen := &stubGenerator{reply: func(string, string) (string, error) { return "answer", nil }}
	s := newTestSession(gen, &stubExtractor{}, nil)
	s.phase = PhaseGeneral
	s.recommendations = sampleRecommendations()[:2]

	s.ProcessTurn(context.Background(), "What about salaries?")
	if !strings.Contains(gen.lastPrompt(), "Available recommendations: Software Engineer, Data Scientist") {
		t.Fatalf("expected recommendation titles in prompt, got %q", gen.lastPrompt())
	}

	s.ProcessTurn(context.Background(), "thanks!")
	if !strings.HasPrefix(gen.lastPrompt(), "As PathFinder, a friendly AI career counselor") {
		t.Fatalf("expected contextual prompt, got %q", gen.lastPrompt())
	}
}

func TestClarificationPhase(t *testing.T) {
	rec := &stubRecommender{results: [][]career.Scored{sampleRecommendations()}}
	ext := &stubExtractor{results: []map[string]any{{}, substantialFragment}}
	s := newTestSession(nil, ext, rec)
	s.phase = PhaseClarification

	if reply := s.ProcessTurn(context.Background(), "hmm"); reply != contextualFallback {
		t.Fatalf("expected contextual reply, got %q", reply)
	}
	if s.Phase() != PhaseClarification {
		t.Fatalf("expected to stay in clarification, got %s", s.Phase())
	}

	s.ProcessTurn(context.Background(), "I'm Ada, I love programming and math")
	if s.Phase() != PhaseMatching {
		t.Fatalf("expected %s, got %s", PhaseMatching, s.Phase())
	}
}

func TestExtractionUsesRecentHistory(t *testing.T) {
	ext := &stubExtractor{}
	s := newTestSession(nil, ext, nil)
	ctx := context.Background()

	s.Start(ctx)
	s.ProcessTurn(ctx, "first message")
	s.ProcessTurn(ctx, "second message")
	s.ProcessTurn(ctx, "third message")

	if len(s.History()) != 7 {
		t.Fatalf("expected greeting plus three exchanges in history, got %d", len(s.History()))
	}

	last := ext.texts[len(ext.texts)-1]
	lines := strings.Split(last, "\n")
	if len(lines) != extractionWindow {
		t.Fatalf("expected %d lines, got %d: %q", extractionWindow, len(lines), last)
	}
	if !strings.HasPrefix(lines[0], "PathFinder: ") {
		t.Fatalf("expected assistant line first, got %q", lines[0])
	}
	if lines[len(lines)-1] != "Student: third message" {
		t.Fatalf("expected latest student message last, got %q", lines[len(lines)-1])
	}
	if strings.Contains(last, fallbackGreeting) {
		t.Fatalf("greeting should be outside the extraction window")
	}
}
