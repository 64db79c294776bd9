package dialogue

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/ai"
	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/logger"
	"github.com/spigell/pathfinder/internal/profile"
)

// Phase is a step of the counseling conversation.
type Phase string

const (
	PhaseGreeting      Phase = "greeting"
	PhaseGathering     Phase = "information_gathering"
	PhaseClarification Phase = "clarification"
	PhaseMatching      Phase = "career_matching"
	PhaseGeneral       Phase = "general"
)

const (
	DefaultMaxQuestions = 3
	extractionWindow    = 4
)

// Role tells who wrote a history entry.
type Role string

const (
	RoleStudent   Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single history entry.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

var detailKeywords = []string{"tell me more", "details", "how to", "what about"}

// Recommender produces explained career matches for a profile.
type Recommender interface {
	Recommend(ctx context.Context, p *profile.StudentProfile) ([]career.Scored, error)
}

// Extractor pulls structured fields out of conversation text.
type Extractor interface {
	Extract(ctx context.Context, text string, schema map[string]any) map[string]any
}

// Deps aggregates the collaborators shared by all sessions.
type Deps struct {
	Generator   ai.ContentGenerator
	Extractor   Extractor
	Recommender Recommender
	Logger      *zap.Logger
}

// Config holds dialogue tuning.
type Config struct {
	// MaxQuestions is the number of gathering turns after which matching starts regardless of the profile.
	MaxQuestions int `mapstructure:"max-questions"`
}

// Session is the state of one conversation. It is not safe for concurrent use;
// Manager serializes turns per session.
type Session struct {
	id              string
	phase           Phase
	profile         profile.StudentProfile
	recommendations []career.Scored
	history         []Message
	questions       int
	maxQuestions    int

	generator   ai.ContentGenerator
	extractor   Extractor
	recommender Recommender
	logger      *zap.Logger
}

func NewSession(id string, deps Deps, cfg Config) *Session {
	generator := deps.Generator
	if generator == nil {
		generator = ai.Unavailable{}
	}

	maxQuestions := cfg.MaxQuestions
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}

	return &Session{
		id:           id,
		phase:        PhaseGreeting,
		maxQuestions: maxQuestions,
		generator:    generator,
		extractor:    deps.Extractor,
		recommender:  deps.Recommender,
		logger:       logger.WithSession(deps.Logger, id),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Questions() int { return s.questions }

// Profile returns a copy of the accumulated profile.
func (s *Session) Profile() profile.StudentProfile { return s.profile.Clone() }

// Recommendations returns a copy of the cached recommendations, nil until computed.
func (s *Session) Recommendations() []career.Scored {
	if s.recommendations == nil {
		return nil
	}
	return append([]career.Scored(nil), s.recommendations...)
}

func (s *Session) History() []Message {
	return append([]Message(nil), s.history...)
}

// Start opens the conversation and returns the greeting.
func (s *Session) Start(ctx context.Context) string {
	s.setPhase(PhaseGreeting)

	greeting := s.generate(ctx, "greeting", greetingSystemPrompt, greetingRequest, fallbackGreeting)
	s.appendHistory(RoleAssistant, greeting)
	return greeting
}

// ProcessTurn folds the student's message into the profile and returns the reply.
func (s *Session) ProcessTurn(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	s.appendHistory(RoleStudent, text)
	s.updateProfile(ctx)

	var reply string
	switch s.phase {
	case PhaseGreeting:
		reply = s.handleGreeting(ctx, text)
	case PhaseGathering:
		reply = s.handleGathering(ctx, text)
	case PhaseClarification:
		reply = s.handleClarification(ctx, text)
	case PhaseMatching:
		if s.recommendations != nil {
			s.setPhase(PhaseGeneral)
			reply = s.handleGeneral(ctx, text)
		} else {
			reply = s.handleMatching(ctx)
		}
	default:
		reply = s.handleGeneral(ctx, text)
	}

	s.appendHistory(RoleAssistant, reply)

	s.logger.Debug("turn processed",
		zap.String(logger.FieldPhase, string(s.phase)),
		zap.Int("questions", s.questions),
		zap.Int("history", len(s.history)),
	)

	return reply
}

func (s *Session) handleGreeting(ctx context.Context, text string) string {
	s.setPhase(PhaseGathering)
	s.questions = 0

	if s.profile.HasSubstantialInfo() {
		return s.contextualReply(ctx, text)
	}
	return s.followUp(ctx)
}

func (s *Session) handleGathering(ctx context.Context, text string) string {
	s.questions++

	if s.profile.HasSufficientInfo() || s.questions >= s.maxQuestions {
		s.setPhase(PhaseMatching)
		return s.handleMatching(ctx)
	}
	return s.contextualReply(ctx, text)
}

func (s *Session) handleClarification(ctx context.Context, text string) string {
	if s.profile.HasSufficientInfo() {
		s.setPhase(PhaseMatching)
		return s.handleMatching(ctx)
	}
	return s.contextualReply(ctx, text)
}

func (s *Session) handleMatching(ctx context.Context) string {
	if s.recommendations == nil {
		recs := s.recommend(ctx)
		if len(recs) == 0 {
			return noMatchesReply
		}
		s.recommendations = recs
	}

	top := s.recommendations
	if len(top) > 3 {
		top = top[:3]
	}

	return s.generate(ctx, "present recommendations", "", presentPrompt(s.profile.Name, top), formatRecommendations(top))
}

func (s *Session) handleGeneral(ctx context.Context, text string) string {
	lowered := strings.ToLower(text)
	for _, keyword := range detailKeywords {
		if strings.Contains(lowered, keyword) {
			return s.generate(ctx, "detailed answer", "", detailPrompt(text, &s.profile, s.recommendations), apologyReply)
		}
	}
	return s.contextualReply(ctx, text)
}

func (s *Session) contextualReply(ctx context.Context, text string) string {
	return s.generate(ctx, "contextual reply", "", contextualPrompt(text, &s.profile), contextualFallback)
}

func (s *Session) followUp(ctx context.Context) string {
	missing := s.profile.Missing()
	if len(missing) == 0 {
		return s.generate(ctx, "clarifying questions", "", clarifyingPrompt(&s.profile), fallbackFollowUp(nil))
	}
	return s.generate(ctx, "follow-up questions", "", followUpPrompt(missing, &s.profile), fallbackFollowUp(missing))
}

func (s *Session) recommend(ctx context.Context) []career.Scored {
	if s.recommender == nil {
		s.logger.Warn("recommender is not configured")
		return nil
	}

	recs, err := s.recommender.Recommend(ctx, &s.profile)
	if err != nil {
		s.logger.Error("computing recommendations", zap.Error(err))
		return nil
	}

	s.logger.Info("recommendations computed", zap.Int("count", len(recs)))
	return recs
}

// generate calls the model and returns fallback on error or empty output.
func (s *Session) generate(ctx context.Context, purpose, system, prompt, fallback string) string {
	text, err := s.generator.GenerateContent(ctx, system, prompt)
	if err != nil {
		s.logger.Warn("text generation failed, using fallback",
			zap.String("purpose", purpose),
			zap.Error(err),
		)
		return fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("text generation returned empty output, using fallback", zap.String("purpose", purpose))
		return fallback
	}
	return text
}

func (s *Session) updateProfile(ctx context.Context) {
	if s.extractor == nil {
		return
	}

	data := s.extractor.Extract(ctx, s.recentConversation(), profile.ExtractionSchema)
	fragment, err := profile.FragmentFromMap(data)
	if err != nil {
		s.logger.Warn("partial profile extraction", zap.Error(err))
	}
	s.profile.Merge(fragment)
}

// recentConversation renders the last few history entries for extraction.
func (s *Session) recentConversation() string {
	start := len(s.history) - extractionWindow
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, len(s.history)-start)
	for _, msg := range s.history[start:] {
		speaker := "Student"
		if msg.Role == RoleAssistant {
			speaker = "PathFinder"
		}
		lines = append(lines, speaker+": "+msg.Text)
	}
	return strings.Join(lines, "\n")
}

func (s *Session) appendHistory(role Role, text string) {
	s.history = append(s.history, Message{Role: role, Text: text})
}

func (s *Session) setPhase(next Phase) {
	if s.phase == next {
		return
	}
	s.logger.Debug("phase changed",
		zap.String("from", string(s.phase)),
		zap.String("to", string(next)),
	)
	s.phase = next
}
