package recommend

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/filtering"
	"github.com/spigell/pathfinder/internal/profile"
)

type stubGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, _ string, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestRecommender(t *testing.T, opts Options) *Recommender {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r, err := New(opts)
	if err != nil {
		t.Fatalf("new recommender: %v", err)
	}
	return r
}

func scenario(t *testing.T, title string) profile.StudentProfile {
	t.Helper()
	for _, s := range profile.Scenarios() {
		if s.Title == title {
			return s.Profile
		}
	}
	t.Fatalf("scenario %q not found", title)
	return profile.StudentProfile{}
}

func titles(items []career.Scored) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestRankBoundedSortedAndIdempotent(t *testing.T) {
	r := newTestRecommender(t, Options{})

	profiles := []profile.StudentProfile{{}}
	for _, s := range profile.Scenarios() {
		profiles = append(profiles, s.Profile)
	}

	for _, p := range profiles {
		p := p
		first, err := r.Rank(context.Background(), &p)
		if err != nil {
			t.Fatalf("rank: %v", err)
		}
		if len(first) > DefaultLimit {
			t.Fatalf("expected at most %d results, got %d", DefaultLimit, len(first))
		}
		for i := 1; i < len(first); i++ {
			if first[i].Score > first[i-1].Score {
				t.Fatalf("results not sorted: %v", first)
			}
		}
		for _, item := range first {
			if item.Score < DefaultMinimumScore {
				t.Fatalf("%s below minimum score: %f", item.Title, item.Score)
			}
		}

		second, err := r.Rank(context.Background(), &p)
		if err != nil {
			t.Fatalf("rank: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("ranking is not idempotent:\n%v\n%v", titles(first), titles(second))
		}
	}
}

func TestRankEmptyProfileKeepsCatalogOrder(t *testing.T) {
	r := newTestRecommender(t, Options{})

	got, err := r.Rank(context.Background(), nil)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}

	expect := career.Default().Titles()[:DefaultLimit]
	if !reflect.DeepEqual(titles(got), expect) {
		t.Fatalf("expected %v, got %v", expect, titles(got))
	}
}

func TestRankTechnologyScenario(t *testing.T) {
	r := newTestRecommender(t, Options{})
	p := scenario(t, "Technology Enthusiast")

	got, err := r.Rank(context.Background(), &p)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected recommendations")
	}

	top := got[0]
	if top.Category != career.Technology {
		t.Fatalf("expected top result in %s, got %s (%s)", career.Technology, top.Category, top.Title)
	}
	if top.Score < 0.6 {
		t.Fatalf("expected top score >= 0.6, got %f", top.Score)
	}
	if top.Title != "Software Engineer" {
		t.Fatalf("expected Software Engineer on top, got %s", top.Title)
	}
}

func TestRankArtsOnlyProfile(t *testing.T) {
	r := newTestRecommender(t, Options{})
	p := profile.StudentProfile{
		Interests:         []string{"graphic design", "visual arts", "creativity"},
		PreferredSubjects: []string{"art", "design", "english"},
	}

	got, err := r.Rank(context.Background(), &p)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected recommendations")
	}

	for _, item := range got {
		if item.Title == "Medical Doctor" {
			t.Fatalf("medical doctor must not be recommended: %v", titles(got))
		}
		if item.Title == "Software Engineer" && item.Score < 0.5 {
			t.Fatalf("software engineer recommended with score %f", item.Score)
		}
	}
}

func TestRecommendExplanations(t *testing.T) {
	cases := []struct {
		name   string
		stub   *stubGenerator
		expect func(item career.Scored) string
	}{
		{
			name:   "generated",
			stub:   &stubGenerator{response: "  You will love it.  "},
			expect: func(career.Scored) string { return "You will love it." },
		},
		{
			name: "generator failure",
			stub: &stubGenerator{err: errors.New("boom")},
			expect: func(item career.Scored) string {
				return "This career shows strong alignment with your profile (" + item.Percent() + " match)."
			},
		},
		{
			name: "empty output",
			stub: &stubGenerator{response: "   "},
			expect: func(item career.Scored) string {
				return "This career aligns well with your interests and has a " + item.Percent() + " compatibility score."
			},
		},
	}

	p := scenario(t, "Technology Enthusiast")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRecommender(t, Options{Generator: tc.stub})

			got, err := r.Recommend(context.Background(), &p)
			if err != nil {
				t.Fatalf("recommend: %v", err)
			}
			if len(got) == 0 {
				t.Fatal("expected recommendations")
			}

			for _, item := range got {
				if item.Explanation != tc.expect(item) {
					t.Fatalf("%s: unexpected explanation %q", item.Title, item.Explanation)
				}
			}
			if len(tc.stub.prompts) != len(got) {
				t.Fatalf("expected one explanation call per result, got %d for %d", len(tc.stub.prompts), len(got))
			}

			ranked, err := r.Rank(context.Background(), &p)
			if err != nil {
				t.Fatalf("rank: %v", err)
			}
			if !reflect.DeepEqual(titles(ranked), titles(got)) {
				t.Fatalf("explanations changed the ordering: %v vs %v", titles(ranked), titles(got))
			}
		})
	}
}

func TestRecommendWithoutGenerator(t *testing.T) {
	r := newTestRecommender(t, Options{})

	got, err := r.Recommend(context.Background(), &profile.StudentProfile{})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	for _, item := range got {
		if !strings.Contains(item.Explanation, item.Percent()) {
			t.Fatalf("expected fallback explanation with percentage, got %q", item.Explanation)
		}
	}
}

func TestExplainPrompt(t *testing.T) {
	p := &profile.StudentProfile{Interests: []string{"drawing", "music"}}
	item := career.Scored{
		Record: career.Record{Title: "Graphic Designer", Description: "Creates visuals", RequiredSkills: []string{"Creativity", "Typography"}},
		Score:  0.42,
	}

	prompt := buildExplainPrompt(p, item)
	for _, want := range []string{"42% match", "drawing, music", "Career goals: Not specified", "Title: Graphic Designer", "Creativity, Typography"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("placeholders left in prompt:\n%s", prompt)
	}
}

func TestNewValidation(t *testing.T) {
	bad := DefaultThresholds()
	bad.MinimumScore = -0.1
	if _, err := New(Options{Thresholds: &bad}); err == nil {
		t.Fatal("expected error for negative threshold")
	}

	noLimit := DefaultThresholds()
	noLimit.Limit = 0
	if _, err := New(Options{Thresholds: &noLimit}); err == nil {
		t.Fatal("expected error for zero limit")
	}

	if _, err := New(Options{DisabledFilters: []string{"nope"}}); err == nil {
		t.Fatal("expected error for unknown filter")
	}
}

func TestDisabledFilters(t *testing.T) {
	p := profile.StudentProfile{
		Interests:         []string{"graphic design", "visual arts", "creativity"},
		PreferredSubjects: []string{"art", "design", "english"},
	}

	strict := DefaultThresholds()
	strict.Limit = 30
	r := newTestRecommender(t, Options{
		Thresholds:      &strict,
		DisabledFilters: []string{filtering.MinimumScoreName, filtering.PrimaryCategoryName, filtering.HealthcareGuardName, filtering.ArtsOnlyGuardName, filtering.TechOnlyGuardName},
	})

	got, err := r.Rank(context.Background(), &p)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) != career.Default().Len() {
		t.Fatalf("expected every career with all filters disabled, got %d", len(got))
	}

	statuses, err := r.Filters()
	if err != nil {
		t.Fatalf("filters: %v", err)
	}
	for _, status := range statuses {
		if status.Enabled {
			t.Fatalf("expected %s to be disabled", status.Name)
		}
	}
}

func TestFiltersReportThresholds(t *testing.T) {
	custom := DefaultThresholds()
	custom.MinimumScore = 0.4
	r := newTestRecommender(t, Options{Thresholds: &custom})

	statuses, err := r.Filters()
	if err != nil {
		t.Fatalf("filters: %v", err)
	}
	if len(statuses) == 0 || statuses[0].Name != filtering.MinimumScoreName {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
	if got := statuses[0].Details["threshold"]; got != "0.40" {
		t.Fatalf("expected configured threshold 0.40, got %q", got)
	}

	broken := &Recommender{thresholds: Thresholds{MinimumScore: 1.5, Limit: 1}}
	if _, err := broken.Filters(); err == nil {
		t.Fatal("expected error for out of range threshold")
	}
}
