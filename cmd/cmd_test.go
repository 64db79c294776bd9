package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/ai"
	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/recommend"
)

func TestListCatalog(t *testing.T) {
	catalog := career.Default()

	cases := []struct {
		name     string
		category string
		search   string
		check    func(t *testing.T, got []career.Record)
		wantErr  bool
	}{
		{
			name: "everything",
			check: func(t *testing.T, got []career.Record) {
				if len(got) != catalog.Len() {
					t.Fatalf("expected %d records, got %d", catalog.Len(), len(got))
				}
			},
		},
		{
			name:     "category slug",
			category: "technology",
			check: func(t *testing.T, got []career.Record) {
				if len(got) == 0 {
					t.Fatal("expected technology careers")
				}
				for _, r := range got {
					if r.Category != career.Technology {
						t.Fatalf("unexpected category %q for %s", r.Category, r.Title)
					}
				}
			},
		},
		{
			name:     "search within category",
			category: "technology",
			search:   "python",
			check: func(t *testing.T, got []career.Record) {
				if len(got) != 1 || got[0].Title != "AI/Machine Learning Engineer" {
					t.Fatalf("expected only AI/Machine Learning Engineer, got %+v", got)
				}
			},
		},
		{
			name:     "unknown category",
			category: "astrology",
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := listCatalog(catalog, tc.category, tc.search)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, got)
		})
	}
}

func TestPickScenarioByNumber(t *testing.T) {
	s, err := pickScenario(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Title != "Technology Enthusiast" {
		t.Fatalf("unexpected scenario: %s", s.Title)
	}

	for _, n := range []int{-1, 7} {
		if _, err := pickScenario(n); err == nil {
			t.Fatalf("expected error for scenario %d", n)
		}
	}
}

func TestQuickPrintsTopMatches(t *testing.T) {
	rec, err := recommend.New(recommend.Options{Generator: ai.Unavailable{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	if err := quick(context.Background(), rec, 1, &out, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Analyzing: Technology Enthusiast", "1. Software Engineer", "Required skills for Software Engineer"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\n4. ") {
		t.Fatalf("expected at most three cards:\n%s", text)
	}
}

func TestGetConfigDefaults(t *testing.T) {
	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.AI.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", config.AI.Gemini.Model)
	}
	if config.Matching.MinimumScore != recommend.DefaultMinimumScore || config.Matching.Limit != recommend.DefaultLimit {
		t.Fatalf("unexpected thresholds: %+v", config.Matching.Thresholds)
	}
	if config.Server.Address != viper.GetString("server.address") {
		t.Fatalf("unexpected address: %q", config.Server.Address)
	}
}

func TestEnvName(t *testing.T) {
	if got := envName("ai.gemini.max-output-tokens"); got != "PATHFINDER_AI_GEMINI_MAX_OUTPUT_TOKENS" {
		t.Fatalf("unexpected env name: %s", got)
	}
}
