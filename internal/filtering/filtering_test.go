package filtering

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/pathfinder/internal/career"
)

var testConfig = &Config{
	MinimumScore:        0.25,
	CrossCategoryScore:  0.6,
	HealthcareScore:     0.7,
	SingleCategoryScore: 0.5,
}

func scored(title string, category career.Category, score float64) career.Scored {
	return career.Scored{Record: career.Record{Title: title, Category: category}, Score: score}
}

func titles(c *Candidates) []string {
	out := make([]string, 0, c.Len())
	for _, item := range c.Items {
		out = append(out, item.Title)
	}
	return out
}

func TestSteps(t *testing.T) {
	cases := []struct {
		name    string
		filter  Filter
		primary []career.Category
		items   []career.Scored
		expect  []string
	}{
		{
			name:   "minimum score floor",
			filter: NewMinimumScore(),
			items: []career.Scored{
				scored("low", career.Business, 0.24),
				scored("edge", career.Business, 0.25),
			},
			expect: []string{"edge"},
		},
		{
			name:    "primary category keeps in-category and strong matches",
			filter:  NewPrimaryCategory(),
			primary: []career.Category{career.Technology},
			items: []career.Scored{
				scored("tech", career.Technology, 0.3),
				scored("weak other", career.Business, 0.59),
				scored("strong other", career.Business, 0.6),
			},
			expect: []string{"tech", "strong other"},
		},
		{
			name:   "primary category inactive without primaries",
			filter: NewPrimaryCategory(),
			items: []career.Scored{
				scored("any", career.Business, 0.3),
			},
			expect: []string{"any"},
		},
		{
			name:    "healthcare guard",
			filter:  NewHealthcareGuard(),
			primary: []career.Category{career.STEM},
			items: []career.Scored{
				scored("doctor", career.Healthcare, 0.69),
				scored("nurse", career.Healthcare, 0.7),
				scored("engineer", career.STEM, 0.3),
			},
			expect: []string{"nurse", "engineer"},
		},
		{
			name:    "healthcare guard with healthcare primary",
			filter:  NewHealthcareGuard(),
			primary: []career.Category{career.Healthcare},
			items: []career.Scored{
				scored("doctor", career.Healthcare, 0.3),
			},
			expect: []string{"doctor"},
		},
		{
			name:    "arts only guard",
			filter:  NewArtsOnlyGuard(),
			primary: []career.Category{career.Arts},
			items: []career.Scored{
				scored("software", career.Technology, 0.49),
				scored("physicist", career.STEM, 0.2),
				scored("strong software", career.Technology, 0.5),
				scored("designer", career.Arts, 0.3),
			},
			expect: []string{"strong software", "designer"},
		},
		{
			name:    "arts only guard needs a single primary",
			filter:  NewArtsOnlyGuard(),
			primary: []career.Category{career.Arts, career.Technology},
			items: []career.Scored{
				scored("software", career.Technology, 0.3),
			},
			expect: []string{"software"},
		},
		{
			name:    "tech only guard",
			filter:  NewTechOnlyGuard(),
			primary: []career.Category{career.Technology},
			items: []career.Scored{
				scored("designer", career.Arts, 0.4),
				scored("engineer", career.Technology, 0.4),
			},
			expect: []string{"engineer"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.filter.Validate(testConfig); err != nil {
				t.Fatalf("validate: %v", err)
			}

			c := &Candidates{Items: tc.items, Primary: tc.primary}
			next, step, err := tc.filter.Apply(context.Background(), c)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}

			if got := titles(next); !reflect.DeepEqual(got, tc.expect) {
				t.Fatalf("expected %v, got %v", tc.expect, got)
			}
			if step.Initial != len(tc.items) || step.Left != len(tc.expect) || step.Dropped != len(tc.items)-len(tc.expect) {
				t.Fatalf("unexpected step: %+v", step)
			}
		})
	}
}

func TestRunLogsSteps(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	steps := DefaultSteps()
	DisableByName(steps, TechOnlyGuardName, "test")

	c := &Candidates{
		Items: []career.Scored{
			scored("designer", career.Arts, 0.4),
			scored("low", career.Arts, 0.1),
		},
		Primary: []career.Category{career.Technology},
	}

	got, err := Run(context.Background(), testConfig, zap.New(core), steps, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The tech-only guard would drop the designer but is disabled; the
	// primary category step drops it anyway.
	if got.Len() != 0 {
		t.Fatalf("expected no survivors, got %v", titles(got))
	}

	if n := observed.FilterMessage("filter step").Len(); n != 4 {
		t.Fatalf("expected 4 filter step entries, got %d", n)
	}
	disabled := observed.FilterMessage("filter disabled").All()
	if len(disabled) != 1 || disabled[0].ContextMap()["name"] != TechOnlyGuardName {
		t.Fatalf("expected disabled tech_only_guard to be logged, got %v", disabled)
	}
}

func TestRunRejectsInvalidThreshold(t *testing.T) {
	cfg := *testConfig
	cfg.HealthcareScore = 1.5

	if _, err := Run(context.Background(), &cfg, nil, DefaultSteps(), &Candidates{}); err == nil {
		t.Fatal("expected validation error")
	}

	steps := DefaultSteps()
	DisableByName(steps, HealthcareGuardName, "not needed")
	if _, err := Run(context.Background(), &cfg, nil, steps, &Candidates{}); err != nil {
		t.Fatalf("disabled filter should not be validated: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	steps := DefaultSteps()
	if err := Validate(testConfig, steps); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !DisableByName(steps, ArtsOnlyGuardName, "configured") {
		t.Fatal("expected arts_only_guard to be found")
	}
	if DisableByName(steps, "missing", "configured") {
		t.Fatal("unexpected match for unknown filter")
	}

	statuses := Describe(steps)
	if len(statuses) != 5 {
		t.Fatalf("expected 5 statuses, got %d", len(statuses))
	}

	expectNames := []string{MinimumScoreName, PrimaryCategoryName, HealthcareGuardName, ArtsOnlyGuardName, TechOnlyGuardName}
	for i, status := range statuses {
		if status.Name != expectNames[i] {
			t.Fatalf("status %d: expected %s, got %s", i, expectNames[i], status.Name)
		}
	}

	if statuses[0].Details["threshold"] != "0.25" {
		t.Fatalf("unexpected threshold detail: %v", statuses[0].Details)
	}
	if statuses[3].Enabled || statuses[3].Reason != "configured" {
		t.Fatalf("expected arts_only_guard disabled with reason, got %+v", statuses[3])
	}
}
