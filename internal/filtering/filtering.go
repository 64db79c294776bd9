package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
)

// Filter represents a single step that drops scored careers.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, c *Candidates) (*Candidates, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config carries the score thresholds consumed by the filters.
type Config struct {
	// MinimumScore is the hard floor every career must reach.
	MinimumScore float64
	// CrossCategoryScore lets a career outside the primary categories through.
	CrossCategoryScore float64
	// HealthcareScore is required for healthcare careers when healthcare is not a primary category.
	HealthcareScore float64
	// SingleCategoryScore is required for cross-domain careers when the profile has one primary category.
	SingleCategoryScore float64
}

// Candidates is the working set passed between filters.
type Candidates struct {
	Items   []career.Scored
	Primary []career.Category
}

func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// Exclude removes every item for which drop returns true and returns the removed titles.
func (c *Candidates) Exclude(drop func(career.Scored) bool) []string {
	kept := c.Items[:0]
	var removed []string
	for _, item := range c.Items {
		if drop(item) {
			removed = append(removed, item.Title)
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

// HasPrimary reports whether category is one of the profile's primary categories.
func (c *Candidates) HasPrimary(category career.Category) bool {
	for _, p := range c.Primary {
		if p == category {
			return true
		}
	}
	return false
}

// OnlyPrimary reports whether category is the profile's single primary category.
func (c *Candidates) OnlyPrimary(category career.Category) bool {
	return len(c.Primary) == 1 && c.Primary[0] == category
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) bool {
	found := false
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
			found = true
		}
	}
	return found
}

// Validate checks every enabled filter against cfg.
func Validate(cfg *Config, steps []Filter) error {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return nil
}

// Run executes the supplied filters sequentially and returns the surviving candidates.
func Run(ctx context.Context, cfg *Config, logger *zap.Logger, steps []Filter, c *Candidates) (*Candidates, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := Validate(cfg, steps); err != nil {
		return nil, err
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		c = next
	}

	return c, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
