package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/pathfinder/internal/career"
)

const (
	MinimumScoreName    = "minimum_score"
	PrimaryCategoryName = "primary_category"
	HealthcareGuardName = "healthcare_guard"
	ArtsOnlyGuardName   = "arts_only_guard"
	TechOnlyGuardName   = "tech_only_guard"
)

// thresholdFilter drops a career when reject returns true for the configured threshold.
type thresholdFilter struct {
	name      string
	disabled  bool
	reason    string
	threshold float64
	pick      func(*Config) float64
	reject    func(c *Candidates, item career.Scored, threshold float64) bool
}

func (f *thresholdFilter) Name() string { return f.name }

func (f *thresholdFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *thresholdFilter) IsEnabled() bool { return !f.disabled }

func (f *thresholdFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("filter configuration is required")
	}
	threshold := f.pick(cfg)
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %.2f is outside [0, 1]", threshold)
	}
	f.threshold = threshold
	return nil
}

func (f *thresholdFilter) Apply(_ context.Context, c *Candidates) (*Candidates, Step, error) {
	if c == nil {
		return nil, Step{}, fmt.Errorf("candidates are required")
	}

	initial := c.Len()
	removed := c.Exclude(func(item career.Scored) bool {
		return f.reject(c, item, f.threshold)
	})

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *thresholdFilter) Status() Status {
	return Status{
		Name:    f.name,
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"threshold": strconv.FormatFloat(f.threshold, 'f', 2, 64)},
	}
}

// NewMinimumScore drops careers below the hard score floor.
func NewMinimumScore() Filter {
	return &thresholdFilter{
		name: MinimumScoreName,
		pick: func(cfg *Config) float64 { return cfg.MinimumScore },
		reject: func(_ *Candidates, item career.Scored, threshold float64) bool {
			return item.Score < threshold
		},
	}
}

// NewPrimaryCategory keeps careers in a primary category unless the match is strong.
func NewPrimaryCategory() Filter {
	return &thresholdFilter{
		name: PrimaryCategoryName,
		pick: func(cfg *Config) float64 { return cfg.CrossCategoryScore },
		reject: func(c *Candidates, item career.Scored, threshold float64) bool {
			if len(c.Primary) == 0 {
				return false
			}
			return !c.HasPrimary(item.Category) && item.Score < threshold
		},
	}
}

// NewHealthcareGuard drops healthcare careers without a clear healthcare interest.
func NewHealthcareGuard() Filter {
	return &thresholdFilter{
		name: HealthcareGuardName,
		pick: func(cfg *Config) float64 { return cfg.HealthcareScore },
		reject: func(c *Candidates, item career.Scored, threshold float64) bool {
			if len(c.Primary) == 0 || item.Category != career.Healthcare {
				return false
			}
			return !c.HasPrimary(career.Healthcare) && item.Score < threshold
		},
	}
}

// NewArtsOnlyGuard drops weak technology and STEM careers for purely creative profiles.
func NewArtsOnlyGuard() Filter {
	return &thresholdFilter{
		name: ArtsOnlyGuardName,
		pick: func(cfg *Config) float64 { return cfg.SingleCategoryScore },
		reject: func(c *Candidates, item career.Scored, threshold float64) bool {
			if !c.OnlyPrimary(career.Arts) {
				return false
			}
			if item.Category != career.Technology && item.Category != career.STEM {
				return false
			}
			return item.Score < threshold
		},
	}
}

// NewTechOnlyGuard drops weak creative careers for purely technical profiles.
func NewTechOnlyGuard() Filter {
	return &thresholdFilter{
		name: TechOnlyGuardName,
		pick: func(cfg *Config) float64 { return cfg.SingleCategoryScore },
		reject: func(c *Candidates, item career.Scored, threshold float64) bool {
			return c.OnlyPrimary(career.Technology) && item.Category == career.Arts && item.Score < threshold
		},
	}
}

// DefaultSteps returns the filters in the order they are applied.
func DefaultSteps() []Filter {
	return []Filter{
		NewMinimumScore(),
		NewPrimaryCategory(),
		NewHealthcareGuard(),
		NewArtsOnlyGuard(),
		NewTechOnlyGuard(),
	}
}
