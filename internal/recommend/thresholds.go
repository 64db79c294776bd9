package recommend

import (
	"fmt"

	"github.com/spigell/pathfinder/internal/filtering"
)

const (
	DefaultMinimumScore        = 0.25
	DefaultCrossCategoryScore  = 0.6
	DefaultHealthcareScore     = 0.7
	DefaultSingleCategoryScore = 0.5
	DefaultLimit               = 8
)

// Thresholds groups the tunable constants of the ranking pipeline.
type Thresholds struct {
	MinimumScore        float64 `mapstructure:"minimum-score"`
	CrossCategoryScore  float64 `mapstructure:"cross-category-score"`
	HealthcareScore     float64 `mapstructure:"healthcare-score"`
	SingleCategoryScore float64 `mapstructure:"single-category-score"`
	Limit               int     `mapstructure:"limit"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinimumScore:        DefaultMinimumScore,
		CrossCategoryScore:  DefaultCrossCategoryScore,
		HealthcareScore:     DefaultHealthcareScore,
		SingleCategoryScore: DefaultSingleCategoryScore,
		Limit:               DefaultLimit,
	}
}

// Validate reports values the filters cannot work with.
func (t Thresholds) Validate() error {
	if t.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", t.Limit)
	}
	return filtering.Validate(t.filterConfig(), filtering.DefaultSteps())
}

func (t Thresholds) filterConfig() *filtering.Config {
	return &filtering.Config{
		MinimumScore:        t.MinimumScore,
		CrossCategoryScore:  t.CrossCategoryScore,
		HealthcareScore:     t.HealthcareScore,
		SingleCategoryScore: t.SingleCategoryScore,
	}
}
