package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	_ "embed"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/pathfinder/internal/ai"
	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/filtering"
	"github.com/spigell/pathfinder/internal/matching"
	"github.com/spigell/pathfinder/internal/profile"
	"github.com/spigell/pathfinder/internal/utils"
)

//go:embed explain_prompt.md
var explainPromptTemplate string

const (
	explainConcurrency = 4
	defaultMaxLogLen   = 200
)

// Options configures a Recommender. Zero values fall back to the defaults.
type Options struct {
	Catalog         *career.Catalog
	Mapper          *matching.Mapper
	Generator       ai.ContentGenerator
	Thresholds      *Thresholds
	DisabledFilters []string
	Logger          *zap.Logger
	MaxLogLength    int
}

// Recommender scores the catalog against a profile and explains the best matches.
type Recommender struct {
	catalog    *career.Catalog
	mapper     *matching.Mapper
	scorer     *matching.Scorer
	generator  ai.ContentGenerator
	thresholds Thresholds
	disabled   []string
	logger     *zap.Logger
	maxLogLen  int
}

func New(opts Options) (*Recommender, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = career.Default()
	}

	mapper := opts.Mapper
	if mapper == nil {
		mapper = matching.DefaultMapper(logger)
	}

	generator := opts.Generator
	if generator == nil {
		generator = ai.Unavailable{}
	}

	thresholds := DefaultThresholds()
	if opts.Thresholds != nil {
		thresholds = *opts.Thresholds
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}

	steps := filtering.DefaultSteps()
	for _, name := range opts.DisabledFilters {
		if !filtering.DisableByName(steps, strings.TrimSpace(name), "disabled by configuration") {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
	}

	maxLogLen := opts.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLen
	}

	return &Recommender{
		catalog:    catalog,
		mapper:     mapper,
		scorer:     matching.NewScorer(mapper),
		generator:  generator,
		thresholds: thresholds,
		disabled:   append([]string(nil), opts.DisabledFilters...),
		logger:     logger,
		maxLogLen:  maxLogLen,
	}, nil
}

func (r *Recommender) Catalog() *career.Catalog { return r.catalog }

func (r *Recommender) Thresholds() Thresholds { return r.thresholds }

// Filters reports the status of every filter step with the configured
// thresholds applied to the enabled ones.
func (r *Recommender) Filters() ([]filtering.Status, error) {
	steps := r.steps()
	if err := filtering.Validate(r.thresholds.filterConfig(), steps); err != nil {
		return nil, fmt.Errorf("configure filters: %w", err)
	}
	return filtering.Describe(steps), nil
}

// steps builds a fresh filter chain so concurrent rankings do not share state.
func (r *Recommender) steps() []filtering.Filter {
	steps := filtering.DefaultSteps()
	for _, name := range r.disabled {
		filtering.DisableByName(steps, strings.TrimSpace(name), "disabled by configuration")
	}
	return steps
}

// Rank returns the best matching careers without explanations.
func (r *Recommender) Rank(ctx context.Context, p *profile.StudentProfile) ([]career.Scored, error) {
	if p == nil {
		p = &profile.StudentProfile{}
	}

	records := r.catalog.All()
	items := make([]career.Scored, 0, len(records))
	for _, record := range records {
		items = append(items, career.Scored{Record: record, Score: r.scorer.Score(p, record)})
	}

	candidates := &filtering.Candidates{
		Items:   items,
		Primary: r.mapper.PrimaryCategories(p),
	}

	survivors, err := filtering.Run(ctx, r.thresholds.filterConfig(), r.logger, r.steps(), candidates)
	if err != nil {
		return nil, fmt.Errorf("filter careers: %w", err)
	}

	ranked := survivors.Items
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > r.thresholds.Limit {
		ranked = ranked[:r.thresholds.Limit]
	}

	r.logger.Debug("careers ranked",
		zap.Int("catalog", len(records)),
		zap.Int("ranked", len(ranked)),
		zap.Strings("primary_categories", categoryNames(candidates.Primary)),
	)

	return ranked, nil
}

// Recommend ranks the catalog and attaches an explanation to every result.
func (r *Recommender) Recommend(ctx context.Context, p *profile.StudentProfile) ([]career.Scored, error) {
	ranked, err := r.Rank(ctx, p)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &profile.StudentProfile{}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(explainConcurrency)
	for i := range ranked {
		i := i
		g.Go(func() error {
			ranked[i].Explanation = r.explain(gCtx, p, ranked[i])
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Info("recommendations ready", zap.Int("count", len(ranked)))

	return ranked, nil
}

func (r *Recommender) explain(ctx context.Context, p *profile.StudentProfile, item career.Scored) string {
	prompt := buildExplainPrompt(p, item)

	text, err := r.generator.GenerateContent(ctx, "", prompt)
	if err != nil {
		r.logger.Debug("career explanation failed",
			zap.String("career", item.Title),
			zap.Error(err),
		)
		return fmt.Sprintf("This career shows strong alignment with your profile (%s match).", item.Percent())
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Sprintf("This career aligns well with your interests and has a %s compatibility score.", item.Percent())
	}

	r.logger.Debug("career explanation",
		zap.String("career", item.Title),
		zap.String("preview", utils.TruncateForLog(text, r.maxLogLen)),
	)

	return text
}

func buildExplainPrompt(p *profile.StudentProfile, item career.Scored) string {
	goals := strings.TrimSpace(p.CareerGoals)
	if goals == "" {
		goals = "Not specified"
	}

	return strings.NewReplacer(
		"{{PERCENT}}", item.Percent(),
		"{{INTERESTS}}", strings.Join(p.Interests, ", "),
		"{{HOBBIES}}", strings.Join(p.Hobbies, ", "),
		"{{SUBJECTS}}", strings.Join(p.PreferredSubjects, ", "),
		"{{GOALS}}", goals,
		"{{TITLE}}", item.Title,
		"{{DESCRIPTION}}", item.Description,
		"{{SKILLS}}", strings.Join(item.RequiredSkills, ", "),
	).Replace(explainPromptTemplate)
}

func categoryNames(categories []career.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return names
}
