package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/profile"
	"github.com/spigell/pathfinder/internal/recommend"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Get instant recommendations for a sample student scenario",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		logger, config := setup()

		rec, err := newRecommender(config, optionalGenerator(ctx, config.AI.Gemini, logger), logger)
		if err != nil {
			logger.Fatal("creating a recommender", zap.Error(err))
		}

		number, _ := cmd.Flags().GetInt("scenario")
		if err := quick(ctx, rec, number, os.Stdout, logger); err != nil {
			if isInterrupt(err) {
				return
			}
			logger.Fatal("quick mode", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(quickCmd)

	quickCmd.Flags().IntP("scenario", "s", 0, "scenario number (1-based). Asked interactively when unset.")
}

// quick recommends careers for one scenario. A zero number asks interactively.
func quick(ctx context.Context, rec *recommend.Recommender, number int, out io.Writer, logger *zap.Logger) error {
	scenario, err := pickScenario(number)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nAnalyzing: %s\n", scenario.Title)
	logger.Debug("quick mode scenario", zap.String("scenario", scenario.Title))

	p := scenario.Profile
	recs, err := rec.Recommend(ctx, &p)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if len(recs) == 0 {
		fmt.Fprintln(out, "No recommendations found. Please try a different scenario.")
		return nil
	}

	renderCards(out, scenario.Title, recs, quickTop)
	renderDetails(out, recs[0].Record)

	return nil
}

func pickScenario(number int) (profile.Scenario, error) {
	scenarios := profile.Scenarios()

	if number != 0 {
		if number < 1 || number > len(scenarios) {
			return profile.Scenario{}, fmt.Errorf("scenario must be between 1 and %d, got %d", len(scenarios), number)
		}
		return scenarios[number-1], nil
	}

	items := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		items = append(items, fmt.Sprintf("%s - %s", s.Title, s.Description))
	}

	prompt := promptui.Select{
		Label: "Choose a student scenario",
		Items: items,
		Size:  len(items),
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return profile.Scenario{}, err
	}

	return scenarios[idx], nil
}
