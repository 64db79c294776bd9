package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
)

const (
	PromptYes            = "Yes"
	PromptNo             = "No"
	PromptQuick          = "Quick mode: instant recommendations for a sample scenario"
	PromptConversational = "Conversational mode: personalized career counseling"
	PromptCatalog        = "Browse the career catalog"
	PromptExit           = "Exit"
)

var errExit = errors.New("exit requested")

var modePrompt = promptui.Select{
	Label: "How would you like to explore careers?",
	Items: []string{PromptQuick, PromptConversational, PromptCatalog, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start PathFinder interactively and choose a mode",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the interactive entry point of the cli.
func run(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, config := setup()

	logger.Info("starting pathfinder", zap.String("version", version))
	logger.Debug("starting with config", zap.Any("matching", config.Matching), zap.Any("dialogue", config.Dialogue))

	for {
		_, mode, err := modePrompt.Run()
		if err != nil {
			if isInterrupt(err) {
				return
			}
			logger.Fatal("selecting a mode", zap.Error(err))
		}

		if err := handleMode(ctx, mode, config, logger); err != nil {
			if errors.Is(err, errExit) || isInterrupt(err) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleMode(ctx context.Context, mode string, config *Config, logger *zap.Logger) error {
	switch mode {
	case PromptQuick:
		rec, err := newRecommender(config, optionalGenerator(ctx, config.AI.Gemini, logger), logger)
		if err != nil {
			return err
		}
		return quick(ctx, rec, 0, os.Stdout, logger)
	case PromptConversational:
		sessions, err := newChatSessions(ctx, config, logger)
		if err != nil {
			return fmt.Errorf("initializing conversational mode: %w", err)
		}
		if err := chat(ctx, sessions, os.Stdout, logger); err != nil {
			return err
		}
		return errExit
	case PromptCatalog:
		renderCatalog(os.Stdout, career.Default().All())
		return nil
	case PromptExit:
		fmt.Println(goodbye)
		return errExit
	default:
		return fmt.Errorf("invalid mode: %s", mode)
	}
}

func confirm(label string) (bool, error) {
	prompt := promptui.Select{
		Label: label,
		Items: []string{PromptYes, PromptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return answer == PromptYes, nil
}

func isInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
