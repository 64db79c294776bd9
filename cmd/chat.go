package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/dialogue"
	"github.com/spigell/pathfinder/internal/logger"
)

const goodbye = "Thanks for using PathFinder! Good luck with your career journey!"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk with PathFinder to discover careers that fit you",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		log, config := setup()

		sessions, err := newChatSessions(ctx, config, log)
		if err != nil {
			log.Fatal("initializing conversational mode", zap.Error(err))
		}

		if err := chat(ctx, sessions, os.Stdout, log); err != nil {
			log.Fatal("conversational mode", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// newChatSessions requires a working generator: the dialogue has nothing to say without one.
func newChatSessions(ctx context.Context, config *Config, log *zap.Logger) (*dialogue.Manager, error) {
	generator, err := newGenerator(ctx, config.AI.Gemini, log)
	if err != nil {
		return nil, err
	}

	rec, err := newRecommender(config, generator, log)
	if err != nil {
		return nil, err
	}

	return newSessions(config, generator, rec, log), nil
}

func chat(ctx context.Context, sessions *dialogue.Manager, out io.Writer, log *zap.Logger) error {
	fmt.Fprintln(out, "AI career counseling mode. Type quit, exit or bye to leave.")

	id, greeting := sessions.StartSession(ctx)
	log = logger.WithSession(log, id)
	defer func() {
		if err := sessions.End(id); err != nil {
			log.Debug("ending session", zap.Error(err))
		}
	}()

	renderMessage(out, assistantSpeaker, greeting)

	input := promptui.Prompt{Label: "You"}
	for {
		text, err := input.Run()
		if err != nil {
			if isInterrupt(err) {
				fmt.Fprintln(out, "\nSession ended. Thanks for using PathFinder!")
				return nil
			}
			return err
		}

		if isQuit(text) {
			fmt.Fprintln(out, goodbye)
			return nil
		}

		reply, err := sessions.ProcessTurn(ctx, id, text)
		if errors.Is(err, dialogue.ErrEmptyMessage) {
			continue
		}
		if err != nil {
			return err
		}

		renderMessage(out, assistantSpeaker, reply)

		recs, err := sessions.Recommendations(id)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			continue
		}

		renderSummaries(out, recs, conversationTop)

		keepGoing, err := confirm("Would you like to continue the conversation?")
		if err != nil {
			if isInterrupt(err) {
				return nil
			}
			return err
		}
		if !keepGoing {
			fmt.Fprintln(out, goodbye)
			return nil
		}
	}
}
