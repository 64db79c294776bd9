package api

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/ai"
	"github.com/spigell/pathfinder/internal/dialogue"
	"github.com/spigell/pathfinder/internal/recommend"
)

type stubGenerator struct {
	reply string
}

func (s stubGenerator) GenerateContent(context.Context, string, string) (string, error) {
	return s.reply, nil
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	return newTestDepsWith(t, stubGenerator{reply: "Tell me more about what you enjoy."})
}

func newTestDepsWith(t *testing.T, generator ai.ContentGenerator) Deps {
	t.Helper()

	rec, err := recommend.New(recommend.Options{Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("new recommender: %v", err)
	}

	sessions := dialogue.NewManager(dialogue.Deps{
		Generator:   generator,
		Recommender: rec,
		Logger:      zap.NewNop(),
	}, dialogue.Config{})

	return Deps{
		Recommender: rec,
		Sessions:    sessions,
		Logger:      zap.NewNop(),
	}
}
