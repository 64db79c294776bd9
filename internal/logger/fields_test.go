package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  model  ", Value: "  gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "model" || fields[0].String != "gemini" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if ctx := entries[0].ContextMap(); ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestSessionFields(t *testing.T) {
	fields := SessionFields(" abc ", "greeting")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldSession || fields[0].String != "abc" {
		t.Fatalf("unexpected session field: %+v", fields[0])
	}

	if fields[1].Key != FieldPhase || fields[1].String != "greeting" {
		t.Fatalf("unexpected phase field: %+v", fields[1])
	}

	if only := SessionFields("abc", ""); len(only) != 1 {
		t.Fatalf("expected phase to be skipped, got %d fields", len(only))
	}
}

func TestWithSessionAndModel(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	enriched := WithModel(WithSession(zap.New(core), "s-1"), "gemini-2.5-flash")
	enriched.Info("turn")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldSession] != "s-1" {
		t.Fatalf("expected session field, got %v", ctx[FieldSession])
	}
	if ctx[FieldModel] != "gemini-2.5-flash" {
		t.Fatalf("expected model field, got %v", ctx[FieldModel])
	}

	bare := WithModel(zap.New(core), "")
	bare.Info("no model")
	if _, ok := observed.All()[1].ContextMap()[FieldModel]; ok {
		t.Fatalf("expected empty model to be omitted")
	}
}
