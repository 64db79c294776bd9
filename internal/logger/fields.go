package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldModel is the structured log field key for the language model identifier.
	FieldModel = "ai_model"
	// FieldSession identifies a conversation.
	FieldSession = "session_id"
	// FieldPhase is the dialogue phase a log entry was written in.
	FieldPhase = "phase"
	// FieldCommand is the CLI command that produced the entry.
	FieldCommand = "command"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SessionFields describes a conversation. Empty values are skipped.
func SessionFields(sessionID, phase string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSession, Value: sessionID},
		StringField{Key: FieldPhase, Value: phase},
	)
}

// WithSession attaches the session id to the logger.
func WithSession(logger *zap.Logger, sessionID string) *zap.Logger {
	return WithFields(logger, SessionFields(sessionID, "")...)
}

// WithModel attaches the model identifier, if any, to the logger.
func WithModel(logger *zap.Logger, model string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldModel, Value: model})...)
}
