package ai

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/utils"
)

//go:embed extract_prompt.md
var extractPromptTemplate string

const (
	extractSystemMessage = "You extract structured data from conversations and reply with valid JSON only."
	defaultMaxLogLength  = 200
)

// Extractor asks a generator for JSON that follows a field schema.
type Extractor struct {
	generator ContentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator ContentGenerator, logger *zap.Logger, maxLogLength int) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Extract returns the fields found in text. Any failure, including output
// that is not a JSON object, yields an empty map.
func (e *Extractor) Extract(ctx context.Context, text string, schema map[string]any) map[string]any {
	empty := map[string]any{}

	text = strings.TrimSpace(text)
	if text == "" {
		return empty
	}

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		e.logger.Warn("marshal extraction schema", zap.Error(err))
		return empty
	}

	prompt := buildExtractPrompt(string(schemaJSON), text)

	e.logger.Debug("extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, extractSystemMessage, prompt)
	if err != nil {
		e.logger.Warn("extraction failed", zap.Error(err))
		return empty
	}

	e.logger.Debug("extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	var data map[string]any
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &data); err != nil {
		e.logger.Warn("parse extraction response",
			zap.Error(err),
			zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
		)
		return empty
	}
	if data == nil {
		return empty
	}

	return data
}

func buildExtractPrompt(schemaJSON, text string) string {
	template := extractPromptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Schema:\n{{SCHEMA_JSON}}\n\nConversation:\n{{TEXT}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{SCHEMA_JSON}}", schemaJSON)
	prompt = strings.ReplaceAll(prompt, "{{TEXT}}", text)
	return prompt
}

// ExtractJSON strips markdown fences and surrounding chatter from a model
// reply, returning the outermost JSON object when one is present.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		raw = raw[start : end+1]
	}
	return raw
}
