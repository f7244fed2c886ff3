package syllabus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsharma/studyblocks/internal/llm"
)

// Config holds extraction settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the extraction defaults. Temperature stays low;
// this is transcription, not composition.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.2,
	}
}

// Extractor turns raw course text into structured documents via the LLM
// provider.
type Extractor struct {
	provider llm.Provider
	config   Config
}

// NewExtractor creates an Extractor.
func NewExtractor(provider llm.Provider, cfg Config) *Extractor {
	return &Extractor{provider: provider, config: cfg}
}

// Extract parses full course material into a Document.
func (e *Extractor) Extract(ctx context.Context, text string) (*Document, error) {
	ctx = llm.WithPurpose(ctx, "syllabus-extract")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      extractSystemPrompt,
		Prompt:      buildExtractPrompt(text),
		Schema:      DocumentSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("syllabus extraction failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	return &doc, nil
}

// Assessment is the result of rating one assignment handout.
type Assessment struct {
	Title      string `json:"title"`
	DueDate    string `json:"due_date"`
	DueTime    string `json:"due_time"`
	Difficulty int    `json:"difficulty"`
}

// Assess rates a single assignment's difficulty from its handout text.
func (e *Extractor) Assess(ctx context.Context, text string) (*Assessment, error) {
	ctx = llm.WithPurpose(ctx, "assignment-assess")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      assessSystemPrompt,
		Prompt:      buildAssessPrompt(text),
		Schema:      AssessmentSchema,
		MaxTokens:   1024,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("assignment assessment failed: %w", err)
	}

	var a Assessment
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("parse assessment response: %w", err)
	}
	return &a, nil
}
