package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends. Extraction is always
// single-turn: one prompt in, one structured JSON document out.
type Provider interface {
	// Generate sends the request and returns the model's output. When
	// the request carries a Schema the provider asks for native
	// structured output and validates the JSON against it before
	// returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one extraction call.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Prompt is the user message, typically the syllabus or assignment
	// text wrapped in extraction instructions.
	Prompt string

	// Schema, when set, is the JSON Schema the response must satisfy.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema names and defines the expected JSON structure.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output plus accounting metadata.
type Response struct {
	// Content is the generated JSON (schema-validated when a Schema was
	// requested) or raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
