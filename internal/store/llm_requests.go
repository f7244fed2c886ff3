package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nsharma/studyblocks/internal/llm"
)

// LLMRequest is one stored LLM call record.
type LLMRequest struct {
	ID           int64     `db:"id"`
	CreatedAt    time.Time `db:"created_at"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
}

// AppendLLMRequest records one LLM call. Satisfies llm.RequestLog.
func (s *Store) AppendLLMRequest(ctx context.Context, rec llm.RequestRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (created_at, provider, model, purpose, input_tokens, output_tokens,
		  latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, rec.Success,
		rec.ErrorMessage, rec.RequestBody, rec.ResponseBody)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// ListLLMRequests returns recent LLM calls, newest first.
func (s *Store) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []LLMRequest
	err := s.db.SelectContext(ctx, &recs,
		`SELECT id, created_at, provider, model, purpose, input_tokens,
		        output_tokens, latency_ms, success, error_message,
		        request_body, response_body
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm requests: %w", err)
	}
	return recs, nil
}

// GetLLMRequest returns one record by ID, or nil when not found.
func (s *Store) GetLLMRequest(ctx context.Context, id int64) (*LLMRequest, error) {
	var rec LLMRequest
	err := s.db.GetContext(ctx, &rec,
		`SELECT id, created_at, provider, model, purpose, input_tokens,
		        output_tokens, latency_ms, success, error_message,
		        request_body, response_body
		 FROM llm_requests WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm request %d: %w", id, err)
	}
	return &rec, nil
}
