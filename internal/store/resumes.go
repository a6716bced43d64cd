package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// ResumeRecord is one generated resume with the modes the pipeline ended in.
type ResumeRecord struct {
	ID            uuid.UUID           `json:"id"`
	JobTextHash   string              `json:"job_text_hash"`
	SynthesisMode types.SynthesisMode `json:"synthesis_mode"`
	RenderMode    types.RenderMode    `json:"render_mode"`
	MIMEType      string              `json:"mime_type"`
	CreatedAt     time.Time           `json:"created_at"`
}

// SaveResume records a completed pipeline run and returns the record ID.
// The document bytes themselves stay on disk or in the HTTP response; only
// the tailored content and outcome modes are persisted.
func (s *Store) SaveResume(ctx context.Context, jobTextHash string, content *types.TailoredContent, doc *types.RenderedDocument) (uuid.UUID, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tailored content: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resumes (job_text_hash, content, synthesis_mode, render_mode, mime_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		jobTextHash, contentJSON, string(content.SynthesisMode), string(doc.RenderMode), string(doc.MIMEType),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume record by ID. Returns nil without error when
// no record exists.
func (s *Store) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var rec ResumeRecord
	var synthesisMode, renderMode string
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_text_hash, synthesis_mode, render_mode, mime_type, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.JobTextHash, &synthesisMode, &renderMode, &rec.MIMEType, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	rec.SynthesisMode = types.SynthesisMode(synthesisMode)
	rec.RenderMode = types.RenderMode(renderMode)
	return &rec, nil
}

// ListResumes retrieves recent resume records, newest first.
func (s *Store) ListResumes(ctx context.Context, limit int) ([]ResumeRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, job_text_hash, synthesis_mode, render_mode, mime_type, created_at
		 FROM resumes ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var rec ResumeRecord
		var synthesisMode, renderMode string
		if err := rows.Scan(&rec.ID, &rec.JobTextHash, &synthesisMode, &renderMode, &rec.MIMEType, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		rec.SynthesisMode = types.SynthesisMode(synthesisMode)
		rec.RenderMode = types.RenderMode(renderMode)
		records = append(records, rec)
	}
	return records, nil
}
