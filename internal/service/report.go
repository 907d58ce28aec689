package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/grader"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/worker"
)

// Report is the rendered form of a Progress, shared by the HTTP API and the
// report CLI.
type Report struct {
	Learner    Learner      `json:"learner" yaml:"learner"`
	ContextID  string       `json:"context_id" yaml:"context_id"`
	Notice     string       `json:"notice,omitempty" yaml:"notice,omitempty"`
	FetchError string       `json:"fetch_error,omitempty" yaml:"fetch_error,omitempty"`
	Stats      grader.Stats `json:"stats" yaml:"stats"`
	Rows       []grader.Row `json:"activities" yaml:"activities"`
}

// Report renders p with timestamps in loc.
func (p *Progress) Report(loc *time.Location) Report {
	rows := make([]grader.Row, 0, len(p.Results))
	for _, r := range p.Results {
		rows = append(rows, r.Row(loc))
	}
	return Report{
		Learner:    p.Learner,
		ContextID:  p.ContextID,
		Notice:     p.Notice,
		FetchError: p.FetchError,
		Stats:      p.Stats,
		Rows:       rows,
	}
}

// CourseReport computes progress for every learner of a context, running up
// to workers learners at a time. Results follow the order of learners.
func (s *ProgressService) CourseReport(ctx context.Context, contextID string, learners []Learner, workers int) ([]*Progress, error) {
	items, err := s.activities.ListActivities(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for context %s: %w", contextID, err)
	}

	pool := worker.NewPool[*Progress](workers, len(learners))
	for i, l := range learners {
		pool.Submit(strconv.Itoa(i), func() *Progress {
			return s.evaluate(ctx, contextID, items, l, false)
		})
	}
	pool.Close()

	out := make([]*Progress, len(learners))
	for r := range pool.Results() {
		i, err := strconv.Atoi(r.JobID)
		if err != nil {
			return nil, fmt.Errorf("unexpected job id %q: %w", r.JobID, err)
		}
		out[i] = r.Output
	}

	failed := 0
	for _, p := range out {
		if p.FetchError != "" {
			failed++
		}
	}
	s.logger.Info("course report computed",
		"context_id", contextID,
		"learners", len(learners),
		"fetch_failures", failed,
	)
	return out, ctx.Err()
}
