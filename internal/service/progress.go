// internal/service/progress.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/activity"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/grader"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/id"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/lrs"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/matcher"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/metrics"
)

// MsgNoEmail is shown to learners whose launch carried no email address.
const MsgNoEmail = "Email address not available from LMS launch."

// ActivityLister reads the configured activities for a course context.
type ActivityLister interface {
	ListActivities(ctx context.Context, contextID string) ([]*gradable.Activity, error)
}

type Learner struct {
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Progress is one learner's standing in one course context.
type Progress struct {
	Learner    Learner
	ContextID  string
	Activities *activity.Collection
	Results    []grader.Result
	Stats      grader.Stats

	// Notice explains an empty view that is not an error.
	Notice string
	// FetchError is set when the LRS could not be read. The view still
	// renders, with every configured activity unmatched.
	FetchError string
}

// ProgressService runs the learner pipeline: fetch statements, build the
// activity hierarchy, match configured activities and grade them.
// It holds no per-request state and is safe for concurrent use.
type ProgressService struct {
	activities ActivityLister
	fetcher    lrs.Fetcher
	logger     *slog.Logger
	limit      int
}

// NewProgressService creates a ProgressService. limit is passed to the LRS
// with every fetch.
func NewProgressService(a ActivityLister, f lrs.Fetcher, logger *slog.Logger, limit int) *ProgressService {
	return &ProgressService{
		activities: a,
		fetcher:    f,
		logger:     logger,
		limit:      limit,
	}
}

// LearnerProgress computes the progress view for a learner. Only a failure
// to read the configured activities is returned as an error; LRS failures
// are reported in Progress.FetchError.
func (s *ProgressService) LearnerProgress(ctx context.Context, contextID string, learner Learner, instructor bool) (*Progress, error) {
	items, err := s.activities.ListActivities(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for context %s: %w", contextID, err)
	}
	return s.evaluate(ctx, contextID, items, learner, instructor), nil
}

func (s *ProgressService) evaluate(ctx context.Context, contextID string, items []*gradable.Activity, learner Learner, instructor bool) *Progress {
	p := &Progress{Learner: learner, ContextID: contextID}

	if learner.Email == "" {
		if !instructor {
			p.Notice = MsgNoEmail
		}
		p.Activities = activity.Build(nil)
	} else {
		p.Activities, p.FetchError = s.hierarchy(ctx, learner.Email)
	}

	p.Results = grader.Evaluate(p.Activities, items)
	p.Stats = grader.Summarize(p.Results)

	for _, r := range p.Results {
		tier := matcher.TierNone
		if r.Match != nil {
			tier = r.Match.Tier
		}
		metrics.ActivityMatchTotal.WithLabelValues(tier.String()).Inc()
	}

	s.logger.Debug("progress computed",
		"context_id", contextID,
		"learner", id.Fingerprint(learner.Email),
		"activities", p.Activities.Len(),
		"configured", len(items),
		"completed", p.Stats.Completed,
	)
	return p
}

// hierarchy fetches a learner's statements and builds the activity
// collection. On failure the collection is empty and the second value holds
// the message to display.
func (s *ProgressService) hierarchy(ctx context.Context, email string) (*activity.Collection, string) {
	start := time.Now()
	statements, err := s.fetcher.Statements(ctx, xapi.MboxAgent(email), s.limit)
	metrics.ObserveFetch(start, err)
	if err != nil {
		s.logger.Warn("lrs fetch failed",
			"learner", id.Fingerprint(email),
			"error", err,
		)
		return activity.Build(nil), "Error fetching records: " + err.Error()
	}
	return activity.Build(statements), ""
}

// RecordedActivities is the full activity hierarchy for a learner, without
// matching. It helps instructors pick xAPI activity ids.
type RecordedActivities struct {
	Activities *activity.Collection `json:"activities"`
	FetchError string               `json:"fetch_error,omitempty"`
}

func (s *ProgressService) Activities(ctx context.Context, learner Learner) RecordedActivities {
	if learner.Email == "" {
		return RecordedActivities{Activities: activity.Build(nil)}
	}
	c, fetchErr := s.hierarchy(ctx, learner.Email)
	return RecordedActivities{Activities: c, FetchError: fetchErr}
}

// LaunchProgress is the single activity behind the launched resource link.
type LaunchProgress struct {
	Match      *matcher.Match
	Grade      *float64
	Notice     string
	FetchError string
}

// LaunchMatch resolves the recorded activity for an LTI resource link: an
// activity id containing labID first, then the link title.
func (s *ProgressService) LaunchMatch(ctx context.Context, learner Learner, resourceLinkTitle, labID string) LaunchProgress {
	if learner.Email == "" {
		return LaunchProgress{Notice: MsgNoEmail}
	}
	c, fetchErr := s.hierarchy(ctx, learner.Email)
	out := LaunchProgress{FetchError: fetchErr}
	if m, ok := matcher.ByLaunch(c, resourceLinkTitle, labID); ok {
		g := grader.Grade(m.Activity)
		out.Match = &m
		out.Grade = &g
		metrics.ActivityMatchTotal.WithLabelValues(m.Tier.String()).Inc()
	}
	return out
}
