package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/lrs"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/matcher"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/service"
)

// ── stubs ────────────────────────────────────────────────────────────────────

type stubLister struct {
	items map[string][]*gradable.Activity
	err   error
}

func (s *stubLister) ListActivities(_ context.Context, contextID string) ([]*gradable.Activity, error) {
	return s.items[contextID], s.err
}

type stubFetcher struct {
	mu         sync.Mutex
	statements map[string][]xapi.Statement // by mbox
	errs       map[string]error
	calls      []string
	limits     []int
}

func (f *stubFetcher) Statements(_ context.Context, agent xapi.Agent, limit int) ([]xapi.Statement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, agent.Mbox)
	f.limits = append(f.limits, limit)
	if err := f.errs[agent.Mbox]; err != nil {
		return nil, err
	}
	return f.statements[agent.Mbox], nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stmt(id, name, verb, ts, parent string) xapi.Statement {
	st := xapi.Statement{
		Verb:      xapi.Verb{ID: "http://adlnet.gov/expapi/verbs/" + verb},
		Object:    xapi.Object{ID: id, Definition: &xapi.ActivityDefinition{Name: xapi.LanguageMap{"en-US": name}}},
		Timestamp: ts,
	}
	if parent != "" {
		st.Context = &xapi.Context{ContextActivities: &xapi.ContextActivities{Parent: []xapi.Object{{ID: parent}}}}
	}
	return st
}

func configured(t *testing.T, id int64, title, hint string) *gradable.Activity {
	t.Helper()
	a, err := gradable.New("ctx-1", title, hint, nil)
	require.NoError(t, err)
	a.ID = id
	return a
}

func fixture(t *testing.T) (*stubLister, *stubFetcher) {
	t.Helper()
	lister := &stubLister{items: map[string][]*gradable.Activity{
		"ctx-1": {
			configured(t, 1, "Firewall Lab", ""),
			configured(t, 2, "Anything", "labs/routing"),
			configured(t, 3, "Zz", ""),
		},
	}}
	fetcher := &stubFetcher{
		statements: map[string][]xapi.Statement{
			"mailto:ada@example.edu": {
				stmt("urn:fw", "Firewall Lab", "completed", "2024-01-01T00:00:00Z", ""),
				stmt("urn:fw:1", "Open port", "passed", "2024-01-02T00:00:00Z", "urn:fw"),
				stmt("http://example.edu/labs/routing", "Routing", "passed", "2024-01-03T00:00:00Z", ""),
			},
		},
		errs: map[string]error{
			"mailto:down@example.edu": &lrs.Error{StatusCode: 503},
		},
	}
	return lister, fetcher
}

// ── LearnerProgress ──────────────────────────────────────────────────────────

func TestLearnerProgress(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	p, err := svc.LearnerProgress(context.Background(), "ctx-1", service.Learner{Email: "ada@example.edu"}, false)
	require.NoError(t, err)

	assert.Empty(t, p.Notice)
	assert.Empty(t, p.FetchError)
	assert.Equal(t, 2, p.Activities.Len())
	require.Len(t, p.Results, 3)

	assert.Equal(t, "urn:fw", p.Results[0].Match.ActivityID)
	assert.Equal(t, "Passed", p.Results[0].StatusLabel(), "sole child passed")
	assert.Equal(t, matcher.TierActivityID, p.Results[1].Match.Tier)
	assert.False(t, p.Results[2].Matched())

	assert.Equal(t, 3, p.Stats.Total)
	assert.Equal(t, 2, p.Stats.Completed)
	assert.Equal(t, 2, p.Stats.Passed)
	require.NotNil(t, p.Stats.AverageScore)
	assert.Equal(t, 100.0, *p.Stats.AverageScore)

	assert.Equal(t, []string{"mailto:ada@example.edu"}, fetcher.calls)
	assert.Equal(t, []int{100}, fetcher.limits)
}

func TestLearnerProgress_FetchErrorIsData(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	p, err := svc.LearnerProgress(context.Background(), "ctx-1", service.Learner{Email: "down@example.edu"}, false)
	require.NoError(t, err)

	assert.Equal(t, "Error fetching records: HTTP 503", p.FetchError)
	assert.Zero(t, p.Activities.Len())
	require.Len(t, p.Results, 3)
	for _, r := range p.Results {
		assert.Equal(t, "Not Started", r.StatusLabel())
	}
	assert.Nil(t, p.Stats.AverageScore)
}

func TestLearnerProgress_NoEmail(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	p, err := svc.LearnerProgress(context.Background(), "ctx-1", service.Learner{}, false)
	require.NoError(t, err)
	assert.Equal(t, service.MsgNoEmail, p.Notice)
	assert.Len(t, p.Results, 3)

	p, err = svc.LearnerProgress(context.Background(), "ctx-1", service.Learner{}, true)
	require.NoError(t, err)
	assert.Empty(t, p.Notice, "instructors see an empty view")

	assert.Empty(t, fetcher.calls)
}

func TestLearnerProgress_StoreError(t *testing.T) {
	_, fetcher := fixture(t)
	lister := &stubLister{err: errors.New("disk gone")}
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	_, err := svc.LearnerProgress(context.Background(), "ctx-1", service.Learner{Email: "ada@example.edu"}, false)
	assert.ErrorContains(t, err, "disk gone")
	assert.Empty(t, fetcher.calls)
}

// ── Activities / LaunchMatch ─────────────────────────────────────────────────

func TestActivities(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	got := svc.Activities(context.Background(), service.Learner{Email: "ada@example.edu"})
	assert.Empty(t, got.FetchError)
	assert.Equal(t, []string{"http://example.edu/labs/routing", "urn:fw"}, got.Activities.IDs())

	got = svc.Activities(context.Background(), service.Learner{Email: "down@example.edu"})
	assert.NotEmpty(t, got.FetchError)
	assert.Zero(t, got.Activities.Len())
}

func TestLaunchMatch(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)
	ada := service.Learner{Email: "ada@example.edu"}

	got := svc.LaunchMatch(context.Background(), ada, "Firewall Lab", "ROUTING")
	require.NotNil(t, got.Match)
	assert.Equal(t, "http://example.edu/labs/routing", got.Match.ActivityID)
	assert.Equal(t, 1.0, *got.Grade)

	got = svc.LaunchMatch(context.Background(), ada, "Firewall Lab", "")
	require.NotNil(t, got.Match)
	assert.Equal(t, "urn:fw", got.Match.ActivityID)

	got = svc.LaunchMatch(context.Background(), ada, "", "")
	assert.Nil(t, got.Match)
	assert.Nil(t, got.Grade)

	got = svc.LaunchMatch(context.Background(), service.Learner{}, "Firewall Lab", "")
	assert.Equal(t, service.MsgNoEmail, got.Notice)
}

// ── CourseReport ─────────────────────────────────────────────────────────────

func TestCourseReport_KeepsLearnerOrder(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	learners := []service.Learner{
		{Email: "down@example.edu"},
		{Email: "ada@example.edu"},
		{Email: "nobody@example.edu"},
		{},
	}
	out, err := svc.CourseReport(context.Background(), "ctx-1", learners, 3)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "down@example.edu", out[0].Learner.Email)
	assert.NotEmpty(t, out[0].FetchError)
	assert.Equal(t, 2, out[1].Stats.Passed)
	assert.Zero(t, out[2].Stats.Completed)
	assert.Equal(t, service.MsgNoEmail, out[3].Notice)

	assert.Len(t, fetcher.calls, 3)
}

func TestProgress_Report(t *testing.T) {
	lister, fetcher := fixture(t)
	svc := service.NewProgressService(lister, fetcher, discard(), 100)

	p, err := svc.LearnerProgress(context.Background(), "ctx-1", service.Learner{Email: "ada@example.edu"}, false)
	require.NoError(t, err)

	r := p.Report(time.UTC)
	assert.Equal(t, "ctx-1", r.ContextID)
	require.Len(t, r.Rows, 3)
	assert.Equal(t, "Firewall Lab", r.Rows[0].Title)
	assert.Equal(t, "1/1 tasks", r.Rows[0].Tasks)
	assert.Equal(t, "Jan 1, 2024 12:00 AM", r.Rows[0].LastActivity)
	assert.Equal(t, "Not Started", r.Rows[2].Status)
}
