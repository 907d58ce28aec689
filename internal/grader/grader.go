package grader

import (
	"math"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/activity"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/matcher"
)

// Grade maps a recorded activity to a normalized grade in [0, 1].
//
// The highest scaled score wins when one was recorded. Containers without a
// score are graded by the share of passed children. Anything else is graded
// from its status alone: passed or completed is full credit.
func Grade(s *activity.Summary) float64 {
	if s.HighestScore != nil {
		return *s.HighestScore
	}
	if s.HasChildren() {
		total := s.Children.Len()
		if total == 0 {
			return 0
		}
		return float64(s.PassedChildren()) / float64(total)
	}
	switch s.Status {
	case activity.StatusPassed, activity.StatusCompleted:
		return 1
	default:
		return 0
	}
}

// Result pairs a configured activity with what the learner actually did.
// Match and Grade are nil when nothing recorded matched the row.
type Result struct {
	Activity *gradable.Activity
	Match    *matcher.Match
	Grade    *float64
}

// Evaluate matches and grades every configured activity, keeping the
// configured order.
func Evaluate(c *activity.Collection, items []*gradable.Activity) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		r := Result{Activity: item}
		if m, ok := matcher.Find(c, item); ok {
			g := Grade(m.Activity)
			r.Match = &m
			r.Grade = &g
		}
		results = append(results, r)
	}
	return results
}

// Matched reports whether any recorded activity was found for the row.
func (r Result) Matched() bool {
	return r.Match != nil && r.Match.Activity != nil
}

// StatusLabel is the learner-facing status, "Not Started" without a match.
func (r Result) StatusLabel() string {
	if !r.Matched() {
		return "Not Started"
	}
	return r.Match.Activity.Status.Label()
}

// Percent is the grade as a whole percentage.
func (r Result) Percent() *int {
	if r.Grade == nil {
		return nil
	}
	p := Percent(*r.Grade)
	return &p
}

// Percent converts a normalized grade to a whole percentage.
func Percent(grade float64) int {
	return int(math.Round(grade * 100))
}

// EarnedPoints scales the grade by the points possible, to one decimal.
func (r Result) EarnedPoints() *float64 {
	if r.Grade == nil {
		return nil
	}
	p := round1(*r.Grade * r.Activity.PointsPossible)
	return &p
}

// Stats is the course-level reduction over all configured activities.
type Stats struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
	Passed    int `json:"passed" yaml:"passed"`
	// AverageScore is the mean grade as a percentage with one decimal, nil
	// when no row has a grade.
	AverageScore *float64 `json:"average_score" yaml:"average_score"`
}

// Summarize counts finished and passed rows and averages the graded ones.
// Completed includes passed and failed rows.
func Summarize(results []Result) Stats {
	st := Stats{Total: len(results)}
	var sum float64
	graded := 0
	for _, r := range results {
		if r.Matched() {
			status := r.Match.Activity.Status
			if status.Done() {
				st.Completed++
			}
			if status == activity.StatusPassed {
				st.Passed++
			}
		}
		if r.Grade != nil {
			sum += *r.Grade
			graded++
		}
	}
	if graded > 0 {
		avg := round1(sum / float64(graded) * 100)
		st.AverageScore = &avg
	}
	return st
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
