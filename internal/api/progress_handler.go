package api

import (
	"net/http"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/activity"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/grader"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/launch"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type LaunchActivityResponse struct {
	ResourceLinkTitle string            `json:"resource_link_title,omitempty" example:"Lab 3: Firewalls"`
	LabID             string            `json:"lab_id,omitempty" example:"lab3"`
	Activity          *activity.Summary `json:"activity"`
	MatchedBy         string            `json:"matched_by,omitempty" example:"activity_id"`
	Status            string            `json:"status" example:"Passed"`
	Grade             *float64          `json:"grade" example:"0.85"`
	ScorePercent      *int              `json:"score_percent" example:"85"`
	LastActivity      string            `json:"last_activity,omitempty" example:"Jan 15, 2024 9:30 AM"`
	Notice            string            `json:"notice,omitempty"`
	FetchError        string            `json:"fetch_error,omitempty"`
}

func learnerOf(c *launch.Claims) service.Learner {
	return service.Learner{Email: c.Email, Name: c.Name}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getProgress returns the launched learner's progress in the launch context.
// @Summary      Learner progress
// @Description  Matches every configured activity of the course against the learner's xAPI statements and grades it. LRS failures are reported in fetch_error with status 200.
// @Tags         Progress
// @Produce      json
// @Security     LaunchToken
// @Success      200  {object}  service.Report
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	p, err := h.progress.LearnerProgress(ctx, c.ContextID, learnerOf(c), c.Instructor)
	if err != nil {
		h.logger.Error("failed to compute progress", "context_id", c.ContextID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load configured activities")
		return
	}
	respondJSON(w, http.StatusOK, p.Report(h.loc))
}

// getLaunchActivity returns the activity behind the launched resource link.
// @Summary      Launched activity
// @Description  Resolves the recorded activity for the LTI resource link: an activity id containing custom_lab_id, else the resource link title.
// @Tags         Progress
// @Produce      json
// @Security     LaunchToken
// @Success      200  {object}  LaunchActivityResponse
// @Failure      401  {object}  map[string]string
// @Router       /progress/launch [get]
func (h *Handler) getLaunchActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	lp := h.progress.LaunchMatch(ctx, learnerOf(c), c.ResourceLinkTitle, c.LabID)
	resp := LaunchActivityResponse{
		ResourceLinkTitle: c.ResourceLinkTitle,
		LabID:             c.LabID,
		Status:            "Not Started",
		Grade:             lp.Grade,
		Notice:            lp.Notice,
		FetchError:        lp.FetchError,
	}
	if lp.Match != nil {
		s := lp.Match.Activity
		resp.Activity = s
		resp.MatchedBy = lp.Match.Tier.String()
		resp.Status = s.Status.Label()
		if s.LatestTimestamp != "" {
			resp.LastActivity = xapi.FormatTimestamp(s.LatestTimestamp, h.loc)
		}
	}
	if lp.Grade != nil {
		p := grader.Percent(*lp.Grade)
		resp.ScorePercent = &p
	}
	respondJSON(w, http.StatusOK, resp)
}

// listRecordedActivities returns every activity the learner has statements for.
// @Summary      Recorded activities
// @Description  The learner's full two-level activity hierarchy, most recent first. Useful when choosing xAPI activity ids in settings.
// @Tags         Progress
// @Produce      json
// @Security     LaunchToken
// @Success      200  {object}  service.RecordedActivities
// @Failure      401  {object}  map[string]string
// @Router       /activities [get]
func (h *Handler) listRecordedActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)
	respondJSON(w, http.StatusOK, h.progress.Activities(ctx, learnerOf(c)))
}
