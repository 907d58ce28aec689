package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/launch"
)

// ── Request / Response types ────────────────────────────────────────────────

type ActivityRequest struct {
	Title          string   `json:"title" validate:"required,max=255" example:"Lab 1: Getting Started"`
	XAPIActivityID string   `json:"xapi_activity_id" validate:"max=512" example:"http://example.edu/labs/lab1"`
	PointsPossible *float64 `json:"points_possible,omitempty" validate:"omitempty,gte=0" example:"100"`
}

type MoveActivityRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down" example:"up"`
}

type ActivityResponse struct {
	ID             int64     `json:"id" example:"7"`
	Title          string    `json:"title" example:"Lab 1: Getting Started"`
	XAPIActivityID *string   `json:"xapi_activity_id" example:"http://example.edu/labs/lab1"`
	PointsPossible float64   `json:"points_possible" example:"100"`
	DisplayOrder   int       `json:"display_order" example:"1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toActivityResponse(a *gradable.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		Title:          a.Title,
		XAPIActivityID: a.XAPIActivityID,
		PointsPossible: a.PointsPossible,
		DisplayOrder:   a.DisplayOrder,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// respondDomainError maps gradable validation errors to 400. Returns true if
// it wrote a response.
func respondDomainError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, gradable.ErrTitleRequired),
		errors.Is(err, gradable.ErrNegativePoints),
		errors.Is(err, gradable.ErrInvalidMoveStep):
		respondError(w, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listActivities lists the configured activities of the launch context.
// @Summary      List configured activities
// @Description  Returns the course's gradable activities in display order.
// @Tags         Settings
// @Produce      json
// @Security     LaunchToken
// @Success      200  {array}   ActivityResponse
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /settings/activities [get]
func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	activities, err := h.store.ListActivities(ctx, c.ContextID)
	if h.handleStoreError(w, err, "activities") {
		return
	}
	resp := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, toActivityResponse(a))
	}
	respondJSON(w, http.StatusOK, resp)
}

// createActivity adds a gradable activity at the end of the display order.
// @Summary      Add a configured activity
// @Description  Title is required. An empty xAPI activity id means matching by title only. Points default to 100.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     LaunchToken
// @Param        body  body      ActivityRequest  true  "Activity to add"
// @Success      201   {object}  ActivityResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /settings/activities [post]
func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	var req ActivityRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	a, err := gradable.New(c.ContextID, req.Title, req.XAPIActivityID, req.PointsPossible)
	if respondDomainError(w, err) {
		return
	}
	if h.handleStoreError(w, h.store.AddActivity(ctx, a), "activity") {
		return
	}

	h.logger.Info("activity added", "context_id", c.ContextID, "activity_id", a.ID)
	respondJSON(w, http.StatusCreated, toActivityResponse(a))
}

// updateActivity edits a configured activity.
// @Summary      Update a configured activity
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     LaunchToken
// @Param        activityID  path      int              true  "Activity ID"
// @Param        body        body      ActivityRequest  true  "New values"
// @Success      200         {object}  ActivityResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /settings/activities/{activityID} [put]
func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	activityID, ok := pathID(w, r, "activityID")
	if !ok {
		return
	}
	var req ActivityRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	a, err := h.store.GetActivity(ctx, c.ContextID, activityID)
	if h.handleStoreError(w, err, "activity") {
		return
	}
	if respondDomainError(w, a.Edit(req.Title, req.XAPIActivityID, req.PointsPossible)) {
		return
	}
	if h.handleStoreError(w, h.store.UpdateActivity(ctx, a), "activity") {
		return
	}
	respondJSON(w, http.StatusOK, toActivityResponse(a))
}

// deleteActivity removes a configured activity.
// @Summary      Delete a configured activity
// @Tags         Settings
// @Security     LaunchToken
// @Param        activityID  path  int  true  "Activity ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /settings/activities/{activityID} [delete]
func (h *Handler) deleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	activityID, ok := pathID(w, r, "activityID")
	if !ok {
		return
	}
	if h.handleStoreError(w, h.store.DeleteActivity(ctx, c.ContextID, activityID), "activity") {
		return
	}

	h.logger.Info("activity deleted", "context_id", c.ContextID, "activity_id", activityID)
	w.WriteHeader(http.StatusNoContent)
}

// moveActivity swaps an activity with its neighbour in the display order.
// @Summary      Reorder a configured activity
// @Description  Moves the activity one place up or down. Moving past either end leaves the order unchanged. Returns the reordered list.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     LaunchToken
// @Param        activityID  path      int                  true  "Activity ID"
// @Param        body        body      MoveActivityRequest  true  "Direction"
// @Success      200         {array}   ActivityResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /settings/activities/{activityID}/move [post]
func (h *Handler) moveActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, _ := launch.FromContext(ctx)

	activityID, ok := pathID(w, r, "activityID")
	if !ok {
		return
	}
	var req MoveActivityRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	dir, err := gradable.ParseDirection(req.Direction)
	if respondDomainError(w, err) {
		return
	}
	if h.handleStoreError(w, h.store.MoveActivity(ctx, c.ContextID, activityID, dir), "activity") {
		return
	}
	h.listActivities(w, r)
}
