// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts the learner and settings routes. Every route needs a
// launch token signed with secret; settings routes also need the instructor
// role.
func RegisterRoutes(mux *http.ServeMux, h *Handler, secret []byte) {
	learner := RequireLaunch(secret)
	instructor := func(fn http.HandlerFunc) http.Handler {
		return learner(RequireInstructor(fn))
	}

	// Progress
	mux.Handle("GET /progress", learner(http.HandlerFunc(h.getProgress)))
	mux.Handle("GET /progress/launch", learner(http.HandlerFunc(h.getLaunchActivity)))
	mux.Handle("GET /activities", learner(http.HandlerFunc(h.listRecordedActivities)))

	// Settings
	mux.Handle("GET /settings/activities", instructor(h.listActivities))
	mux.Handle("POST /settings/activities", instructor(h.createActivity))
	mux.Handle("PUT /settings/activities/{activityID}", instructor(h.updateActivity))
	mux.Handle("DELETE /settings/activities/{activityID}", instructor(h.deleteActivity))
	mux.Handle("POST /settings/activities/{activityID}/move", instructor(h.moveActivity))
}
