package api

import "net/http"

// PingHandler answers the deployment smoke-test route.
type PingHandler struct{}

// NewPingHandler creates a new ping handler.
func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

type pingResponse struct {
	Message string `json:"message"`
	Method  string `json:"method"`
}

// HandlePing handles /api/test.
func (h *PingHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{Message: "leaderboard service is working", Method: r.Method})
}
