package rest

import (
	"context"
	"encoding/json"
	"net/http"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	ScoreHandler(w http.ResponseWriter, r *http.Request)
}

type scoreService interface {
	GetByUserID(ctx context.Context, userID string) (int, error)
}

type handlers struct {
	scoreService scoreService
}

func NewHandlers(scoreService scoreService) Handlers {
	return &handlers{
		scoreService: scoreService,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// ScoreHandler - returns the durable score total for one user.
func (that *handlers) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	points, err := that.scoreService.GetByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(map[string]any{"user_id": userID, "points": points}); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
