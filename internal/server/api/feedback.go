package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/GuptaDeepak23/FMSb/internal/store"
)

// FeedbackHandler handles HTTP requests for feedback records. It serves
// POST /feedback (submission) and GET /feedbacks (listing).
type FeedbackHandler struct {
	store  store.Store
	logger *slog.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler with the given store.
func NewFeedbackHandler(s store.Store, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{store: s, logger: logger}
}

type createFeedbackRequest struct {
	Type    string  `json:"type"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

type feedbackResponse struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   *string `json:"message"`
	CreatedAt string  `json:"created_at"`
}

// ServeHTTP implements the http.Handler interface and routes between the
// submission and listing endpoints.
func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/feedback":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.create(w, r)
	case "/feedbacks":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w, r)
	default:
		http.NotFound(w, r)
	}
}

// create handles POST /feedback. On success it answers with a plain-text
// confirmation carrying the store-assigned id.
func (h *FeedbackHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !store.ValidType(req.Type) {
		writeError(w, http.StatusBadRequest, "type must be 'positive' or 'negative'")
		return
	}

	id, err := h.store.InsertFeedback(r.Context(), store.NewFeedback{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("insert feedback failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error saving feedback: "+err.Error())
		return
	}

	h.logger.Info("feedback created", "id", id, "type", req.Type)
	writeText(w, http.StatusOK, "Feedback created successfully with ID: %d", id)
}

// list handles GET /feedbacks and returns all records, newest first.
func (h *FeedbackHandler) list(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.store.ListFeedbacks(r.Context())
	if err != nil {
		h.logger.Error("list feedbacks failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	response := make([]feedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		response = append(response, feedbackResponse{
			ID:        f.ID,
			Type:      f.Type,
			Name:      f.Name,
			Email:     f.Email,
			Message:   f.Message,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
