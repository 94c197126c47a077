package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/GuptaDeepak23/FMSb/internal/detector"
	"github.com/GuptaDeepak23/FMSb/internal/server/api"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced by the frontend origin config
	},
}

// DetectStreamHandler is the WebSocket variant of the gesture endpoint.
// The client sends one {"frame_data": ...} message per frame and receives
// one detection result per frame, which avoids per-frame HTTP overhead
// when classifying a live camera feed.
type DetectStreamHandler struct {
	detector detector.Detector
	logger   *slog.Logger
}

// NewDetectStreamHandler creates a new DetectStreamHandler.
func NewDetectStreamHandler(d detector.Detector, logger *slog.Logger) *DetectStreamHandler {
	return &DetectStreamHandler{detector: d, logger: logger}
}

// ServeHTTP upgrades the connection and serves detection results until the
// client disconnects.
func (h *DetectStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := uuid.New().String()
	h.logger.Info("detect stream opened", "session", session)
	defer h.logger.Info("detect stream closed", "session", session)

	for {
		var req api.DetectRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("detect stream read failed", "session", session, "error", err)
			}
			return
		}

		result := api.DetectFrame(h.detector, req.FrameData)

		if err := conn.WriteJSON(result); err != nil {
			h.logger.Warn("detect stream write failed", "session", session, "error", err)
			return
		}
	}
}
