package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GuptaDeepak23/FMSb/internal/detector"
	"github.com/GuptaDeepak23/FMSb/internal/gesture"
)

// DetectHandler handles POST /detect-gesture: it decodes a base64 video
// frame, obtains hand landmarks from the detector, and classifies a thumb
// gesture.
type DetectHandler struct {
	detector detector.Detector
	logger   *slog.Logger
}

// NewDetectHandler creates a new DetectHandler with the given detector.
func NewDetectHandler(d detector.Detector, logger *slog.Logger) *DetectHandler {
	return &DetectHandler{detector: d, logger: logger}
}

// DetectRequest is the gesture endpoint request body. FrameData is a
// base64-encoded image, optionally prefixed with a data-URL header.
type DetectRequest struct {
	FrameData string `json:"frame_data"`
}

// DetectResponse is the gesture endpoint response body. A bad frame or an
// absent hand never fails the HTTP transaction; it is reported through the
// Error field alongside gesture "none".
type DetectResponse struct {
	Gesture       gesture.Kind       `json:"gesture"`
	HandsDetected bool               `json:"hands_detected"`
	Landmarks     []detector.Point3D `json:"landmarks,omitempty"`
	DebugInfo     *gesture.Debug     `json:"debug_info,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// ServeHTTP implements the http.Handler interface.
func (h *DetectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	writeJSON(w, http.StatusOK, DetectFrame(h.detector, req.FrameData))
}

// DetectFrame runs the full frame pipeline: decode, detect, classify.
// Every fault is mapped into the response rather than returned, so callers
// (the POST handler and the WebSocket stream) can always answer the client.
func DetectFrame(d detector.Detector, frameData string) DetectResponse {
	frame, err := detector.DecodeFrame(frameData)
	if err != nil {
		return DetectResponse{Gesture: gesture.None, Error: err.Error()}
	}
	defer frame.Close()

	hands, err := d.Detect(frame)
	if err != nil {
		return DetectResponse{Gesture: gesture.None, Error: "hand detection failed: " + err.Error()}
	}

	if len(hands) == 0 {
		return DetectResponse{
			Gesture:       gesture.None,
			HandsDetected: false,
			Error:         "No hands detected",
		}
	}

	// The detector is configured for a single hand; classify the first.
	hand := hands[0]
	result := gesture.Classify(&hand)

	return DetectResponse{
		Gesture:       result.Gesture,
		HandsDetected: true,
		Landmarks:     hand.Points[:],
		DebugInfo:     result.Debug,
	}
}
