package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/GuptaDeepak23/FMSb/internal/gesture"
	"github.com/GuptaDeepak23/FMSb/internal/server/api"
)

func TestDetectStreamRoundTrip(t *testing.T) {
	srv, _, _ := newTestServer(t)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/detect"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", wsURL, err)
	}
	defer conn.Close()
	if resp != nil {
		defer resp.Body.Close()
	}

	// One result per frame, errors reported in-band: an undecodable frame
	// answers with no gesture and a reason instead of closing the stream.
	for i := 0; i < 3; i++ {
		if err := conn.WriteJSON(api.DetectRequest{FrameData: "%%%not-base64%%%"}); err != nil {
			t.Fatalf("frame %d: write failed: %v", i, err)
		}

		var res api.DetectResponse
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatalf("frame %d: read failed: %v", i, err)
		}

		if res.Gesture != gesture.None {
			t.Errorf("frame %d: expected gesture %q, got %q", i, gesture.None, res.Gesture)
		}
		if res.Error == "" {
			t.Errorf("frame %d: expected a decode error to be reported", i)
		}
	}
}
