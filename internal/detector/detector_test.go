package detector

import (
	"errors"
	"testing"
)

func TestMockDetectorReturnsConfiguredHands(t *testing.T) {
	mock := NewMockDetector()
	mock.SetHands([]HandLandmarks{ThumbsUpLandmarks()})

	hands, err := mock.Detect(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}
	if hands[0].Handedness != "Right" {
		t.Errorf("expected Right hand, got %q", hands[0].Handedness)
	}
}

func TestMockDetectorReturnsConfiguredError(t *testing.T) {
	mock := NewMockDetector()
	mock.SetError(errors.New("boom"))

	if _, err := mock.Detect(nil); err == nil {
		t.Error("expected configured error")
	}
}

func TestDecodeFrameBadBase64(t *testing.T) {
	if _, err := DecodeFrame("!!!definitely not base64!!!"); err == nil {
		t.Error("expected an error for invalid base64")
	}
}

func TestDecodeFrameEmptyPayload(t *testing.T) {
	if _, err := DecodeFrame(""); err == nil {
		t.Error("expected an error for an empty payload")
	}
}

func TestDecodeFrameDataURLBadBase64(t *testing.T) {
	// The data-URL header must be stripped before decoding; the remainder
	// here is still invalid base64.
	if _, err := DecodeFrame("data:image/png;base64,@@@@"); err == nil {
		t.Error("expected an error for invalid base64 after the header")
	}
}

func TestJSONHandConversion(t *testing.T) {
	h := jsonHand{
		Handedness: "Left",
		Score:      0.87,
	}
	for i := 0; i < NumLandmarks; i++ {
		h.Points = append(h.Points, jsonPoint{X: float64(i), Y: float64(i) * 2, Z: -0.1})
	}

	lm := h.toHandLandmarks()

	if lm.Handedness != "Left" || lm.Score != 0.87 {
		t.Errorf("metadata mismatch: %+v", lm)
	}
	if lm.Points[PinkyTip].X != float64(PinkyTip) {
		t.Errorf("point %d not converted: %+v", PinkyTip, lm.Points[PinkyTip])
	}
}

func TestJSONHandConversionShortList(t *testing.T) {
	// A truncated response must not panic; missing points stay zero.
	h := jsonHand{Points: []jsonPoint{{X: 0.5, Y: 0.5}}}

	lm := h.toHandLandmarks()

	if lm.Points[Wrist].X != 0.5 {
		t.Errorf("expected first point converted, got %+v", lm.Points[Wrist])
	}
	if lm.Points[ThumbTip] != (Point3D{}) {
		t.Errorf("expected missing points to stay zero, got %+v", lm.Points[ThumbTip])
	}
}

func TestFixtureGeometry(t *testing.T) {
	up := ThumbsUpLandmarks()
	if up.Points[ThumbTip].Y >= up.Points[Wrist].Y {
		t.Error("thumbs-up fixture: thumb tip should sit above the wrist")
	}

	down := ThumbsDownLandmarks()
	if down.Points[ThumbTip].Y <= down.Points[Wrist].Y {
		t.Error("thumbs-down fixture: thumb tip should sit below the wrist")
	}
}
