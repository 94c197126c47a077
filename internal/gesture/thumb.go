// Package gesture classifies thumb up/down gestures from hand landmarks.
package gesture

import (
	"math"

	"github.com/GuptaDeepak23/FMSb/internal/detector"
)

// Kind is the ternary classification output.
type Kind string

const (
	// Positive is a thumbs-up gesture.
	Positive Kind = "positive"
	// Negative is a thumbs-down gesture.
	Negative Kind = "negative"
	// None means no gesture, an ambiguous pose, or no input.
	None Kind = "none"
)

// Empirically tuned thresholds. These must stay exactly as-is for
// behavioral parity with deployed clients; do not retune.
const (
	// minThumbExtension is the minimum thumb tip to MCP distance for the
	// thumb to count as extended.
	minThumbExtension = 0.03
	// fingersDeltaY is how far (in normalized Y) the thumb tip must clear
	// the average of the other four fingertips.
	fingersDeltaY = 0.05
	// wristDeltaY is how far the thumb tip must clear the wrist.
	wristDeltaY = 0.03
)

// Debug carries the raw geometric measurements behind a classification.
type Debug struct {
	ThumbExtension  float64 `json:"thumb_extension"`
	ThumbToFingersY float64 `json:"thumb_to_fingers_y"`
	ThumbToWristY   float64 `json:"thumb_to_wrist_y"`
	IsThumbExtended bool    `json:"is_thumb_extended"`
}

// Result is the classifier output for one hand.
type Result struct {
	Gesture Kind   `json:"gesture"`
	Debug   *Debug `json:"debug_info,omitempty"`
}

// Classify decides between thumbs up, thumbs down, and no gesture from one
// set of hand landmarks. It is a pure function: identical input always
// yields an identical Result, and it never fails — a nil hand classifies
// as None.
//
// A pose counts as a gesture only when the thumb tip clears both the
// fingertip average and the wrist. Requiring agreement between the two
// references guards against a merely tilted hand reading as a gesture.
// Remember that normalized image Y grows downward, so "above" is negative.
func Classify(hand *detector.HandLandmarks) Result {
	if hand == nil {
		return Result{Gesture: None}
	}

	thumbTip := hand.Points[detector.ThumbTip]
	thumbMCP := hand.Points[detector.ThumbMCP]
	wrist := hand.Points[detector.Wrist]

	// How straightened the thumb is, approximated by the planar distance
	// from tip to base joint.
	thumbExtension := distanceXY(thumbTip, thumbMCP)
	if thumbExtension <= minThumbExtension {
		// Folded thumb: rejected before the directional metrics exist.
		return Result{Gesture: None}
	}

	avgFingerTipY := (hand.Points[detector.IndexTip].Y +
		hand.Points[detector.MiddleTip].Y +
		hand.Points[detector.RingTip].Y +
		hand.Points[detector.PinkyTip].Y) / 4

	debug := &Debug{
		ThumbExtension:  thumbExtension,
		ThumbToFingersY: thumbTip.Y - avgFingerTipY,
		ThumbToWristY:   thumbTip.Y - wrist.Y,
		IsThumbExtended: true,
	}

	switch {
	case debug.ThumbToFingersY < -fingersDeltaY && debug.ThumbToWristY < -wristDeltaY:
		return Result{Gesture: Positive, Debug: debug}
	case debug.ThumbToFingersY > fingersDeltaY && debug.ThumbToWristY > wristDeltaY:
		return Result{Gesture: Negative, Debug: debug}
	default:
		return Result{Gesture: None, Debug: debug}
	}
}

// distanceXY calculates the Euclidean distance between two landmarks in the
// normalized image plane, ignoring depth.
func distanceXY(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
