package detector

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// DecodeFrame decodes a base64-encoded image payload into a Mat.
// The payload may carry a data-URL header ("data:image/jpeg;base64,...");
// everything up to and including the first comma is stripped before decoding.
// The caller owns the returned Mat and must Close it.
func DecodeFrame(frameData string) (*gocv.Mat, error) {
	if idx := strings.Index(frameData, ","); idx >= 0 {
		frameData = frameData[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(frameData)
	if err != nil {
		return nil, fmt.Errorf("decode base64 frame: %w", err)
	}

	mat, err := gocv.IMDecode(raw, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("decode image: empty or unsupported payload")
	}

	return &mat, nil
}
