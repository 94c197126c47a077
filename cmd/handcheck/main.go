// Command handcheck verifies that the camera and the MediaPipe landmark
// sidecar work together: it reads live frames, runs hand detection, and
// prints the classified thumb gesture per frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GuptaDeepak23/FMSb/internal/capture"
	"github.com/GuptaDeepak23/FMSb/internal/detector"
	"github.com/GuptaDeepak23/FMSb/internal/gesture"
)

func main() {
	cameraID := flag.Int("camera", 0, "camera device id")
	frames := flag.Int("frames", 50, "number of frames to check")
	flag.Parse()

	fmt.Println("FMSb hand detection check")

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		log.Fatalf("MediaPipe service not available: %v", err)
	}
	defer det.Close()

	cam := capture.NewCamera(*cameraID)
	if err := cam.Open(); err != nil {
		log.Fatalf("Cannot open camera %d: %v", *cameraID, err)
	}
	defer cam.Close()

	fmt.Printf("Camera %d opened, checking %d frames...\n", *cameraID, *frames)

	detected := 0
	for i := 0; i < *frames; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			log.Printf("read frame: %v", err)
			continue
		}

		hands, err := det.Detect(frame)
		frame.Close()
		if err != nil {
			log.Fatalf("Hand detection failed: %v", err)
		}

		if len(hands) == 0 {
			fmt.Printf("frame %02d: no hand\n", i)
		} else {
			detected++
			res := gesture.Classify(&hands[0])
			fmt.Printf("frame %02d: %s hand (score %.2f), gesture: %s\n",
				i, hands[0].Handedness, hands[0].Score, res.Gesture)
		}

		time.Sleep(100 * time.Millisecond)
	}

	if detected == 0 {
		fmt.Println("No hands detected. Check the lighting and hold a hand in frame.")
		os.Exit(1)
	}

	fmt.Printf("Detected a hand in %d/%d frames\n", detected, *frames)
}
