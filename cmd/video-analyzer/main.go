package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	annotator "github.com/visionlab/gemini-annotator"
)

const defaultPrompt = "Please analyze this video and provide a detailed summary of the main content, including key events and any significant statements."

func main() {
	var videoPath, prompt, apiKey string
	var waitTimeout time.Duration

	flag.StringVar(&videoPath, "video", "", "path to the video file")
	flag.StringVar(&videoPath, "v", "", "path to the video file (shorthand)")
	flag.StringVar(&prompt, "prompt", defaultPrompt, "prompt for video analysis")
	flag.StringVar(&prompt, "p", defaultPrompt, "prompt for video analysis (shorthand)")
	flag.StringVar(&apiKey, "api-key", "", "Gemini API key (overrides environment variable)")
	flag.DurationVar(&waitTimeout, "wait-timeout", 0, "maximum time to wait for remote video processing (0 = no limit)")
	flag.Parse()

	if videoPath == "" {
		log.Fatalf("usage: %s -video input.mp4 [-prompt text] [-wait-timeout 5m]", filepath.Base(os.Args[0]))
	}

	cfg, err := annotator.LoadConfig(apiKey)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	cfg.PollTimeout = waitTimeout

	ctx := context.Background()
	a, err := annotator.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("Processing video: %s\n", videoPath)

	result, err := a.AnalyzeVideo(ctx, videoPath, prompt)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Println("\nAnalysis Result:")
	fmt.Println(result)
}
