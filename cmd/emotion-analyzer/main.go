package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	annotator "github.com/visionlab/gemini-annotator"
	"github.com/visionlab/gemini-annotator/internal/utils"
	"github.com/visionlab/gemini-annotator/pkg/gemini"
)

func main() {
	var imagePath, prompt, apiKey string

	flag.StringVar(&imagePath, "image", "", "path or URL of the image file")
	flag.StringVar(&imagePath, "i", "", "path or URL of the image file (shorthand)")
	flag.StringVar(&prompt, "prompt", gemini.DefaultEmotionPrompt, "custom prompt for emotion analysis")
	flag.StringVar(&prompt, "p", gemini.DefaultEmotionPrompt, "custom prompt for emotion analysis (shorthand)")
	flag.StringVar(&apiKey, "api-key", "", "Gemini API key (overrides environment variable)")
	flag.Parse()

	cfg, err := annotator.LoadConfig(apiKey)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if imagePath == "" {
		imagePath = pickImage()
	}

	ctx := context.Background()
	a, err := annotator.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("\nAnalyzing emotions in image: %s\n", imagePath)

	result, err := a.AnnotateEmotions(ctx, imagePath, prompt)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Println("\nAnalysis Result:")
	fmt.Println(result.RawResponse)
	for _, s := range result.Report.Skipped {
		log.Printf("skipped box %d: %s", s.Index, s.Reason)
	}

	outPath := utils.OutputFilename("emotion_analyzed", imagePath)
	if err := a.SaveResult(result, outPath); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("\nAnnotated image saved as '%s'\n", outPath)
}

// pickImage runs the interactive picker over images in the working directory.
func pickImage() string {
	fmt.Println("\nNo image path provided. Looking for images in current directory...")

	files, err := utils.ListImagesInDir(".")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if len(files) == 0 {
		fmt.Println("No image files found in current directory.")
		fmt.Println("Please provide an image path using --image argument")
		os.Exit(1)
	}

	path, err := utils.ChooseImage(os.Stdin, os.Stdout, files)
	if errors.Is(err, utils.ErrQuit) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return path
}
