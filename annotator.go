// Package annotator provides object and emotion detection annotation for
// images and videos using the Gemini vision API.
//
// The package sends media to the hosted model, extracts the JSON detection
// array from the (possibly markdown-fenced) text response, converts the
// 1000-scale normalized box coordinates to pixels and draws rectangles and
// labels back onto the image.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		annotator "github.com/visionlab/gemini-annotator"
//	)
//
//	func main() {
//		cfg, err := annotator.LoadConfig("")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		ctx := context.Background()
//		a, err := annotator.New(ctx, cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		result, err := a.AnnotateObjects(ctx, "photo.jpg", "Detect all objects in this image")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		fmt.Printf("drew %d boxes, skipped %d\n", result.Report.Drawn, len(result.Report.Skipped))
//		if err := a.SaveResult(result, "analyzed_photo.jpg"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Gemini client (pkg/gemini): image generate-content calls and the video
// upload/poll/fetch/delete lifecycle
// 2. Extractor (pkg/extract): fenced-JSON stripping and detection decoding
// 3. Renderer (pkg/render): normalized-box mapping, palettes and label drawing
// 4. Processing (pkg/processing): image loading, downscaling and saving
//
// A single malformed detection never aborts an annotation pass: per-record
// failures are collected into a render.Report the caller can inspect.
package annotator

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/visionlab/gemini-annotator/internal/utils"
	"github.com/visionlab/gemini-annotator/pkg/client"
	"github.com/visionlab/gemini-annotator/pkg/extract"
	"github.com/visionlab/gemini-annotator/pkg/gemini"
	"github.com/visionlab/gemini-annotator/pkg/processing"
	"github.com/visionlab/gemini-annotator/pkg/render"
)

// Version of the annotator library
const Version = "1.0.0"

// Annotator provides a high-level interface for media analysis and annotation.
type Annotator struct {
	client    client.VisionClient
	processor *processing.Processor
	cfg       *Config
}

// New creates an Annotator backed by the Gemini API.
func New(ctx context.Context, cfg *Config) (*Annotator, error) {
	gc, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:       cfg.APIKey,
		Model:        cfg.Model,
		Temperature:  cfg.Temperature,
		PollInterval: cfg.PollInterval,
		PollTimeout:  cfg.PollTimeout,
	})
	if err != nil {
		return nil, err
	}
	return NewWithClient(cfg, gc), nil
}

// NewWithClient creates an Annotator with a custom vision client. Useful for
// testing and for alternative model backends.
func NewWithClient(cfg *Config, vc client.VisionClient) *Annotator {
	return &Annotator{
		client:    vc,
		processor: processing.NewProcessor(),
		cfg:       cfg,
	}
}

// ImageResult is the outcome of one image annotation pass.
type ImageResult struct {
	// RawResponse is the model's unparsed text response.
	RawResponse string
	// Image is the annotated canvas. It is the same (downscaled) image that
	// was sent to the model, mutated in place by the renderer.
	Image *image.RGBA
	// Report lists what was drawn and what was skipped.
	Report render.Report
}

// AnnotateObjects analyzes an image for objects and draws labeled bounding
// boxes with a palette cycled per detection. imagePath may be a local file
// path or an http(s) URL.
func (a *Annotator) AnnotateObjects(ctx context.Context, imagePath, prompt string) (*ImageResult, error) {
	return a.annotate(ctx, imagePath, gemini.SpatialInstructions, prompt, render.Objects)
}

// AnnotateEmotions analyzes the people in an image and draws emotion-colored
// boxes with the emotion written beneath each one.
func (a *Annotator) AnnotateEmotions(ctx context.Context, imagePath, prompt string) (*ImageResult, error) {
	return a.annotate(ctx, imagePath, gemini.EmotionInstructions, prompt, render.Emotions)
}

func (a *Annotator) annotate(ctx context.Context, imagePath, instructions, prompt string, style render.Style) (*ImageResult, error) {
	isURL := strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://")
	if !isURL && !utils.FileExists(imagePath) {
		return nil, fmt.Errorf("image file not found: %s", imagePath)
	}

	img, err := a.processor.LoadImageSmart(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	// The model sees the downscaled image and its boxes are drawn on it,
	// so the canvas and the payload share dimensions.
	img = a.processor.FitForModel(img, a.cfg.MaxUploadDim)
	payload, err := a.processor.EncodeJPEG(img, a.cfg.UploadQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	raw, err := a.client.AnalyzeImage(ctx, instructions+"\n\n"+prompt, payload)
	if err != nil {
		return nil, err
	}

	records, err := extract.Detections(raw)
	if err != nil {
		return nil, err
	}

	canvas := processing.ToRGBA(img)
	report := render.New(style).Annotate(canvas, records)

	return &ImageResult{
		RawResponse: raw,
		Image:       canvas,
		Report:      report,
	}, nil
}

// AnalyzeVideo uploads a video, waits for remote processing and returns the
// model's text response. No file is written.
func (a *Annotator) AnalyzeVideo(ctx context.Context, videoPath, prompt string) (string, error) {
	return a.client.AnalyzeVideo(ctx, videoPath, prompt)
}

// SaveResult writes the annotated image as a JPEG.
func (a *Annotator) SaveResult(result *ImageResult, path string) error {
	return a.processor.SaveImage(result.Image, path, "jpg", a.cfg.OutputQuality, false)
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
