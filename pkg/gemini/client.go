// Package gemini wraps the Gemini API SDK for image and video analysis.
package gemini

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Default request parameters, matching the documented analyzer behavior.
const (
	DefaultModel        = "gemini-2.0-flash"
	DefaultTemperature  = 0.5
	DefaultPollInterval = 10 * time.Second
	DefaultImageTimeout = 300 * time.Second
	DefaultVideoTimeout = 600 * time.Second
)

// Config carries the per-client settings. Zero values fall back to the
// defaults above; a zero PollTimeout waits for remote processing without
// an upper bound, so callers wanting one must set it or bound the context.
type Config struct {
	APIKey       string
	Model        string
	Temperature  float64
	PollInterval time.Duration
	PollTimeout  time.Duration
	ImageTimeout time.Duration
	VideoTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.ImageTimeout <= 0 {
		c.ImageTimeout = DefaultImageTimeout
	}
	if c.VideoTimeout <= 0 {
		c.VideoTimeout = DefaultVideoTimeout
	}
}

// Client talks to the Gemini API.
type Client struct {
	cfg Config
	api *genai.Client

	// getFile is swapped out in tests to exercise the poll loop offline.
	getFile func(ctx context.Context, name string) (*genai.File, error)
}

// NewClient creates a Gemini client. The API key is required; no network
// call is attempted without one.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	cfg.applyDefaults()

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	c := &Client{cfg: cfg, api: api}
	c.getFile = func(ctx context.Context, name string) (*genai.File, error) {
		return api.Files.Get(ctx, name, nil)
	}
	return c, nil
}

// AnalyzeImage sends the encoded image and prompt in a single generate-content
// request and returns the raw text response. A default deadline is applied
// when the context has none.
func (c *Client) AnalyzeImage(ctx context.Context, prompt string, imageJPEG []byte) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.ImageTimeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(imageJPEG, "image/jpeg"),
		}, genai.RoleUser),
	}

	resp, err := c.api.Models.GenerateContent(ctx, c.cfg.Model, contents, c.generateConfig())
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response from model")
	}
	return text, nil
}

// AnalyzeVideo runs the upload/poll/generate/delete lifecycle for a video
// file and returns the model's text response.
func (c *Client) AnalyzeVideo(ctx context.Context, path, prompt string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("gemini: video file not found: %s", path)
	}

	file, err := c.api.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: videoMIME(path),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: upload video: %w", err)
	}

	file, err = c.waitForActive(ctx, file)
	if err != nil {
		return "", err
	}

	genCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, c.cfg.VideoTimeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromURI(file.URI, file.MIMEType),
		}, genai.RoleUser),
	}
	resp, err := c.api.Models.GenerateContent(genCtx, c.cfg.Model, contents, nil)

	// The uploaded file is no longer needed either way.
	_, _ = c.api.Files.Delete(context.WithoutCancel(ctx), file.Name, nil)

	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response from model")
	}
	return text, nil
}

// waitForActive polls the uploaded file until the service reports a terminal
// state. The wait honors context cancellation and, when cfg.PollTimeout is
// set, an overall deadline.
func (c *Client) waitForActive(ctx context.Context, file *genai.File) (*genai.File, error) {
	if c.cfg.PollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.PollTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gemini: waiting for video processing: %w", ctx.Err())
		case <-ticker.C:
		}

		var err error
		file, err = c.getFile(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("gemini: poll file state: %w", err)
		}
	}

	if file.State == genai.FileStateFailed {
		return nil, fmt.Errorf("gemini: video processing failed for %s", file.Name)
	}
	return file, nil
}

func (c *Client) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(c.cfg.Temperature)),
		SafetySettings: []*genai.SafetySetting{
			{
				Category:  genai.HarmCategoryDangerousContent,
				Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
			},
		},
	}
}

// videoTypes covers the container formats the Gemini file API accepts.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
}

func videoMIME(path string) string {
	if t, ok := videoTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return "video/mp4"
}
