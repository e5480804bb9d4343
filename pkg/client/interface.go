package client

import "context"

// VisionClient is the remote multimodal model surface the annotator depends
// on. Implementations own the transport; callers own prompts and decoding.
type VisionClient interface {
	// AnalyzeImage sends an encoded image together with a prompt and returns
	// the model's raw text response.
	AnalyzeImage(ctx context.Context, prompt string, imageJPEG []byte) (string, error)
	// AnalyzeVideo uploads a video file, waits for remote processing to
	// finish and returns the model's text response for the prompt.
	AnalyzeVideo(ctx context.Context, path, prompt string) (string, error)
}
