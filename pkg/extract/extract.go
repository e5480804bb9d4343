// Package extract pulls detection payloads out of raw vision model responses.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/visionlab/gemini-annotator/pkg/types"
)

const (
	openFence  = "```json"
	closeFence = "```"
)

// FencedJSON strips a single leading markdown code fence from a model
// response. The scan is line-based: the first line exactly equal to the
// opening marker starts the block, and everything up to (excluding) the next
// closing marker is returned with the original line breaks intact. Text with
// no opening marker is returned verbatim; callers still have to parse the
// result and deal with failure there. Only the first fenced block is
// reachable, later ones are ignored.
func FencedJSON(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == openFence {
			inner := strings.Join(lines[i+1:], "\n")
			if j := strings.Index(inner, closeFence); j >= 0 {
				inner = inner[:j]
			}
			return inner
		}
	}
	return s
}

// InvalidResponseError reports a model response that did not decode as a
// detection array. Raw carries the offending text for diagnostics.
type InvalidResponseError struct {
	Raw string
	Err error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid JSON in analysis response: %v (received: %s)", e.Err, e.Raw)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// Detections strips the fence and decodes a model response into detection
// records.
// Decode failure is not retried; the raw text travels with the error.
func Detections(raw string) ([]types.DetectionRecord, error) {
	text := FencedJSON(raw)

	var records []types.DetectionRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, &InvalidResponseError{Raw: raw, Err: err}
	}
	return records, nil
}
