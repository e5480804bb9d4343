package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"
)

// testClient builds a client with a stubbed file getter so the poll loop can
// run without a network.
func testClient(cfg Config, getFile func(ctx context.Context, name string) (*genai.File, error)) *Client {
	cfg.applyDefaults()
	return &Client{cfg: cfg, getFile: getFile}
}

func TestWaitForActiveAlreadyActive(t *testing.T) {
	c := testClient(Config{PollInterval: time.Millisecond}, func(ctx context.Context, name string) (*genai.File, error) {
		t.Fatal("no poll expected for an already active file")
		return nil, nil
	})

	file := &genai.File{Name: "files/abc", State: genai.FileStateActive}
	got, err := c.waitForActive(context.Background(), file)
	if err != nil {
		t.Fatalf("waitForActive() error: %v", err)
	}
	if got != file {
		t.Error("waitForActive() should return the same file handle")
	}
}

func TestWaitForActivePollsUntilReady(t *testing.T) {
	polls := 0
	c := testClient(Config{PollInterval: time.Millisecond}, func(ctx context.Context, name string) (*genai.File, error) {
		polls++
		state := genai.FileStateProcessing
		if polls >= 3 {
			state = genai.FileStateActive
		}
		return &genai.File{Name: name, State: state}, nil
	})

	file := &genai.File{Name: "files/abc", State: genai.FileStateProcessing}
	got, err := c.waitForActive(context.Background(), file)
	if err != nil {
		t.Fatalf("waitForActive() error: %v", err)
	}
	if got.State != genai.FileStateActive {
		t.Errorf("final state = %v, want active", got.State)
	}
	if polls != 3 {
		t.Errorf("polled %d times, want 3", polls)
	}
}

func TestWaitForActiveFailedState(t *testing.T) {
	c := testClient(Config{PollInterval: time.Millisecond}, func(ctx context.Context, name string) (*genai.File, error) {
		return &genai.File{Name: name, State: genai.FileStateFailed}, nil
	})

	file := &genai.File{Name: "files/abc", State: genai.FileStateProcessing}
	if _, err := c.waitForActive(context.Background(), file); err == nil {
		t.Error("waitForActive() should fail when processing fails")
	}
}

func TestWaitForActiveHonorsCancellation(t *testing.T) {
	c := testClient(Config{PollInterval: 50 * time.Millisecond}, func(ctx context.Context, name string) (*genai.File, error) {
		return &genai.File{Name: name, State: genai.FileStateProcessing}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file := &genai.File{Name: "files/abc", State: genai.FileStateProcessing}
	_, err := c.waitForActive(ctx, file)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("waitForActive() error = %v, want context.Canceled", err)
	}
}

func TestWaitForActiveHonorsPollTimeout(t *testing.T) {
	c := testClient(Config{PollInterval: time.Millisecond, PollTimeout: 10 * time.Millisecond},
		func(ctx context.Context, name string) (*genai.File, error) {
			return &genai.File{Name: name, State: genai.FileStateProcessing}, nil
		})

	file := &genai.File{Name: "files/abc", State: genai.FileStateProcessing}
	_, err := c.waitForActive(context.Background(), file)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("waitForActive() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestWaitForActivePollError(t *testing.T) {
	pollErr := errors.New("boom")
	c := testClient(Config{PollInterval: time.Millisecond}, func(ctx context.Context, name string) (*genai.File, error) {
		return nil, pollErr
	})

	file := &genai.File{Name: "files/abc", State: genai.FileStateProcessing}
	_, err := c.waitForActive(context.Background(), file)
	if !errors.Is(err, pollErr) {
		t.Errorf("waitForActive() error = %v, want wrapped poll error", err)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(context.Background(), Config{}); err == nil {
		t.Error("NewClient() should fail without an API key")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want %v", cfg.Temperature, DefaultTemperature)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", cfg.PollInterval, DefaultPollInterval)
	}
	if cfg.PollTimeout != 0 {
		t.Errorf("PollTimeout = %v, want 0 (unbounded)", cfg.PollTimeout)
	}
}

func TestVideoMIME(t *testing.T) {
	if got := videoMIME("clip.mp4"); got != "video/mp4" {
		t.Errorf("videoMIME(clip.mp4) = %q, want video/mp4", got)
	}
	if got := videoMIME("CLIP.MOV"); got != "video/quicktime" {
		t.Errorf("videoMIME(CLIP.MOV) = %q, want video/quicktime", got)
	}
	if got := videoMIME("clip.unknownext"); got != "video/mp4" {
		t.Errorf("videoMIME fallback = %q, want video/mp4", got)
	}
}

func TestAnalyzeVideoMissingFile(t *testing.T) {
	c := testClient(Config{}, nil)
	if _, err := c.AnalyzeVideo(context.Background(), "does-not-exist.mp4", "prompt"); err == nil {
		t.Error("AnalyzeVideo() should fail for a missing file")
	}
}
