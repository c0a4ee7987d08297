package app_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/1ureka/nthprime/internal/app"
	"github.com/1ureka/nthprime/internal/config"
	"github.com/1ureka/nthprime/internal/prime"
	"github.com/1ureka/nthprime/internal/util"
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunWritesOneLine(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"single prime", config.Config{Count: 1}, "2\n"},
		{"six primes", config.Config{Count: 6}, "13\n"},
		{"verified", config.Config{Count: 1000, Verify: true}, "7919\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := app.Run(tc.cfg, &out); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if out.String() != tc.want {
				t.Errorf("output = %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestRunDefault(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size generation in short mode")
	}

	var out bytes.Buffer
	if err := app.Run(config.Default(), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != "15485863\n" {
		t.Errorf("output = %q, want %q", out.String(), "15485863\n")
	}
}

func TestRunInvalidConfig(t *testing.T) {
	var out bytes.Buffer
	err := app.Run(config.Config{Count: 0}, &out)
	if !errors.Is(err, prime.ErrInvalidCount) {
		t.Errorf("got %v, want ErrInvalidCount", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q on error", out.String())
	}
}

func TestRunWriteError(t *testing.T) {
	if err := app.Run(config.Config{Count: 3}, failingWriter{}); err == nil {
		t.Error("Run returned nil for a failing writer")
	}
}

// TestRunDebugLogsToLogger verifies that debug output goes to the logger
// and never to the result writer.
func TestRunDebugLogsToLogger(t *testing.T) {
	var logs, out bytes.Buffer
	util.SetLogOutput(&logs)
	util.EnableDebug()

	if err := app.Run(config.Config{Count: 6, Verify: true}, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != "13\n" {
		t.Errorf("output = %q, want %q", out.String(), "13\n")
	}
	if !strings.Contains(logs.String(), "generating the first 6 primes") {
		t.Errorf("debug log missing start message: %q", logs.String())
	}
}
