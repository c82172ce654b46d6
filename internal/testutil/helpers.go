package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written. The ui package prints status lines straight to
// os.Stdout, so command tests use this to check them.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	oldStdout := os.Stdout
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	// Restore stdout even if fn panics
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	w.Close()
	out := <-done
	r.Close()
	return string(out)
}
