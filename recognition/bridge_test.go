package recognition

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gocv.io/x/gocv"
)

// answerRequests emulates the external recognizer: it waits for the request
// marker and answers with the given name.
func answerRequests(t *testing.T, dir, name string) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		requestPath := filepath.Join(dir, bridgeRequestFile)
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if _, err := os.Stat(requestPath); err == nil {
				os.Remove(requestPath)
				if err := os.WriteFile(filepath.Join(dir, bridgeOutFile), []byte(name), 0644); err != nil {
					t.Error(err)
				}
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Error("no request arrived")
	}()
	return done
}

func TestFileBridgeRecognize(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBridge(dir, 10*time.Millisecond, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	done := answerRequests(t, dir, "alice\n")

	m, err := b.Recognize(gocv.Mat{})
	if err != nil {
		t.Fatal(err)
	}
	<-done

	if m.Name != "alice" {
		t.Errorf("got %q, want alice", m.Name)
	}

	// The answer file must be consumed.
	if _, err := os.Stat(filepath.Join(dir, bridgeOutFile)); !os.IsNotExist(err) {
		t.Error("answer file left behind")
	}
}

func TestFileBridgeEmptyAnswer(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBridge(dir, 10*time.Millisecond, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	done := answerRequests(t, dir, "")

	m, err := b.Recognize(gocv.Mat{})
	if err != nil {
		t.Fatal(err)
	}
	<-done

	if m.Name != Unknown {
		t.Errorf("got %q, want %q", m.Name, Unknown)
	}
}

func TestFileBridgeTimeout(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBridge(dir, 10*time.Millisecond, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if _, err := b.Recognize(gocv.Mat{}); err == nil {
		t.Error("expected timeout error")
	}

	// The request marker must not linger after a timeout.
	if _, err := os.Stat(filepath.Join(dir, bridgeRequestFile)); !os.IsNotExist(err) {
		t.Error("request file left behind")
	}
}

func TestFileBridgeClearsStaleFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, bridgeOutFile), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, bridgeRequestFile), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileBridge(dir, 0, 0); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, bridgeOutFile)); !os.IsNotExist(err) {
		t.Error("stale answer file not removed")
	}
	if _, err := os.Stat(filepath.Join(dir, bridgeRequestFile)); !os.IsNotExist(err) {
		t.Error("stale request file not removed")
	}
}

func TestFileBridgeRejectsMissingDir(t *testing.T) {
	if _, err := NewFileBridge(filepath.Join(t.TempDir(), "missing"), 0, 0); err == nil {
		t.Error("expected error for missing directory")
	}
}
