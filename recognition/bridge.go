package recognition

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// File names of the exchange protocol spoken with the external recognizer
// process: touching "request" asks for a classification of the person
// currently in front of the camera, the answer arrives as the content of
// "out".
const (
	bridgeRequestFile = "request"
	bridgeOutFile     = "out"
)

const (
	DefaultBridgePoll    = 100 * time.Millisecond
	DefaultBridgeTimeout = 10 * time.Second
)

// FileBridge delegates recognition to an external process through a shared
// exchange directory. The external recognizer watches the camera itself, so
// the face crop is ignored.
type FileBridge struct {
	Dir     string
	Poll    time.Duration
	Timeout time.Duration
}

// NewFileBridge sets up the bridge and clears stale exchange files left
// over from a previous run.
func NewFileBridge(dir string, poll, timeout time.Duration) (*FileBridge, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "exchange directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("exchange path %s is not a directory", dir)
	}
	if poll <= 0 {
		poll = DefaultBridgePoll
	}
	if timeout <= 0 {
		timeout = DefaultBridgeTimeout
	}

	b := &FileBridge{Dir: dir, Poll: poll, Timeout: timeout}
	b.removeExchangeFiles()
	return b, nil
}

func (b *FileBridge) removeExchangeFiles() {
	os.Remove(filepath.Join(b.Dir, bridgeRequestFile))
	os.Remove(filepath.Join(b.Dir, bridgeOutFile))
}

// Recognize writes a request marker and waits for the external process to
// answer with a name.
func (b *FileBridge) Recognize(_ gocv.Mat) (Match, error) {
	requestPath := filepath.Join(b.Dir, bridgeRequestFile)
	outPath := filepath.Join(b.Dir, bridgeOutFile)

	if err := os.WriteFile(requestPath, nil, 0644); err != nil {
		return Match{}, errors.Wrap(err, "write recognition request")
	}

	deadline := time.Now().Add(b.Timeout)
	for {
		data, err := os.ReadFile(outPath)
		if err == nil {
			os.Remove(outPath)
			name := strings.TrimSpace(string(data))
			if name == "" {
				name = Unknown
			}
			return Match{Name: name, Confidence: 1.0}, nil
		}
		if !os.IsNotExist(err) {
			return Match{}, errors.Wrap(err, "read recognition answer")
		}
		if time.Now().After(deadline) {
			os.Remove(requestPath)
			return Match{}, errors.Errorf("external recognizer did not answer within %v", b.Timeout)
		}
		time.Sleep(b.Poll)
	}
}

func (b *FileBridge) Close() error {
	b.removeExchangeFiles()
	return nil
}
