package recognition

import (
	"image"
	"os"
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Embedder turns an aligned face crop into a fixed-length vector.
type Embedder interface {
	Embed(face gocv.Mat) ([]float32, error)
	Close() error
}

// Facenet computes face embeddings with a FaceNet-style ONNX model
// (128-D output from a 160x160 RGB crop).
type Facenet struct {
	net       gocv.Net
	inputSize image.Point
	mu        sync.Mutex // protects inference
}

func NewFacenet(modelPath string) (*Facenet, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, errors.Wrapf(err, "embedder model %s", modelPath)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, errors.Errorf("failed to load embedder model from %s", modelPath)
	}
	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &Facenet{net: net, inputSize: image.Pt(160, 160)}, nil
}

func (f *Facenet) Embed(face gocv.Mat) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if face.Empty() {
		return nil, errors.New("empty face crop")
	}

	blob := gocv.BlobFromImage(face, 1.0/255.0, f.inputSize, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	f.net.SetInput(blob, "")
	out := f.net.Forward("")
	defer out.Close()

	embedding := make([]float32, out.Cols())
	for i := range embedding {
		embedding[i] = out.GetFloatAt(0, i)
	}
	if len(embedding) == 0 {
		return nil, errors.New("embedder produced no output")
	}
	return embedding, nil
}

func (f *Facenet) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.net.Close()
}
