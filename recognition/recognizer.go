// Package recognition identifies aligned face crops. The default recognizer
// embeds the crop with a FaceNet-style network and classifies the embedding
// against a gallery of known people; a file-exchange bridge to an external
// recognizer process is available as an alternative backend.
package recognition

import (
	"gocv.io/x/gocv"
)

// Unknown is the name reported when no gallery entry is close enough.
const Unknown = "unknown"

// Match is a recognition result.
type Match struct {
	Name       string
	Confidence float32
}

// Recognizer identifies the person on an aligned face crop.
type Recognizer interface {
	Recognize(face gocv.Mat) (Match, error)
	Close() error
}

// EmbeddingRecognizer runs the embed-then-classify pipeline.
type EmbeddingRecognizer struct {
	embedder Embedder
	gallery  *Gallery
}

func NewEmbeddingRecognizer(embedder Embedder, gallery *Gallery) *EmbeddingRecognizer {
	return &EmbeddingRecognizer{embedder: embedder, gallery: gallery}
}

func (r *EmbeddingRecognizer) Recognize(face gocv.Mat) (Match, error) {
	embedding, err := r.embedder.Embed(face)
	if err != nil {
		return Match{}, err
	}
	return r.gallery.Classify(embedding), nil
}

func (r *EmbeddingRecognizer) Close() error {
	return r.embedder.Close()
}
