package recognition

import (
	"os"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// DefaultSimilarityFloor is the minimum cosine similarity for a gallery
// match; anything below reports Unknown.
const DefaultSimilarityFloor = 0.5

type galleryEntry struct {
	name     string
	centroid []float32
}

// Gallery holds the reference embeddings of known people. Each person is
// represented by the centroid of their enrolled embeddings and matched by
// cosine similarity.
type Gallery struct {
	SimilarityFloor float32

	entries []galleryEntry
}

// LoadGallery reads a gallery file: a JSON object mapping a person's name
// to an array of embedding vectors.
//
//	{"alice": [[0.1, 0.2, ...]], "bob": [[...], [...]]}
func LoadGallery(path string, floor float32) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read gallery %s", path)
	}
	return ParseGallery(data, floor)
}

// ParseGallery builds a Gallery from raw JSON.
func ParseGallery(data []byte, floor float32) (*Gallery, error) {
	if floor <= 0 {
		floor = DefaultSimilarityFloor
	}
	g := &Gallery{SimilarityFloor: floor}

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		if dataType != jsonparser.Array {
			return errors.Errorf("gallery entry %q is not an array", string(key))
		}

		var vectors [][]float32
		var inner error
		_, err := jsonparser.ArrayEach(value, func(vec []byte, vecType jsonparser.ValueType, _ int, _ error) {
			if inner != nil {
				return
			}
			var v []float32
			_, err := jsonparser.ArrayEach(vec, func(num []byte, numType jsonparser.ValueType, _ int, _ error) {
				if inner != nil {
					return
				}
				f, err := jsonparser.ParseFloat(num)
				if err != nil {
					inner = errors.Wrapf(err, "gallery entry %q", string(key))
					return
				}
				v = append(v, float32(f))
			})
			if err != nil && inner == nil {
				inner = err
			}
			vectors = append(vectors, v)
		})
		if err != nil {
			return err
		}
		if inner != nil {
			return inner
		}
		if len(vectors) == 0 {
			return errors.Errorf("gallery entry %q has no embeddings", string(key))
		}

		dim := len(vectors[0])
		for _, v := range vectors {
			if len(v) != dim {
				return errors.Errorf("gallery entry %q has embeddings of mixed dimension", string(key))
			}
		}

		g.entries = append(g.entries, galleryEntry{
			name:     string(key),
			centroid: Centroid(vectors),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse gallery")
	}
	if len(g.entries) == 0 {
		return nil, errors.New("gallery is empty")
	}
	return g, nil
}

// Names lists the enrolled people.
func (g *Gallery) Names() []string {
	names := make([]string, 0, len(g.entries))
	for _, e := range g.entries {
		names = append(names, e.name)
	}
	return names
}

// Classify matches an embedding against the gallery. The best cosine
// similarity wins; below the floor the result is Unknown with the losing
// similarity as confidence.
func (g *Gallery) Classify(embedding []float32) Match {
	best := Match{Name: Unknown}
	for _, e := range g.entries {
		if sim := Cosine(embedding, e.centroid); sim > best.Confidence {
			best = Match{Name: e.name, Confidence: sim}
		}
	}
	if best.Confidence < g.SimilarityFloor {
		best.Name = Unknown
	}
	return best
}
