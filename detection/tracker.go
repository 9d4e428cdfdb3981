package detection

import (
	"github.com/google/uuid"
)

// Track is a face followed over consecutive frames under a stable ID.
type Track struct {
	ID     string
	Face   Face
	Misses int
}

// Tracker associates per-frame detections with existing tracks by greedy
// intersection-over-union matching. Unmatched detections open new tracks;
// tracks coast for up to MaxMisses frames before they are dropped.
type Tracker struct {
	MinIoU    float64
	MaxMisses int

	tracks []*Track
}

const (
	DefaultMinIoU    = 0.3
	DefaultMaxMisses = 3
)

func NewTracker(minIoU float64, maxMisses int) *Tracker {
	if minIoU <= 0 {
		minIoU = DefaultMinIoU
	}
	if maxMisses <= 0 {
		maxMisses = DefaultMaxMisses
	}
	return &Tracker{MinIoU: minIoU, MaxMisses: maxMisses}
}

// Update ingests one frame worth of detections and returns the tracks seen
// in this frame, newly opened ones included.
func (t *Tracker) Update(faces []Face) []*Track {
	matched := make(map[*Track]bool)
	seen := make([]*Track, 0, len(faces))

	for i := range faces {
		var best *Track
		bestIoU := t.MinIoU
		for _, tr := range t.tracks {
			if matched[tr] {
				continue
			}
			if iou := IoU(tr.Face.Box, faces[i].Box); iou >= bestIoU {
				best = tr
				bestIoU = iou
			}
		}
		if best == nil {
			best = &Track{ID: uuid.New().String()}
			t.tracks = append(t.tracks, best)
		}
		best.Face = faces[i]
		best.Misses = 0
		matched[best] = true
		seen = append(seen, best)
	}

	kept := t.tracks[:0]
	for _, tr := range t.tracks {
		if !matched[tr] {
			tr.Misses++
		}
		if tr.Misses <= t.MaxMisses {
			kept = append(kept, tr)
		}
	}
	t.tracks = kept

	return seen
}

// Get returns the track with the given ID.
func (t *Tracker) Get(id string) (*Track, bool) {
	for _, tr := range t.tracks {
		if tr.ID == id {
			return tr, true
		}
	}
	return nil, false
}

// Closest returns the live track whose face is nearest to the camera.
func (t *Tracker) Closest() (*Track, bool) {
	var best *Track
	area := 0
	for _, tr := range t.tracks {
		if a := tr.Face.Area(); a > area {
			best = tr
			area = a
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Reset drops all tracks.
func (t *Tracker) Reset() {
	t.tracks = nil
}
