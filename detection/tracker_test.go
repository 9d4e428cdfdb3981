package detection

import (
	"image"
	"testing"
)

func TestTracker_StableID(t *testing.T) {
	tr := NewTracker(0, 0)

	first := tr.Update([]Face{{Box: image.Rect(100, 100, 200, 200)}})
	if len(first) != 1 {
		t.Fatalf("expected 1 track, got %d", len(first))
	}
	if first[0].ID == "" {
		t.Fatal("track has no ID")
	}

	// Same face moved slightly; must keep its ID.
	second := tr.Update([]Face{{Box: image.Rect(110, 105, 210, 205)}})
	if len(second) != 1 {
		t.Fatalf("expected 1 track, got %d", len(second))
	}
	if second[0].ID != first[0].ID {
		t.Errorf("track ID changed: %s -> %s", first[0].ID, second[0].ID)
	}
}

func TestTracker_NewFaceOpensTrack(t *testing.T) {
	tr := NewTracker(0, 0)

	tr.Update([]Face{{Box: image.Rect(0, 0, 50, 50)}})
	seen := tr.Update([]Face{
		{Box: image.Rect(0, 0, 50, 50)},
		{Box: image.Rect(300, 300, 360, 370)},
	})

	if len(seen) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(seen))
	}
	if seen[0].ID == seen[1].ID {
		t.Error("distinct faces share a track ID")
	}
}

func TestTracker_CoastAndDrop(t *testing.T) {
	tr := NewTracker(0, 0)

	seen := tr.Update([]Face{{Box: image.Rect(100, 100, 200, 200)}})
	id := seen[0].ID

	// The track coasts through missed frames up to the limit.
	for i := 0; i < DefaultMaxMisses; i++ {
		tr.Update(nil)
		if _, ok := tr.Get(id); !ok {
			t.Fatalf("track dropped after %d misses", i+1)
		}
	}

	tr.Update(nil)
	if _, ok := tr.Get(id); ok {
		t.Error("track survived past the miss limit")
	}
}

func TestTracker_ReacquireKeepsID(t *testing.T) {
	tr := NewTracker(0, 0)

	seen := tr.Update([]Face{{Box: image.Rect(100, 100, 200, 200)}})
	id := seen[0].ID

	tr.Update(nil)
	seen = tr.Update([]Face{{Box: image.Rect(100, 100, 200, 200)}})

	if len(seen) != 1 || seen[0].ID != id {
		t.Error("track not reacquired after a missed frame")
	}
}

func TestTracker_Closest(t *testing.T) {
	tr := NewTracker(0, 0)

	if _, ok := tr.Closest(); ok {
		t.Error("closest track reported on empty tracker")
	}

	seen := tr.Update([]Face{
		{Box: image.Rect(0, 0, 30, 30)},
		{Box: image.Rect(100, 100, 250, 260)},
	})

	closest, ok := tr.Closest()
	if !ok {
		t.Fatal("no closest track")
	}
	if closest.ID != seen[1].ID {
		t.Error("closest track is not the largest face")
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(0, 0)
	seen := tr.Update([]Face{{Box: image.Rect(0, 0, 50, 50)}})
	tr.Reset()

	if _, ok := tr.Get(seen[0].ID); ok {
		t.Error("track survived reset")
	}
}
