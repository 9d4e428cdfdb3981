package detection

import (
	"image"
	"testing"
)

func nearbyFace() []Face {
	// 100x100 box, well above the default 1500 px^2 threshold.
	return []Face{{Box: image.Rect(0, 0, 100, 100)}}
}

func distantFace() []Face {
	// 20x20 box, below the threshold.
	return []Face{{Box: image.Rect(0, 0, 20, 20)}}
}

func TestPresence_NearbyFace(t *testing.T) {
	p := NewPresence(0, 0)

	if p.Nearby() {
		t.Error("nearby before any observation")
	}

	if !p.Observe(nearbyFace()) {
		t.Error("large face did not trigger presence")
	}

	if p.Observe(distantFace()) != true {
		t.Error("presence dropped after a single miss")
	}
}

func TestPresence_DistantFaceNeverTriggers(t *testing.T) {
	p := NewPresence(0, 0)

	for i := 0; i < 10; i++ {
		if p.Observe(distantFace()) {
			t.Fatal("distant face triggered presence")
		}
	}
}

func TestPresence_Hysteresis(t *testing.T) {
	p := NewPresence(0, 0)
	p.Observe(nearbyFace())

	// Default miss limit is 3; presence must survive exactly that many
	// empty frames and drop on the next one.
	for i := 0; i < DefaultMissLimit; i++ {
		if !p.Observe(nil) {
			t.Fatalf("presence dropped after %d misses", i+1)
		}
	}
	if p.Observe(nil) {
		t.Error("presence not dropped after exceeding miss limit")
	}
}

func TestPresence_RecoverResetsMisses(t *testing.T) {
	p := NewPresence(0, 0)
	p.Observe(nearbyFace())
	p.Observe(nil)
	p.Observe(nil)
	p.Observe(nearbyFace())

	for i := 0; i < DefaultMissLimit; i++ {
		if !p.Observe(nil) {
			t.Fatal("miss counter was not reset by a nearby face")
		}
	}
}

func TestPresence_Reset(t *testing.T) {
	p := NewPresence(0, 0)
	p.Observe(nearbyFace())
	p.Reset()

	if p.Nearby() {
		t.Error("nearby after reset")
	}
}
