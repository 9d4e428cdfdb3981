package detection

// Presence decides whether a face is close enough to interact with. A face
// counts as nearby when its bounding box area exceeds AreaThreshold; the
// nearby state is only dropped after MissLimit consecutive frames without
// such a face, so single missed detections do not flap the state.
type Presence struct {
	AreaThreshold int
	MissLimit     int

	nearby bool
	misses int
}

// Default thresholds: an area of 1500 px^2 on a half-resolution 320x240
// frame corresponds to roughly 1.5m distance.
const (
	DefaultAreaThreshold = 1500
	DefaultMissLimit     = 3
)

func NewPresence(areaThreshold, missLimit int) *Presence {
	if areaThreshold <= 0 {
		areaThreshold = DefaultAreaThreshold
	}
	if missLimit <= 0 {
		missLimit = DefaultMissLimit
	}
	return &Presence{AreaThreshold: areaThreshold, MissLimit: missLimit}
}

// Observe updates the presence state with one frame worth of detections and
// reports the new state.
func (p *Presence) Observe(faces []Face) bool {
	faceArea := 0
	for i := range faces {
		if a := faces[i].Area(); a > faceArea {
			faceArea = a
		}
	}
	if faceArea > p.AreaThreshold {
		p.nearby = true
		p.misses = 0
		return p.nearby
	}
	p.misses++
	if p.misses > p.MissLimit {
		p.nearby = false
	}
	return p.nearby
}

// Nearby reports the current state without observing a frame.
func (p *Presence) Nearby() bool {
	return p.nearby
}

// Reset clears the state, e.g. when detection is switched off.
func (p *Presence) Reset() {
	p.nearby = false
	p.misses = 0
}
