package detection

import (
	"image"
	"testing"
)

func TestFace_Area(t *testing.T) {
	tests := []struct {
		name   string
		face   Face
		expect int
	}{
		{
			name:   "small face",
			face:   Face{Box: image.Rect(10, 10, 40, 50)},
			expect: 1200,
		},
		{
			name:   "nearby face",
			face:   Face{Box: image.Rect(100, 80, 200, 190)},
			expect: 11000,
		},
		{
			name:   "degenerate box",
			face:   Face{Box: image.Rect(5, 5, 5, 5)},
			expect: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.face.Area(); got != tc.expect {
				t.Errorf("Area: got %d, want %d", got, tc.expect)
			}
		})
	}
}

func TestClosestFace(t *testing.T) {
	faces := []Face{
		{Box: image.Rect(0, 0, 20, 20)},
		{Box: image.Rect(50, 50, 150, 160)},
		{Box: image.Rect(200, 200, 240, 250)},
	}

	if got := ClosestFace(faces); got != 1 {
		t.Errorf("ClosestFace: got %d, want 1", got)
	}

	if got := ClosestFace(nil); got != -1 {
		t.Errorf("ClosestFace on empty input: got %d, want -1", got)
	}
}

func TestIoU(t *testing.T) {
	tests := []struct {
		name   string
		a, b   image.Rectangle
		expect float64
	}{
		{
			name:   "identical boxes",
			a:      image.Rect(0, 0, 10, 10),
			b:      image.Rect(0, 0, 10, 10),
			expect: 1.0,
		},
		{
			name:   "disjoint boxes",
			a:      image.Rect(0, 0, 10, 10),
			b:      image.Rect(20, 20, 30, 30),
			expect: 0.0,
		},
		{
			name:   "half overlap",
			a:      image.Rect(0, 0, 10, 10),
			b:      image.Rect(0, 5, 10, 15),
			expect: 50.0 / 150.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IoU(tc.a, tc.b); got != tc.expect {
				t.Errorf("IoU: got %v, want %v", got, tc.expect)
			}
		})
	}
}
