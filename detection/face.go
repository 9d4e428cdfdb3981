// Package detection implements the camera side of the vision service:
// face detection, proximity checks and frame-to-frame tracking.
package detection

import (
	"image"
)

// AlignedSize is the side length of the square crop fed to the face embedder.
const AlignedSize = 160

// NumLandmarks is the number of facial keypoints reported per face:
// both eyes, nose tip and both mouth corners.
const NumLandmarks = 5

// Face is a single detection in pixel coordinates of the source frame.
type Face struct {
	Box        image.Rectangle
	Landmarks  [NumLandmarks]image.Point
	Confidence float32
}

// Area returns the bounding box area in pixels. The pipeline uses it as a
// proximity measure until depth data is wired in.
func (f *Face) Area() int {
	return f.Box.Dx() * f.Box.Dy()
}

// Center returns the middle of the bounding box.
func (f *Face) Center() image.Point {
	return image.Pt(f.Box.Min.X+f.Box.Dx()/2, f.Box.Min.Y+f.Box.Dy()/2)
}

// ClosestFace returns the index of the face nearest to the camera, judged by
// bounding box size. Returns -1 when faces is empty.
func ClosestFace(faces []Face) int {
	maxID := -1
	faceArea := 0
	for i := range faces {
		if a := faces[i].Area(); a > faceArea {
			maxID = i
			faceArea = a
		}
	}
	return maxID
}

// IoU returns the intersection-over-union of two rectangles.
func IoU(a, b image.Rectangle) float64 {
	inter := a.Intersect(b)
	if inter.Empty() {
		return 0.0
	}
	interArea := inter.Dx() * inter.Dy()
	union := a.Dx()*a.Dy() + b.Dx()*b.Dy() - interArea
	if union <= 0 {
		return 0.0
	}
	return float64(interArea) / float64(union)
}
