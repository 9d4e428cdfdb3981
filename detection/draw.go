package detection

import (
	"image/color"

	"gocv.io/x/gocv"
)

var annotationColor = color.RGBA{0, 255, 0, 0}

// Annotate draws bounding boxes and landmark points onto the frame, for the
// optional debug window.
func Annotate(img *gocv.Mat, faces []Face) {
	for i := range faces {
		gocv.Rectangle(img, faces[i].Box, annotationColor, 2)
		for _, p := range faces[i].Landmarks {
			gocv.Circle(img, p, 3, annotationColor, -1)
		}
	}
}
