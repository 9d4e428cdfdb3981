package detection

import (
	"image"
	"os"
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Config holds face detector settings.
type Config struct {
	ModelPath      string
	ScoreThreshold float32
	NMSThreshold   float32
	TopK           int
	InputWidth     int
	InputHeight    int
	// Frames are downscaled by ResizeFactor before inference and boxes
	// scaled back, to keep the loop realtime.
	ResizeFactor float64
}

// DefaultConfig returns production defaults for the YuNet face detector.
func DefaultConfig() Config {
	return Config{
		ModelPath:      "models/face_detection_yunet.onnx",
		ScoreThreshold: 0.8,
		NMSThreshold:   0.3,
		TopK:           5000,
		InputWidth:     320,
		InputHeight:    320,
		ResizeFactor:   0.5,
	}
}

// Detector finds faces in a frame.
type Detector interface {
	Detect(img gocv.Mat) ([]Face, error)
	Close() error
}

// YuNet detects faces with OpenCV's FaceDetectorYN. It reports a bounding
// box, five landmarks and a score per face, the same shape of output the
// original MTCNN stage produced.
type YuNet struct {
	detector gocv.FaceDetectorYN
	config   Config
	mu       sync.Mutex // protects inference
}

func NewYuNet(cfg Config) (*YuNet, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, errors.Wrapf(err, "face detector model %s", cfg.ModelPath)
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"",
		image.Pt(cfg.InputWidth, cfg.InputHeight),
		cfg.ScoreThreshold,
		cfg.NMSThreshold,
		cfg.TopK,
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	return &YuNet{detector: detector, config: cfg}, nil
}

// Detect runs face detection on one frame. Coordinates of the returned
// faces are in the pixel space of img regardless of ResizeFactor.
func (d *YuNet) Detect(img gocv.Mat) ([]Face, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if img.Empty() {
		return nil, errors.New("empty frame")
	}

	work := img
	scale := 1.0
	if f := d.config.ResizeFactor; f > 0 && f != 1.0 {
		small := gocv.NewMat()
		defer small.Close()
		gocv.Resize(img, &small, image.Point{}, f, f, gocv.InterpolationLinear)
		work = small
		scale = 1.0 / f
	}

	d.detector.SetInputSize(image.Pt(work.Cols(), work.Rows()))

	out := gocv.NewMat()
	defer out.Close()
	d.detector.Detect(work, &out)

	// Each row: x, y, w, h, then five landmark x,y pairs, then the score.
	var faces []Face
	for r := 0; r < out.Rows(); r++ {
		x := float64(out.GetFloatAt(r, 0)) * scale
		y := float64(out.GetFloatAt(r, 1)) * scale
		w := float64(out.GetFloatAt(r, 2)) * scale
		h := float64(out.GetFloatAt(r, 3)) * scale

		face := Face{
			Box:        image.Rect(int(x), int(y), int(x+w), int(y+h)),
			Confidence: out.GetFloatAt(r, 14),
		}
		for p := 0; p < NumLandmarks; p++ {
			px := float64(out.GetFloatAt(r, 4+2*p)) * scale
			py := float64(out.GetFloatAt(r, 5+2*p)) * scale
			face.Landmarks[p] = image.Pt(int(px), int(py))
		}
		faces = append(faces, face)
	}

	return faces, nil
}

func (d *YuNet) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}

// Align crops the face region out of the frame and scales it to the square
// input size the embedder expects. The caller owns the returned Mat.
func Align(img gocv.Mat, face Face) (gocv.Mat, error) {
	bounds := image.Rect(0, 0, img.Cols(), img.Rows())
	box := face.Box.Intersect(bounds)
	if box.Empty() {
		return gocv.Mat{}, errors.New("face region outside frame")
	}

	region := img.Region(box)
	defer region.Close()

	aligned := gocv.NewMat()
	gocv.Resize(region, &aligned, image.Pt(AlignedSize, AlignedSize), 0, 0, gocv.InterpolationLinear)
	return aligned, nil
}
