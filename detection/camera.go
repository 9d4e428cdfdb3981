package detection

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// CameraConfig selects the capture device and frame size.
type CameraConfig struct {
	DeviceID int
	Width    int
	Height   int
}

// Camera wraps a gocv capture device as the pipeline's frame source.
type Camera struct {
	cap *gocv.VideoCapture
}

func OpenCamera(cfg CameraConfig) (*Camera, error) {
	cap, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, errors.Wrapf(err, "open capture device %d", cfg.DeviceID)
	}
	if cfg.Width > 0 {
		cap.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	}
	if cfg.Height > 0 {
		cap.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	}
	return &Camera{cap: cap}, nil
}

// Read grabs the next frame into dst.
func (c *Camera) Read(dst *gocv.Mat) error {
	if ok := c.cap.Read(dst); !ok {
		return errors.New("capture device closed")
	}
	if dst.Empty() {
		return errors.New("empty frame from capture device")
	}
	return nil
}

func (c *Camera) Close() error {
	return c.cap.Close()
}
