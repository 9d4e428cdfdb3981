// Package node wires the detection pipeline and the recognition backends
// into a ROS node exposing the vision_service topics and services.
package node

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Recognizer backends.
const (
	BackendFacenet = "facenet"
	BackendBridge  = "bridge"
)

type CameraConfig struct {
	DeviceID int `yaml:"device_id"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

type DetectorConfig struct {
	ModelPath      string  `yaml:"model_path"`
	ScoreThreshold float32 `yaml:"score_threshold"`
	NMSThreshold   float32 `yaml:"nms_threshold"`
	ResizeFactor   float64 `yaml:"resize_factor"`
}

type PresenceConfig struct {
	AreaThreshold int `yaml:"area_threshold"`
	MissLimit     int `yaml:"miss_limit"`
}

type TrackerConfig struct {
	MinIoU    float64 `yaml:"min_iou"`
	MaxMisses int     `yaml:"max_misses"`
}

type RecognizerConfig struct {
	Backend         string  `yaml:"backend"`
	ModelPath       string  `yaml:"model_path"`
	GalleryPath     string  `yaml:"gallery_path"`
	SimilarityFloor float32 `yaml:"similarity_floor"`
	// Bridge backend: exchange directory shared with the external
	// recognizer process. Defaults to $VISION_COMM_PATH.
	BridgeDir     string `yaml:"bridge_dir"`
	BridgePoll    string `yaml:"bridge_poll"`
	BridgeTimeout string `yaml:"bridge_timeout"`
}

// Config is the vision_service node configuration.
type Config struct {
	NodeName           string  `yaml:"node_name"`
	Topic              string  `yaml:"topic"`
	WakeupService      string  `yaml:"wakeup_service"`
	RecognitionService string  `yaml:"recognition_service"`
	FrameId            string  `yaml:"frame_id"`
	RateHz             float64 `yaml:"rate_hz"`
	// StartAwake runs detection from startup instead of waiting for a
	// wakeup call.
	StartAwake bool `yaml:"start_awake"`
	// Display opens a debug window with annotated frames.
	Display bool `yaml:"display"`

	Camera     CameraConfig     `yaml:"camera"`
	Detector   DetectorConfig   `yaml:"detector"`
	Presence   PresenceConfig   `yaml:"presence"`
	Tracker    TrackerConfig    `yaml:"tracker"`
	Recognizer RecognizerConfig `yaml:"recognizer"`
}

func DefaultConfig() Config {
	return Config{
		NodeName:           "/vision_service",
		Topic:              "/vision_service/faces",
		WakeupService:      "/wakeup",
		RecognitionService: "/recognize_face",
		FrameId:            "camera_color_optical_frame",
		RateHz:             30.0,
		StartAwake:         true,
		Camera: CameraConfig{
			DeviceID: 0,
			Width:    640,
			Height:   480,
		},
		Detector: DetectorConfig{
			ModelPath:      "models/face_detection_yunet.onnx",
			ScoreThreshold: 0.8,
			NMSThreshold:   0.3,
			ResizeFactor:   0.5,
		},
		Presence: PresenceConfig{
			AreaThreshold: 1500,
			MissLimit:     3,
		},
		Tracker: TrackerConfig{
			MinIoU:    0.3,
			MaxMisses: 3,
		},
		Recognizer: RecognizerConfig{
			Backend:         BackendFacenet,
			ModelPath:       "models/facenet.onnx",
			GalleryPath:     "models/gallery.json",
			SimilarityFloor: 0.5,
			BridgeDir:       os.Getenv("VISION_COMM_PATH"),
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Recognizer.Backend {
	case BackendFacenet, BackendBridge:
	default:
		return errors.Errorf("unknown recognizer backend %q", c.Recognizer.Backend)
	}
	if c.RateHz <= 0 {
		return errors.Errorf("rate_hz must be positive, got %v", c.RateHz)
	}
	if _, err := c.Recognizer.pollInterval(); err != nil {
		return err
	}
	if _, err := c.Recognizer.timeout(); err != nil {
		return err
	}
	return nil
}

func (r *RecognizerConfig) pollInterval() (time.Duration, error) {
	if r.BridgePoll == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.BridgePoll)
	if err != nil {
		return 0, errors.Wrap(err, "bridge_poll")
	}
	return d, nil
}

func (r *RecognizerConfig) timeout() (time.Duration, error) {
	if r.BridgeTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.BridgeTimeout)
	if err != nil {
		return 0, errors.Wrap(err, "bridge_timeout")
	}
	return d, nil
}
