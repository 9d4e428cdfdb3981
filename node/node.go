package node

import (
	"math"
	"os"
	"sync"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/edwinhayes/vision_service/detection"
	"github.com/edwinhayes/vision_service/msgs/geometry_msgs"
	"github.com/edwinhayes/vision_service/msgs/vision_service"
	"github.com/edwinhayes/vision_service/recognition"
)

// reference distance in meters for a face whose bounding box area is at the
// presence threshold; used as a distance proxy until depth is wired in.
const referenceDistance = 1.5

// VisionNode runs the detection loop and serves the wakeup and recognition
// services over ROS.
type VisionNode struct {
	cfg    Config
	logger *modular.ModuleLogger

	node      ros.Node
	pub       ros.Publisher
	wakeupSrv ros.ServiceServer
	recogSrv  ros.ServiceServer

	camera     *detection.Camera
	detector   detection.Detector
	recognizer recognition.Recognizer

	// shared with the service handler goroutines
	mu       sync.Mutex
	tracker  *detection.Tracker
	presence *detection.Presence
	frame    gocv.Mat
	awake    bool
	seq      uint32

	window *gocv.Window
}

// New builds the node: ROS registration, camera, detector and the configured
// recognizer backend.
func New(cfg Config, logger *modular.ModuleLogger) (*VisionNode, error) {
	v := &VisionNode{
		cfg:      cfg,
		logger:   logger,
		tracker:  detection.NewTracker(cfg.Tracker.MinIoU, cfg.Tracker.MaxMisses),
		presence: detection.NewPresence(cfg.Presence.AreaThreshold, cfg.Presence.MissLimit),
		frame:    gocv.NewMat(),
		awake:    cfg.StartAwake,
	}

	rosNode, err := ros.NewNode(cfg.NodeName, os.Args)
	if err != nil {
		v.Shutdown()
		return nil, errors.Wrap(err, "create node")
	}
	v.node = rosNode

	v.pub = rosNode.NewPublisher(cfg.Topic, vision_service.MsgVisionObject)
	if v.pub == nil {
		v.Shutdown()
		return nil, errors.Errorf("advertise %s", cfg.Topic)
	}

	v.wakeupSrv = rosNode.NewServiceServer(cfg.WakeupService, vision_service.SrvWakeup, v.onWakeup)
	if v.wakeupSrv == nil {
		v.Shutdown()
		return nil, errors.Errorf("register service %s", cfg.WakeupService)
	}

	v.recogSrv = rosNode.NewServiceServer(cfg.RecognitionService, vision_service.SrvRecognition, v.onRecognition)
	if v.recogSrv == nil {
		v.Shutdown()
		return nil, errors.Errorf("register service %s", cfg.RecognitionService)
	}

	v.camera, err = detection.OpenCamera(detection.CameraConfig{
		DeviceID: cfg.Camera.DeviceID,
		Width:    cfg.Camera.Width,
		Height:   cfg.Camera.Height,
	})
	if err != nil {
		v.Shutdown()
		return nil, err
	}

	v.detector, err = detection.NewYuNet(detection.Config{
		ModelPath:      cfg.Detector.ModelPath,
		ScoreThreshold: cfg.Detector.ScoreThreshold,
		NMSThreshold:   cfg.Detector.NMSThreshold,
		TopK:           5000,
		InputWidth:     cfg.Camera.Width,
		InputHeight:    cfg.Camera.Height,
		ResizeFactor:   cfg.Detector.ResizeFactor,
	})
	if err != nil {
		v.Shutdown()
		return nil, err
	}

	v.recognizer, err = buildRecognizer(cfg.Recognizer)
	if err != nil {
		v.Shutdown()
		return nil, err
	}

	if cfg.Display {
		v.window = gocv.NewWindow("detection result")
	}

	return v, nil
}

func buildRecognizer(cfg RecognizerConfig) (recognition.Recognizer, error) {
	switch cfg.Backend {
	case BackendBridge:
		poll, err := cfg.pollInterval()
		if err != nil {
			return nil, err
		}
		timeout, err := cfg.timeout()
		if err != nil {
			return nil, err
		}
		return recognition.NewFileBridge(cfg.BridgeDir, poll, timeout)
	case BackendFacenet:
		embedder, err := recognition.NewFacenet(cfg.ModelPath)
		if err != nil {
			return nil, err
		}
		gallery, err := recognition.LoadGallery(cfg.GalleryPath, cfg.SimilarityFloor)
		if err != nil {
			embedder.Close()
			return nil, err
		}
		return recognition.NewEmbeddingRecognizer(embedder, gallery), nil
	default:
		return nil, errors.Errorf("unknown recognizer backend %q", cfg.Backend)
	}
}

// Run drives the capture-detect-publish loop until the node shuts down.
func (v *VisionNode) Run() error {
	logger := *v.logger
	rate := ros.NewRate(v.cfg.RateHz)
	img := gocv.NewMat()
	defer img.Close()

	logger.Infof("vision_service loop started, publishing on %s", v.cfg.Topic)
	lastNearby := false

	for v.node.OK() {
		v.node.SpinOnce()

		if !v.isAwake() {
			rate.Sleep()
			continue
		}

		if err := v.camera.Read(&img); err != nil {
			logger.Error(err)
			rate.Sleep()
			continue
		}

		faces, err := v.detector.Detect(img)
		if err != nil {
			logger.Error(err)
			rate.Sleep()
			continue
		}

		v.mu.Lock()
		img.CopyTo(&v.frame)
		tracks := v.tracker.Update(faces)
		nearby := v.presence.Observe(faces)
		v.mu.Unlock()

		v.publish(tracks)

		if nearby != lastNearby {
			logger.Infof("face nearby: %v", nearby)
			lastNearby = nearby
		}

		if v.window != nil {
			detection.Annotate(&img, faces)
			v.window.IMShow(img)
			v.window.WaitKey(1)
		}

		rate.Sleep()
	}

	logger.Info("vision_service loop exited")
	return nil
}

func (v *VisionNode) isAwake() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.awake
}

func (v *VisionNode) publish(tracks []*detection.Track) {
	stamp := ros.Now()
	for _, tr := range tracks {
		var msg vision_service.VisionObject
		v.seq++
		msg.Header.Seq = v.seq
		msg.Header.Stamp = stamp
		msg.Header.FrameId = v.cfg.FrameId
		msg.TrackId = tr.ID

		f := tr.Face
		msg.TopLeft = geometry_msgs.Point32{X: float32(f.Box.Min.X), Y: float32(f.Box.Min.Y)}
		msg.BottomRight = geometry_msgs.Point32{X: float32(f.Box.Max.X), Y: float32(f.Box.Max.Y)}
		for i, p := range f.Landmarks {
			msg.Landmarks[i] = geometry_msgs.Point32{X: float32(p.X), Y: float32(p.Y)}
		}
		msg.Pose = v.headPose(f)
		msg.Area = float32(f.Area())
		msg.Confidence = f.Confidence

		v.pub.Publish(&msg)
	}
}

// headPose estimates the face position from the bounding box area: the
// presence threshold area corresponds to the reference distance, and
// apparent size falls off with the square of distance.
func (v *VisionNode) headPose(f detection.Face) geometry_msgs.Pose {
	pose := geometry_msgs.Pose{Orientation: geometry_msgs.Quaternion{W: 1}}
	if a := f.Area(); a > 0 {
		pose.Position.Z = referenceDistance * math.Sqrt(float64(v.presence.AreaThreshold)/float64(a))
	}
	return pose
}

func (v *VisionNode) onWakeup(srv *vision_service.Wakeup) error {
	logger := *v.logger
	v.mu.Lock()
	defer v.mu.Unlock()

	if srv.Request.Enable != v.awake {
		v.awake = srv.Request.Enable
		if !v.awake {
			v.presence.Reset()
			v.tracker.Reset()
		}
		logger.Infof("detection switched %s by wakeup call", stateWord(v.awake))
	}

	srv.Response.Awake = v.awake
	srv.Response.FaceNearby = v.presence.Nearby()
	return nil
}

func stateWord(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (v *VisionNode) onRecognition(srv *vision_service.Recognition) error {
	logger := *v.logger

	v.mu.Lock()
	if !v.awake {
		v.mu.Unlock()
		return errors.New("detection is disabled, call wakeup first")
	}
	var track *detection.Track
	var ok bool
	if srv.Request.TrackId == "" {
		track, ok = v.tracker.Closest()
	} else {
		track, ok = v.tracker.Get(srv.Request.TrackId)
	}
	if !ok {
		v.mu.Unlock()
		return errors.Errorf("no live face track %q", srv.Request.TrackId)
	}
	face := track.Face
	frame := v.frame.Clone()
	v.mu.Unlock()
	defer frame.Close()

	aligned, err := detection.Align(frame, face)
	if err != nil {
		return err
	}
	defer aligned.Close()

	match, err := v.recognizer.Recognize(aligned)
	if err != nil {
		return errors.Wrap(err, "recognize face")
	}

	logger.Infof("classification: %s probability: %v", match.Name, match.Confidence)
	srv.Response.Name = match.Name
	srv.Response.Confidence = match.Confidence
	return nil
}

// Shutdown releases ROS registrations and capture resources. Safe to call
// on a partially constructed node.
func (v *VisionNode) Shutdown() {
	if v.window != nil {
		v.window.Close()
	}
	if v.recognizer != nil {
		v.recognizer.Close()
	}
	if v.detector != nil {
		v.detector.Close()
	}
	if v.camera != nil {
		v.camera.Close()
	}
	if v.recogSrv != nil {
		v.recogSrv.Shutdown()
	}
	if v.wakeupSrv != nil {
		v.wakeupSrv.Shutdown()
	}
	if v.pub != nil {
		v.pub.Shutdown()
	}
	if v.node != nil {
		v.node.Shutdown()
	}
	v.frame.Close()
}
