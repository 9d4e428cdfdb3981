package vision_service

import (
	"bytes"
	"testing"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/edwinhayes/vision_service/msgs/geometry_msgs"
)

func CheckBytes(t *testing.T, a, b []byte) {
	if !bytes.Equal(a, b) {
		if len(a) != len(b) {
			t.Errorf("expected length is %d but %d", len(a), len(b))
		} else {
			for i := 0; i < len(a); i++ {
				if a[i] != b[i] {
					t.Errorf("result[%3d] is expected to be %02X but %02X", i, a[i], b[i])
				}
			}
		}
	}
}

func TestInitializeVisionObject(t *testing.T) {
	msg := MsgVisionObject.NewMessage().(*VisionObject)

	if msg.TrackId != "" {
		t.Error(msg.TrackId)
	}

	if msg.TopLeft.X != 0.0 || msg.TopLeft.Y != 0.0 || msg.TopLeft.Z != 0.0 {
		t.Error(msg.TopLeft)
	}

	if msg.BottomRight.X != 0.0 || msg.BottomRight.Y != 0.0 || msg.BottomRight.Z != 0.0 {
		t.Error(msg.BottomRight)
	}

	if len(msg.Landmarks) != 5 {
		t.Error(msg.Landmarks)
	}

	if msg.Area != 0.0 || msg.Confidence != 0.0 {
		t.Error(msg.Area, msg.Confidence)
	}
}

func TestSerializeWakeupRequest(t *testing.T) {
	var msg WakeupRequest
	msg.Enable = true
	var buf bytes.Buffer
	err := msg.Serialize(&buf)
	if err != nil {
		t.Error(err)
	}
	result := buf.Bytes()
	expected := []byte{
		0x01,
	}
	CheckBytes(t, expected, result)
}

func TestSerializeWakeupResponse(t *testing.T) {
	var msg WakeupResponse
	msg.Awake = true
	msg.FaceNearby = false
	var buf bytes.Buffer
	err := msg.Serialize(&buf)
	if err != nil {
		t.Error(err)
	}
	result := buf.Bytes()
	expected := []byte{
		// WakeupResponse.Awake
		0x01,
		// WakeupResponse.FaceNearby
		0x00,
	}
	CheckBytes(t, expected, result)
}

func TestSerializeRecognitionRequest(t *testing.T) {
	var msg RecognitionRequest
	msg.TrackId = "face_01"
	var buf bytes.Buffer
	err := msg.Serialize(&buf)
	if err != nil {
		t.Error(err)
	}
	result := buf.Bytes()
	expected := []byte{
		// RecognitionRequest.TrackId
		0x07, 0x00, 0x00, 0x00,
		0x66, 0x61, 0x63, 0x65, 0x5F, 0x30, 0x31,
	}
	CheckBytes(t, expected, result)
}

func TestSerializeRecognitionResponse(t *testing.T) {
	var msg RecognitionResponse
	msg.Name = "alice"
	msg.Confidence = 0.75
	var buf bytes.Buffer
	err := msg.Serialize(&buf)
	if err != nil {
		t.Error(err)
	}
	result := buf.Bytes()
	expected := []byte{
		// RecognitionResponse.Name
		0x05, 0x00, 0x00, 0x00,
		0x61, 0x6C, 0x69, 0x63, 0x65,
		// RecognitionResponse.Confidence (0.75)
		0x00, 0x00, 0x40, 0x3F,
	}
	CheckBytes(t, expected, result)
}

func TestDeserializeWakeupResponse(t *testing.T) {
	data := []byte{0x01, 0x01}
	var msg WakeupResponse
	reader := bytes.NewReader(data)
	if err := msg.Deserialize(reader); err != nil {
		t.Error(err)
	}
	if !msg.Awake {
		t.Error(msg.Awake)
	}
	if !msg.FaceNearby {
		t.Error(msg.FaceNearby)
	}
}

func TestRoundTripVisionObject(t *testing.T) {
	var msg VisionObject
	msg.Header.Seq = 42
	msg.Header.Stamp = ros.NewTime(1234567890, 987654321)
	msg.Header.FrameId = "camera_color_optical_frame"
	msg.TrackId = "7b94170d-6325-4a05-a281-b561d1a8a590"
	msg.TopLeft = geometry_msgs.Point32{X: 120, Y: 80, Z: 0}
	msg.BottomRight = geometry_msgs.Point32{X: 200, Y: 190, Z: 0}
	for i := range msg.Landmarks {
		msg.Landmarks[i] = geometry_msgs.Point32{X: float32(130 + 10*i), Y: float32(100 + 5*i), Z: 0}
	}
	msg.Pose.Position = geometry_msgs.Point{X: 0.1, Y: -0.05, Z: 1.5}
	msg.Pose.Orientation = geometry_msgs.Quaternion{X: 0, Y: 0, Z: 0, W: 1}
	msg.Area = 8800
	msg.Confidence = 0.93

	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		t.Error(err)
	}

	var out VisionObject
	reader := bytes.NewReader(buf.Bytes())
	if err := out.Deserialize(reader); err != nil {
		t.Error(err)
	}

	if out != msg {
		t.Errorf("round trip mismatch:\n%v\n%v", msg, out)
	}

	if reader.Len() != 0 {
		t.Errorf("%d bytes left after deserialization", reader.Len())
	}
}

func TestRoundTripWakeup(t *testing.T) {
	var srv Wakeup
	srv.Request.Enable = true
	srv.Response.Awake = true
	srv.Response.FaceNearby = true

	var buf bytes.Buffer
	if err := srv.Request.Serialize(&buf); err != nil {
		t.Error(err)
	}
	if err := srv.Response.Serialize(&buf); err != nil {
		t.Error(err)
	}

	var out Wakeup
	reader := bytes.NewReader(buf.Bytes())
	if err := out.Request.Deserialize(reader); err != nil {
		t.Error(err)
	}
	if err := out.Response.Deserialize(reader); err != nil {
		t.Error(err)
	}

	if out.Request != srv.Request || out.Response != srv.Response {
		t.Errorf("round trip mismatch:\n%v\n%v", srv, out)
	}
}

func TestRoundTripRecognition(t *testing.T) {
	var srv Recognition
	srv.Request.TrackId = "closest"
	srv.Response.Name = "bob"
	srv.Response.Confidence = 0.5

	var buf bytes.Buffer
	if err := srv.Request.Serialize(&buf); err != nil {
		t.Error(err)
	}
	if err := srv.Response.Serialize(&buf); err != nil {
		t.Error(err)
	}

	var out Recognition
	reader := bytes.NewReader(buf.Bytes())
	if err := out.Request.Deserialize(reader); err != nil {
		t.Error(err)
	}
	if err := out.Response.Deserialize(reader); err != nil {
		t.Error(err)
	}

	if out.Request != srv.Request || out.Response != srv.Response {
		t.Errorf("round trip mismatch:\n%v\n%v", srv, out)
	}
}

func TestServiceTypes(t *testing.T) {
	if SrvWakeup.RequestType() != MsgWakeupRequest {
		t.Error("wakeup request type mismatch")
	}
	if SrvWakeup.ResponseType() != MsgWakeupResponse {
		t.Error("wakeup response type mismatch")
	}
	if SrvRecognition.RequestType() != MsgRecognitionRequest {
		t.Error("recognition request type mismatch")
	}
	if SrvRecognition.ResponseType() != MsgRecognitionResponse {
		t.Error("recognition response type mismatch")
	}

	wakeup := SrvWakeup.NewService().(*Wakeup)
	if wakeup.ReqMessage() != &wakeup.Request || wakeup.ResMessage() != &wakeup.Response {
		t.Error("wakeup service messages not wired")
	}
	recog := SrvRecognition.NewService().(*Recognition)
	if recog.ReqMessage() != &recog.Request || recog.ResMessage() != &recog.Response {
		t.Error("recognition service messages not wired")
	}
}
