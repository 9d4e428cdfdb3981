// Package vision_service is automatically generated from the message definition "vision_service/vision_object.msg"
package vision_service

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/edwinhayes/vision_service/msgs/geometry_msgs"
	"github.com/edwinhayes/vision_service/msgs/std_msgs"
)

type _MsgVisionObject struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgVisionObject) Text() string {
	return t.text
}

func (t *_MsgVisionObject) Name() string {
	return t.name
}

func (t *_MsgVisionObject) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgVisionObject) NewMessage() ros.Message {
	m := new(VisionObject)
	m.Header = std_msgs.Header{}
	m.TrackId = ""
	m.TopLeft = geometry_msgs.Point32{}
	m.BottomRight = geometry_msgs.Point32{}
	for i := 0; i < 5; i++ {
		m.Landmarks[i] = geometry_msgs.Point32{}
	}
	m.Pose = geometry_msgs.Pose{}
	m.Area = 0.0
	m.Confidence = 0.0
	return m
}

var (
	MsgVisionObject = &_MsgVisionObject{
		`# A face detected by the vision pipeline, in camera pixel coordinates.
Header header
string track_id
geometry_msgs/Point32 top_left
geometry_msgs/Point32 bottom_right
geometry_msgs/Point32[5] landmarks
geometry_msgs/Pose pose
float32 area
float32 confidence
`,
		"vision_service/vision_object",
		"d57bfc9a355e45a279b12b545e1829dd",
	}
)

type VisionObject struct {
	Header      std_msgs.Header          `rosmsg:"header:Header"`
	TrackId     string                   `rosmsg:"track_id:string"`
	TopLeft     geometry_msgs.Point32    `rosmsg:"top_left:Point32"`
	BottomRight geometry_msgs.Point32    `rosmsg:"bottom_right:Point32"`
	Landmarks   [5]geometry_msgs.Point32 `rosmsg:"landmarks:Point32[5]"`
	Pose        geometry_msgs.Pose       `rosmsg:"pose:Pose"`
	Area        float32                  `rosmsg:"area:float32"`
	Confidence  float32                  `rosmsg:"confidence:float32"`
}

func (m *VisionObject) Type() ros.MessageType {
	return MsgVisionObject
}

func (m *VisionObject) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.TrackId))))
	buf.Write([]byte(m.TrackId))
	if err = m.TopLeft.Serialize(buf); err != nil {
		return err
	}
	if err = m.BottomRight.Serialize(buf); err != nil {
		return err
	}
	for i := range m.Landmarks {
		if err = m.Landmarks[i].Serialize(buf); err != nil {
			return err
		}
	}
	if err = m.Pose.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.Area)
	binary.Write(buf, binary.LittleEndian, m.Confidence)
	return err
}

func (m *VisionObject) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.TrackId = string(data)
	}
	if err = m.TopLeft.Deserialize(buf); err != nil {
		return err
	}
	if err = m.BottomRight.Deserialize(buf); err != nil {
		return err
	}
	for i := range m.Landmarks {
		if err = m.Landmarks[i].Deserialize(buf); err != nil {
			return err
		}
	}
	if err = m.Pose.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Area); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Confidence); err != nil {
		return err
	}
	return err
}
