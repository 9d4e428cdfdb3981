// Automatically generated from the message definition "vision_service/wakeupResponse.msg"
package vision_service

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgWakeupResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgWakeupResponse) Text() string {
	return t.text
}

func (t *_MsgWakeupResponse) Name() string {
	return t.name
}

func (t *_MsgWakeupResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgWakeupResponse) NewMessage() ros.Message {
	m := new(WakeupResponse)
	m.Awake = false
	m.FaceNearby = false
	return m
}

var (
	MsgWakeupResponse = &_MsgWakeupResponse{
		`
bool awake
bool face_nearby
`,
		"vision_service/wakeupResponse",
		"f7c482ee46f3582845839516296e30d2",
	}
)

type WakeupResponse struct {
	Awake      bool `rosmsg:"awake:bool"`
	FaceNearby bool `rosmsg:"face_nearby:bool"`
}

func (m *WakeupResponse) Type() ros.MessageType {
	return MsgWakeupResponse
}

func (m *WakeupResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Awake)
	binary.Write(buf, binary.LittleEndian, m.FaceNearby)
	return err
}

func (m *WakeupResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Awake); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.FaceNearby); err != nil {
		return err
	}
	return err
}
