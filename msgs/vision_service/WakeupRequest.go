// Automatically generated from the message definition "vision_service/wakeupRequest.msg"
package vision_service

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgWakeupRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgWakeupRequest) Text() string {
	return t.text
}

func (t *_MsgWakeupRequest) Name() string {
	return t.name
}

func (t *_MsgWakeupRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgWakeupRequest) NewMessage() ros.Message {
	m := new(WakeupRequest)
	m.Enable = false
	return m
}

var (
	MsgWakeupRequest = &_MsgWakeupRequest{
		`bool enable
`,
		"vision_service/wakeupRequest",
		"8c1211af706069c994c06e00eb59ac9e",
	}
)

type WakeupRequest struct {
	Enable bool `rosmsg:"enable:bool"`
}

func (m *WakeupRequest) Type() ros.MessageType {
	return MsgWakeupRequest
}

func (m *WakeupRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Enable)
	return err
}

func (m *WakeupRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Enable); err != nil {
		return err
	}
	return err
}
