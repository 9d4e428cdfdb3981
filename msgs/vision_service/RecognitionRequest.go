// Automatically generated from the message definition "vision_service/recognitionRequest.msg"
package vision_service

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgRecognitionRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgRecognitionRequest) Text() string {
	return t.text
}

func (t *_MsgRecognitionRequest) Name() string {
	return t.name
}

func (t *_MsgRecognitionRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgRecognitionRequest) NewMessage() ros.Message {
	m := new(RecognitionRequest)
	m.TrackId = ""
	return m
}

var (
	MsgRecognitionRequest = &_MsgRecognitionRequest{
		`string track_id
`,
		"vision_service/recognitionRequest",
		"077801c52fdaeaa1193d47f5eb3d1962",
	}
)

type RecognitionRequest struct {
	TrackId string `rosmsg:"track_id:string"`
}

func (m *RecognitionRequest) Type() ros.MessageType {
	return MsgRecognitionRequest
}

func (m *RecognitionRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.TrackId))))
	buf.Write([]byte(m.TrackId))
	return err
}

func (m *RecognitionRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
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
	return err
}
