// Automatically generated from the message definition "vision_service/recognitionResponse.msg"
package vision_service

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgRecognitionResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgRecognitionResponse) Text() string {
	return t.text
}

func (t *_MsgRecognitionResponse) Name() string {
	return t.name
}

func (t *_MsgRecognitionResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgRecognitionResponse) NewMessage() ros.Message {
	m := new(RecognitionResponse)
	m.Name = ""
	m.Confidence = 0.0
	return m
}

var (
	MsgRecognitionResponse = &_MsgRecognitionResponse{
		`
string name
float32 confidence
`,
		"vision_service/recognitionResponse",
		"43915626c9a089a24d29ce388c68e3cd",
	}
)

type RecognitionResponse struct {
	Name       string  `rosmsg:"name:string"`
	Confidence float32 `rosmsg:"confidence:float32"`
}

func (m *RecognitionResponse) Type() ros.MessageType {
	return MsgRecognitionResponse
}

func (m *RecognitionResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Name))))
	buf.Write([]byte(m.Name))
	binary.Write(buf, binary.LittleEndian, m.Confidence)
	return err
}

func (m *RecognitionResponse) Deserialize(buf *bytes.Reader) error {
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
		m.Name = string(data)
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Confidence); err != nil {
		return err
	}
	return err
}
