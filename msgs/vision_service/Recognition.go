// Automatically generated from the message definition "vision_service/recognition.srv"
package vision_service

import (
	"github.com/edwinhayes/rosgo/ros"
)

// Service type metadata
type _SrvRecognition struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvRecognition) Name() string                  { return t.name }
func (t *_SrvRecognition) MD5Sum() string                { return t.md5sum }
func (t *_SrvRecognition) Text() string                  { return t.text }
func (t *_SrvRecognition) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvRecognition) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvRecognition) NewService() ros.Service {
	return new(Recognition)
}

var (
	SrvRecognition = &_SrvRecognition{
		"vision_service/recognition",
		"4be9b33e0097ff0719e0e494f3fa354c",
		`string track_id
---
string name
float32 confidence
`,
		MsgRecognitionRequest,
		MsgRecognitionResponse,
	}
)

type Recognition struct {
	Request  RecognitionRequest
	Response RecognitionResponse
}

func (s *Recognition) ReqMessage() ros.Message { return &s.Request }
func (s *Recognition) ResMessage() ros.Message { return &s.Response }
