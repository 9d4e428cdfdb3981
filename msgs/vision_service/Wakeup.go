// Automatically generated from the message definition "vision_service/wakeup.srv"
package vision_service

import (
	"github.com/edwinhayes/rosgo/ros"
)

// Service type metadata
type _SrvWakeup struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvWakeup) Name() string                  { return t.name }
func (t *_SrvWakeup) MD5Sum() string                { return t.md5sum }
func (t *_SrvWakeup) Text() string                  { return t.text }
func (t *_SrvWakeup) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvWakeup) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvWakeup) NewService() ros.Service {
	return new(Wakeup)
}

var (
	SrvWakeup = &_SrvWakeup{
		"vision_service/wakeup",
		"2987bfc276af3ae9657f20e7d74916d2",
		`bool enable
---
bool awake
bool face_nearby
`,
		MsgWakeupRequest,
		MsgWakeupResponse,
	}
)

type Wakeup struct {
	Request  WakeupRequest
	Response WakeupResponse
}

func (s *Wakeup) ReqMessage() ros.Message { return &s.Request }
func (s *Wakeup) ResMessage() ros.Message { return &s.Response }
