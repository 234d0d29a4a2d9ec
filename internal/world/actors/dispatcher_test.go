package actors

import (
	"testing"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
)

func TestDispatcher_注册的请求类型(t *testing.T) {
	d := NewDispatcher()
	for _, req := range []messages.WorldMessage{
		&messages.HWSnapshot{},
		&messages.HWOrder{},
		&messages.HWHitTest{},
		&messages.HWStep{},
	} {
		if !d.Handles(req) {
			t.Fatalf("期望 %T 已注册", req)
		}
	}
	// 开局与结束由 WorldActor 自己处理，不走 dispatcher
	for _, req := range []messages.WorldMessage{&messages.HWStartMatch{}, &messages.HWStopMatch{}, nil} {
		if d.Handles(req) {
			t.Fatalf("期望 %T 未注册", req)
		}
	}
}
