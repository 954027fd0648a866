package ectp

import (
	"bytes"
	"net"
	"testing"
)

func TestSetForwardMessage(t *testing.T) {
	addr := net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}
	msg := make([]byte, FwdMsgSize)
	SetForwardMessage(msg, addr)

	if got := MessageType(msg); got != MsgTypeForward {
		t.Fatalf("function code: got %d want %d", got, MsgTypeForward)
	}
	if !bytes.Equal(ForwardAddr(msg), addr) {
		t.Fatalf("forward address: got %v want %v", ForwardAddr(msg), addr)
	}
	// addresses cross the wire as raw bytes, in order
	if !bytes.Equal(msg[fwdAddrOff:], addr) {
		t.Fatalf("address bytes not raw-copied: %x", msg[fwdAddrOff:])
	}
}

func TestForwardAddrReturnsCopy(t *testing.T) {
	msg := make([]byte, FwdMsgSize)
	SetForwardMessage(msg, net.HardwareAddr{0x02, 0, 0, 0, 0, 0x01})
	addr := ForwardAddr(msg)
	addr[5] = 0xff
	if msg[fwdAddrOff+5] == 0xff {
		t.Fatalf("ForwardAddr aliases the message buffer")
	}
}

func TestForwardAddrValid(t *testing.T) {
	cases := []struct {
		addr net.HardwareAddr
		want bool
	}{
		{net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}, true},
		{net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, true},
		{net.HardwareAddr{0x01, 0x11, 0x22, 0x33, 0x44, 0x55}, false}, // multicast bit
		{net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, false}, // broadcast
		{net.HardwareAddr{0x03, 0x00, 0x00, 0x00, 0x00, 0x00}, false},
		{net.HardwareAddr{0x02, 0x11, 0x22}, false}, // short
		{nil, false},
	}
	for _, tc := range cases {
		if got := ForwardAddrValid(tc.addr); got != tc.want {
			t.Fatalf("ForwardAddrValid(%v) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}

func TestSetReplyHeader(t *testing.T) {
	msg := make([]byte, ReplyMsgMinSize)
	SetReplyHeader(msg, 0xbeef)

	if got := MessageType(msg); got != MsgTypeReply {
		t.Fatalf("function code: got %d want %d", got, MsgTypeReply)
	}
	// the receipt number is an opaque token: whatever representation was
	// stored must read back identical
	if got := ReplyReceipt(msg); got != 0xbeef {
		t.Fatalf("receipt: got 0x%04x want 0xbeef", got)
	}
}

func TestReplyData(t *testing.T) {
	data := []byte("probe-data")
	msg := make([]byte, ReplyMsgMinSize+len(data))
	SetReplyHeader(msg, 1)
	SetReplyData(msg, data)

	if !bytes.Equal(ReplyData(msg), data) {
		t.Fatalf("reply data: got %q want %q", ReplyData(msg), data)
	}
}

func TestCurrentMessage(t *testing.T) {
	addrs := []net.HardwareAddr{
		{0x02, 0, 0, 0, 0, 0x01},
		{0x02, 0, 0, 0, 0, 0x02},
	}
	frame := NewFrame(0, addrs, 9, nil)

	if got := MessageType(CurrentMessage(frame)); got != MsgTypeForward {
		t.Fatalf("message at skipcount 0: got type %d want %d", got, MsgTypeForward)
	}

	AdvanceSkipcount(frame)
	AdvanceSkipcount(frame)
	if !SkipcountValid(Skipcount(frame), len(frame)) {
		t.Fatalf("skipcount %d unexpectedly invalid", Skipcount(frame))
	}
	if got := MessageType(CurrentMessage(frame)); got != MsgTypeReply {
		t.Fatalf("message after two advances: got type %d want %d", got, MsgTypeReply)
	}
}
