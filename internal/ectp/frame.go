package ectp

// Frame layout sizes, in bytes.
const (
	FrameHeaderSize = 2 // skipcount field
	FwdMsgSize      = 8 // function code + forwarding address
	ReplyMsgMinSize = 4 // function code + receipt number
	AddrLen         = 6
)

// Loopback function codes.
const (
	MsgTypeReply   uint16 = 1
	MsgTypeForward uint16 = 2
)

// Skipcount returns the frame's skipcount field in host order. The skipcount
// is the byte offset from the start of the payload region to the current
// message.
func Skipcount(frame []byte) int {
	return int(wire16(frame[:FrameHeaderSize]))
}

// SetSkipcount writes n into the frame's skipcount field. The frame must be
// at least FrameHeaderSize bytes.
func SetSkipcount(frame []byte, n int) {
	putWire16(frame[:FrameHeaderSize], uint16(n))
}

// SkipcountValid reports whether a skipcount is usable against a frame of
// frameLen bytes: aligned to FwdMsgSize and inside the frame. Callers are
// expected to hand in frameLen >= ReplyMsgMinSize; this lower bound is not
// checked here.
func SkipcountValid(skipcount, frameLen int) bool {
	if skipcount < 0 || skipcount%FwdMsgSize != 0 {
		return false
	}
	return skipcount < frameLen
}

// AdvanceSkipcount steps the frame's skipcount over one forward message.
// The new value is not validated; re-check with SkipcountValid before
// dereferencing.
func AdvanceSkipcount(frame []byte) {
	SetSkipcount(frame, Skipcount(frame)+FwdMsgSize)
}

// FrameSize calculates the size of a frame carrying numFwdMsgs forward
// messages and a reply payload of payloadSize bytes, excluding the ethernet
// header.
func FrameSize(numFwdMsgs, payloadSize int) int {
	return FrameHeaderSize + numFwdMsgs*FwdMsgSize + ReplyMsgMinSize + payloadSize
}
