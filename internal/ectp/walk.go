package ectp

import "net"

// Reply is the terminal record of a walked frame.
type Reply struct {
	Receipt uint16
	Data    []byte
}

// WalkChain walks the skip chain of a received frame, starting from its
// current skipcount. Received frames are untrusted, so every hop is
// bounds-checked before it is dereferenced. It returns the forwarding
// addresses still ahead of the current position and the terminal reply.
//
// The walk is read-only: it keeps its own cursor instead of advancing the
// frame's skipcount, and the reply data is copied out of the frame.
// Forwarding addresses are not screened here; callers that care apply
// ForwardAddrValid per hop.
func WalkChain(frame []byte) ([]net.HardwareAddr, Reply, error) {
	if len(frame) < ReplyMsgMinSize {
		return nil, Reply{}, ErrFrameTooShort
	}

	var hops []net.HardwareAddr
	skip := Skipcount(frame)
	for {
		if !SkipcountValid(skip, len(frame)) {
			return nil, Reply{}, ErrBadSkipcount
		}
		start := FrameHeaderSize + skip
		if start+msgHdrSize > len(frame) {
			return nil, Reply{}, ErrTruncatedMessage
		}
		msg := frame[start:]

		switch MessageType(msg) {
		case MsgTypeForward:
			if len(msg) < FwdMsgSize {
				return nil, Reply{}, ErrTruncatedMessage
			}
			hops = append(hops, ForwardAddr(msg))
			skip += FwdMsgSize
		case MsgTypeReply:
			if len(msg) < ReplyMsgMinSize {
				return nil, Reply{}, ErrTruncatedMessage
			}
			data := make([]byte, len(ReplyData(msg)))
			copy(data, ReplyData(msg))
			return hops, Reply{Receipt: ReplyReceipt(msg), Data: data}, nil
		default:
			return nil, Reply{}, ErrUnknownMessageType
		}
	}
}
