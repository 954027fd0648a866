package ectp

import "net"

// BuildFrame assembles a loopback frame into buf: skipcount header, one
// forward message per address in order, then a reply message carrying
// receipt and data. buf is filled with filler first, so any bytes the frame
// does not reach keep a deterministic value.
//
// The builder never writes past len(buf). Under space pressure the fields
// keep a strict precedence: header, then forward messages in caller order,
// then reply header, then reply data. An earlier field is always completed
// in full before a later one gets any bytes; the first field that does not
// fit is built in a scratch buffer, prefix-copied up to the buffer end, and
// everything after it is dropped. Truncation is silent; size buf with
// FrameSize when a complete frame is required.
func BuildFrame(skipcount int, fwdAddrs []net.HardwareAddr, receipt uint16, data []byte, buf []byte, filler byte) {
	if len(buf) == 0 {
		return
	}
	for i := range buf {
		buf[i] = filler
	}

	var scratch [FwdMsgSize]byte
	idx := 0
	left := len(buf)

	// skipcount header
	if left > FrameHeaderSize {
		SetSkipcount(buf[idx:], skipcount)
		idx += FrameHeaderSize
		left -= FrameHeaderSize
	} else {
		SetSkipcount(scratch[:], skipcount)
		copy(buf[idx:], scratch[:FrameHeaderSize])
		return
	}

	// forward messages
	for _, addr := range fwdAddrs {
		if left == 0 {
			break
		}
		if left >= FwdMsgSize {
			SetForwardMessage(buf[idx:], addr)
			idx += FwdMsgSize
			left -= FwdMsgSize
		} else {
			SetForwardMessage(scratch[:], addr)
			copy(buf[idx:], scratch[:left])
			left = 0
		}
	}
	if left == 0 {
		return
	}

	// reply message header. idx stays at the message start so the data
	// write below lands on the message's data region.
	if left > ReplyMsgMinSize {
		SetReplyHeader(buf[idx:], receipt)
		left -= ReplyMsgMinSize
	} else {
		SetReplyHeader(scratch[:], receipt)
		copy(buf[idx:], scratch[:left])
		return
	}

	// reply message data
	if left >= len(data) {
		SetReplyData(buf[idx:], data)
	} else {
		SetReplyData(buf[idx:], data[:left])
	}
}

// NewFrame allocates an exactly sized buffer and builds a complete frame
// into it.
func NewFrame(skipcount int, fwdAddrs []net.HardwareAddr, receipt uint16, data []byte) []byte {
	buf := make([]byte, FrameSize(len(fwdAddrs), len(data)))
	BuildFrame(skipcount, fwdAddrs, receipt, data, buf, 0)
	return buf
}
