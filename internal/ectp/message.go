package ectp

import (
	"encoding/binary"
	"net"
)

// Field offsets relative to a message start.
const (
	msgTypeOff   = 0
	msgHdrSize   = 2 // function code
	fwdAddrOff   = msgHdrSize
	replyRcptOff = msgHdrSize
	replyDataOff = ReplyMsgMinSize
)

// Message accessors take a slice positioned at a message start and trust it
// to cover the fields they touch. Bounds against the enclosing frame belong
// to the builder on the write path and to the chain walker on the read path.

// MessageType returns the function code of the message at msg.
func MessageType(msg []byte) uint16 {
	return wire16(msg[msgTypeOff:])
}

// SetMessageType writes the function code of the message at msg.
func SetMessageType(msg []byte, msgType uint16) {
	putWire16(msg[msgTypeOff:], msgType)
}

// CurrentMessage returns a view of the message the frame's skipcount points
// at. The skipcount must have been checked with SkipcountValid, and the
// message's fields must lie within the frame.
func CurrentMessage(frame []byte) []byte {
	return frame[FrameHeaderSize+Skipcount(frame):]
}

// ForwardAddr returns a copy of the forwarding address in the forward
// message at msg.
func ForwardAddr(msg []byte) net.HardwareAddr {
	addr := make(net.HardwareAddr, AddrLen)
	copy(addr, msg[fwdAddrOff:fwdAddrOff+AddrLen])
	return addr
}

// SetForwardAddr writes addr into the forward message at msg. Addresses are
// raw byte sequences; no byte-order conversion applies.
func SetForwardAddr(msg []byte, addr net.HardwareAddr) {
	copy(msg[fwdAddrOff:fwdAddrOff+AddrLen], addr)
}

// ForwardAddrValid reports whether addr is usable as a forwarding target:
// exactly AddrLen bytes with the multicast bit clear.
func ForwardAddrValid(addr net.HardwareAddr) bool {
	return len(addr) == AddrLen && addr[0]&0x01 == 0
}

// SetForwardMessage initialises a complete forward message at msg.
func SetForwardMessage(msg []byte, addr net.HardwareAddr) {
	SetMessageType(msg, MsgTypeForward)
	SetForwardAddr(msg, addr)
}

// SetReplyReceipt writes the receipt number of the reply message at msg.
// The receipt number is an opaque token echoed back verbatim; it is stored
// in host order, never byte-swapped. This asymmetry with the other 16-bit
// fields matches observed traffic and is deliberate.
func SetReplyReceipt(msg []byte, receipt uint16) {
	binary.NativeEndian.PutUint16(msg[replyRcptOff:], receipt)
}

// ReplyReceipt returns the receipt number of the reply message at msg.
func ReplyReceipt(msg []byte) uint16 {
	return binary.NativeEndian.Uint16(msg[replyRcptOff:])
}

// SetReplyHeader initialises the header of the reply message at msg.
func SetReplyHeader(msg []byte, receipt uint16) {
	SetMessageType(msg, MsgTypeReply)
	SetReplyReceipt(msg, receipt)
}

// SetReplyData copies data into the data region of the reply message at msg.
// The caller guarantees the region is large enough.
func SetReplyData(msg []byte, data []byte) {
	copy(msg[replyDataOff:], data)
}

// ReplyData returns a view of the data region of the reply message at msg.
func ReplyData(msg []byte) []byte {
	return msg[replyDataOff:]
}
