package ectp

import "encoding/binary"

// The loopback protocol carries its 16-bit integer fields little-endian on
// the wire, unlike most network protocols. On a little-endian host the
// host/wire conversion is the identity; on a big-endian host it is a byte
// swap. Both directions are the same operation, so the pair is self-inverse.

// HostToWire converts a 16-bit value from host order to wire order.
func HostToWire(v uint16) uint16 {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

// WireToHost converts a 16-bit value from wire order to host order.
func WireToHost(v uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return binary.LittleEndian.Uint16(b[:])
}

// putWire16 stores v at b[0:2] in wire order. Equivalent to a native-order
// store of HostToWire(v).
func putWire16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// wire16 loads the wire-order value at b[0:2] in host order.
func wire16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}
