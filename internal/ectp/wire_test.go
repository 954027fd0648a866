package ectp

import "testing"

func TestHostWireRoundTrip(t *testing.T) {
	values := []uint16{0, 1, 0x00ff, 0x0102, 0x1234, 0x8000, 0xfffe, 0xffff}
	for _, v := range values {
		if got := WireToHost(HostToWire(v)); got != v {
			t.Fatalf("round trip mismatch: got 0x%04x want 0x%04x", got, v)
		}
		if got := HostToWire(WireToHost(v)); got != v {
			t.Fatalf("inverse round trip mismatch: got 0x%04x want 0x%04x", got, v)
		}
		if HostToWire(v) != WireToHost(v) {
			t.Fatalf("conversion not self-inverse for 0x%04x", v)
		}
	}
}

func TestWireFieldsAreLittleEndian(t *testing.T) {
	frame := make([]byte, FrameHeaderSize)
	SetSkipcount(frame, 0x0102)
	if frame[0] != 0x02 || frame[1] != 0x01 {
		t.Fatalf("unexpected skipcount wire bytes: %02x %02x", frame[0], frame[1])
	}

	msg := make([]byte, msgHdrSize)
	SetMessageType(msg, 0x0201)
	if msg[0] != 0x01 || msg[1] != 0x02 {
		t.Fatalf("unexpected function code wire bytes: %02x %02x", msg[0], msg[1])
	}
}
