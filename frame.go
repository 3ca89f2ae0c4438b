package callstackidx

import "encoding/binary"

// MaxStackEntries bounds the number of frames a single sample may carry.
const MaxStackEntries = 256

// Frame is one (instruction pointer, map pointer) pair in a callstack.
// An IP of zero is the end-of-stack sentinel.
type Frame struct {
	IP  uint64
	Map uint64
}

// frameSize is the byte width of one Frame in the byte-stream view.
const frameSize = 16 // 8 bytes IP + 8 bytes Map

// Record is one profiler sample: a stream-id and its sentinel-terminated
// frame list.
type Record struct {
	ID     uint64
	Frames [MaxStackEntries]Frame
}

// Stack returns the frames up to (excluding) the end-of-stack sentinel.
func (r *Record) Stack() []Frame {
	for i := range r.Frames {
		if r.Frames[i].IP == 0 {
			return r.Frames[:i]
		}
	}
	return r.Frames[:]
}

// ByteOrder controls how a Frame's words are serialized into the
// byte-stream view fed to the ART and hash backends. Big-endian is the
// default because high bits of an instruction pointer vary least across
// samples, so more common prefix collapses into fewer ART nodes.
var ByteOrder binary.ByteOrder = binary.BigEndian

// StreamBytes returns the contiguous byte-stream view of frames: the first
// byte of the first frame's IP through the last byte of the last frame's
// Map. frames must already be sentinel-trimmed (see Record.Stack).
func StreamBytes(frames []Frame) []byte {
	buf := make([]byte, len(frames)*frameSize)
	for i, f := range frames {
		off := i * frameSize
		ByteOrder.PutUint64(buf[off:], f.IP)
		ByteOrder.PutUint64(buf[off+8:], f.Map)
	}
	return buf
}

// RecordSource is the opaque iterator over profiler records the core
// consumes. The core never parses an external wire format; a RecordSource
// is an in-process driver supplying already-decoded Records in order.
type RecordSource interface {
	// Next returns the next record in source order, or ok=false when the
	// source is exhausted.
	Next() (Record, bool)
}
