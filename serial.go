package persistent

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
)

// Serial is the opaque, ordered 8-byte token
// recording the last committed version of an object.
type Serial [8]byte

// ZeroSerial is the serial of objects that were never stored.
var ZeroSerial Serial

// SerialFromUint64 returns the big-endian Serial form of v.
func SerialFromUint64(v uint64) Serial {
	var s Serial
	binary.BigEndian.PutUint64(s[:], v)
	return s
}

// Uint64 is the inverse of [SerialFromUint64].
func (s Serial) Uint64() uint64 { return binary.BigEndian.Uint64(s[:]) }

// Compare returns -1, 0 or +1 depending on whether s sorts
// before, equal to, or after other.
func (s Serial) Compare(other Serial) int { return bytes.Compare(s[:], other[:]) }

// IsZero reports whether s is [ZeroSerial].
func (s Serial) IsZero() bool { return s == ZeroSerial }

func (s Serial) String() string { return hex.EncodeToString(s[:]) }
