package persistent

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Oid is the identity of an object within a database.
// It is unique within a [Cache].
type Oid uint64

// InvalidOid is reported for objects that were never assigned an oid.
const InvalidOid Oid = 1<<64 - 1

// OidFromBytes decodes the 8-byte big-endian form of an oid.
func OidFromBytes(b []byte) (Oid, error) {
	if len(b) != 8 {
		return InvalidOid, fmt.Errorf("oid must be 8 octets, got %d", len(b))
	}
	return Oid(binary.BigEndian.Uint64(b)), nil
}

// Bytes returns the 8-byte big-endian form of oid.
func (oid Oid) Bytes() []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(oid))
}

// String renders oid in hex, padded to an even number of digits.
func (oid Oid) String() string {
	if oid == InvalidOid {
		return "invalid"
	}
	s := strconv.FormatUint(uint64(oid), 16)
	if len(s) < 8 && len(s)%2 == 1 {
		s = "0" + s
	}
	return "0x" + s
}
