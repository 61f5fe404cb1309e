package pwl

import (
	"bytes"
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a 32-byte digest of the canonical form of f. Two
// functions that are Equal have the same fingerprint. Used as a stable
// cache and diagnostic key for extremality results.
func (f *Function) Fingerprint() [32]byte {
	hasher := blake3.New()
	buf := new(bytes.Buffer)

	m := f.Merge()
	binary.Write(buf, binary.BigEndian, int64(m.kind))
	binary.Write(buf, binary.BigEndian, int64(len(m.pieces)))
	for _, p := range m.pieces {
		writeBool(buf, p.Interval.LoClosed)
		writeBool(buf, p.Interval.HiClosed)
		for _, n := range []string{p.Interval.Lo.String(), p.Interval.Hi.String(), p.Slope.String(), p.Intercept.String()} {
			binary.Write(buf, binary.BigEndian, int64(len(n)))
			buf.WriteString(n)
		}
	}

	hasher.Write(buf.Bytes())
	var out [32]byte
	copy(out[:], hasher.Sum(nil))
	return out
}

func writeBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}
