package badger

import (
	"encoding/binary"

	"github.com/poiesic/pubcat/core"
)

// Key prefixes for different data types
const (
	summaryPrefix = "sumrec:"
)

// makeSummaryKey generates a key for a cached summary by publication ID.
// Format: prefix + big-endian ID
func makeSummaryKey(id core.ID) []byte {
	buf := make([]byte, len(summaryPrefix)+8)
	offset := copy(buf, summaryPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
