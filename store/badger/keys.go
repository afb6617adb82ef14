package badger

import "encoding/binary"

// Key prefixes for stored data
const (
	catalogRecordPrefix = "catrec"
	catalogCountKey     = "catmeta:count"
)

// makeCatalogRowKey generates a key for a catalog record by row position.
// The row is encoded BigEndian so lexicographic key order matches row order.
func makeCatalogRowKey(row int) []byte {
	prefix := catalogRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(row))
	return buf
}

// encodeCount serializes the record count for the count key.
func encodeCount(count int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(count))
	return buf
}

// decodeCount deserializes the record count stored under the count key.
func decodeCount(data []byte) int {
	if len(data) < 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(data))
}
