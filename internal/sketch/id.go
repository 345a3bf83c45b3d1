package sketch

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// SegmentID identifies a segment. Ids are only compared for equality.
type SegmentID string

var (
	sessionID = uuid.NewString()
	counter   uint64
)

// NewSegmentID returns an id that is unique within and across sessions:
// a per-process uuid followed by a monotonic counter.
func NewSegmentID() SegmentID {
	n := atomic.AddUint64(&counter, 1)
	return SegmentID(sessionID + "-" + strconv.FormatUint(n, 10))
}
