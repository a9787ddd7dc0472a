package teambuilder

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID generates a team id unique for the process lifetime: a millisecond
// timestamp prefix (base36, keeps ids roughly sortable by creation time)
// plus a random suffix.
func NewID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := uuid.NewString()[:8]
	return prefix + "-" + suffix
}
