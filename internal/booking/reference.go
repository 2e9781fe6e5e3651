package booking

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReference returns a short human-readable booking reference,
// e.g. "BK3F9A21CD". Uniqueness is enforced by the database; callers
// retry on a conflict.
func GenerateReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK" + strings.ToUpper(id[:8])
}
