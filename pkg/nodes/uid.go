package nodes

import (
	"strings"

	"github.com/google/uuid"
)

// TempUIDPrefix marks identifiers that are local to this process and not yet
// known to the data platform. The platform replaces them on first save.
const TempUIDPrefix = "_:"

// NewUID returns a fresh temporary identifier for an unsaved node.
func NewUID() string {
	return TempUIDPrefix + uuid.NewString()
}

// IsTempUID reports whether uid carries the temporary prefix.
func IsTempUID(uid string) bool {
	return strings.HasPrefix(uid, TempUIDPrefix)
}
