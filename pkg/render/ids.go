package render

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDScope hands out identifier prefixes for one render call. Each section of
// a form takes one prefix, so two forms on a page never share element ids.
type IDScope interface {
	Next() string
}

type counterScope struct {
	prefix string
	n      atomic.Uint64
}

func (s *counterScope) Next() string {
	return s.prefix + "-" + strconv.FormatUint(s.n.Add(1)-1, 10)
}

// NewIDScope returns a scope with a random prefix such as "sf-1a2b3c4d".
func NewIDScope() IDScope {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return &counterScope{prefix: "sf-" + id[:8]}
}

// NewSequenceIDScope returns a deterministic scope yielding prefix-0,
// prefix-1, and so on. Intended for tests and golden output.
func NewSequenceIDScope(prefix string) IDScope {
	if prefix == "" {
		prefix = "sf"
	}
	return &counterScope{prefix: prefix}
}
