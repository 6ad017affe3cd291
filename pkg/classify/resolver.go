// pkg/classify/resolver.go
package classify

import (
	"strings"
	"sync"
)

// Resolution maps each field kind to the header that carries it in a given
// header set. When several headers classify to the same kind, the first in
// header order wins. Kinds with no matching header are absent from the map.
type Resolution map[FieldKind]string

// Header returns the resolved header for a kind and whether one exists.
func (r Resolution) Header(kind FieldKind) (string, bool) {
	h, ok := r[kind]
	return h, ok
}

// Resolver resolves header sets to Resolutions, caching per header-set
// signature so classification runs once per dataset rather than per cell.
type Resolver struct {
	mu    sync.Mutex
	cache map[string]Resolution
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]Resolution)}
}

// Resolve classifies a header list and returns the kind-to-header mapping.
// The returned Resolution is shared across calls with identical headers and
// must be treated as read-only.
func (rs *Resolver) Resolve(headers []string) Resolution {
	sig := strings.Join(headers, "\x1f")

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if res, ok := rs.cache[sig]; ok {
		return res
	}

	res := make(Resolution)
	for _, h := range headers {
		kind := Classify(h)
		if kind == KindOther {
			continue
		}
		if _, taken := res[kind]; !taken {
			res[kind] = h
		}
	}
	rs.cache[sig] = res
	return res
}
