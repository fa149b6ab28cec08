package cache

import (
	"strconv"
	"strings"
)

// Dialect selects the placeholder style of the underlying SQL store.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// rebind rewrites '?' placeholders to '$n' for postgres. Queries must not
// contain literal question marks.
func (d Dialect) rebind(q string) string {
	if d != Postgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
