package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/diario/internal/model"
)

type observers struct {
	fns []func()
}

func (o *observers) add(fn func()) {
	if fn != nil {
		o.fns = append(o.fns, fn)
	}
}

func (o *observers) notify() {
	for _, fn := range o.fns {
		fn()
	}
}

// nextCounter returns a counter value strictly greater than every numeric
// suffix in ids of the form "<prefix>-<n>", and at least hint.
func nextCounter(prefix string, ids []string, hint int) int {
	next := hint
	if next < 1 {
		next = 1
	}
	for _, id := range ids {
		raw, ok := strings.CutPrefix(id, prefix+"-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return next
}

func checkUniqueIDs(kind string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: duplicate %s id %q", model.ErrValidation, kind, id)
		}
		seen[id] = true
	}
	return nil
}
