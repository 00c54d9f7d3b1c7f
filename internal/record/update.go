package record

import (
	"fmt"
	"strings"
)

// UpdatePlan is the SET list of a partial update. The identifier binds to
// $IDPlaceholder, which always follows the last value in Args.
type UpdatePlan struct {
	Set           string
	Args          []any
	IDPlaceholder int
}

// BuildUpdate produces one `column = $n` per supplied whitelisted key, in payload
// order, followed by `updated_at = NOW()`. Keys outside the whitelist are dropped.
// If nothing remains it returns ErrEmptyUpdate so no statement is executed.
func BuildUpdate(updatable []string, payload Payload) (UpdatePlan, error) {
	allowed := make(map[string]bool, len(updatable))
	for _, c := range updatable {
		allowed[c] = true
	}

	var sets []string
	var args []any
	for _, key := range payload.Keys() {
		if !allowed[key] {
			continue
		}
		v, _ := payload.Get(key)
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", key, len(args)))
	}

	if len(sets) == 0 {
		return UpdatePlan{}, ErrEmptyUpdate
	}

	sets = append(sets, "updated_at = NOW()")

	return UpdatePlan{
		Set:           strings.Join(sets, ", "),
		Args:          args,
		IDPlaceholder: len(args) + 1,
	}, nil
}
