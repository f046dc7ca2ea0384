package graph

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// objectKeyPlaceholder is the canonical form of any value that is not a
// primitive and does not implement fmt.Stringer.
const objectKeyPlaceholder = "[object]"

// Key converts an arbitrary value to its canonical string form. This is the
// single coercion rule applied at every API boundary that accepts a node or
// edge key, before any lookup or storage:
//
//   - strings and []byte pass through unchanged
//   - integers render as base-10 text
//   - floats render as their shortest decimal representation; NaN and the
//     infinities render as "NaN", "+Inf", "-Inf"
//   - booleans render as "true"/"false"
//   - nil renders as "null"
//   - fmt.Stringer values render as their String()
//   - everything else renders as the fixed placeholder "[object]"
func Key(v any) string {
	switch k := v.(type) {
	case string:
		return k
	case []byte:
		return string(k)
	case int:
		return strconv.Itoa(k)
	case int8:
		return strconv.FormatInt(int64(k), 10)
	case int16:
		return strconv.FormatInt(int64(k), 10)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint:
		return strconv.FormatUint(uint64(k), 10)
	case uint8:
		return strconv.FormatUint(uint64(k), 10)
	case uint16:
		return strconv.FormatUint(uint64(k), 10)
	case uint32:
		return strconv.FormatUint(uint64(k), 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case float32:
		return formatFloatKey(float64(k), 32)
	case float64:
		return formatFloatKey(k, 64)
	case bool:
		return strconv.FormatBool(k)
	case nil:
		return "null"
	case fmt.Stringer:
		return k.String()
	default:
		return objectKeyPlaceholder
	}
}

func formatFloatKey(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// generateEdgeKey returns a fresh edge key that is unique within the graph.
// Generated keys are UUIDs: they carry no runtime state, so they can be
// serialized and reused across copies exactly like user-supplied keys.
func (g *Graph) generateEdgeKey() string {
	for {
		key := uuid.NewString()
		if _, exists := g.edges[key]; !exists {
			return key
		}
	}
}
