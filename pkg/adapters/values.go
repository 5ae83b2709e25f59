package adapters

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// toNumber reads a loosely typed numeric field. Strings may carry grouping commas;
// anything that does not parse to a finite number yields def.
func toNumber(v any, def float64) float64 {
	switch n := v.(type) {
	case nil, bool:
		return def
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", ""))
		if s == "" {
			return def
		}
		v = s
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// toInt truncates toward zero.
func toInt(v any, def int) int {
	return int(math.Trunc(toNumber(v, float64(def))))
}

// firstText returns the first candidate that renders to a non-empty string.
func firstText(def string, candidates ...any) string {
	for _, c := range candidates {
		switch c.(type) {
		case nil, map[string]any, []any:
			continue
		}
		s, err := cast.ToStringE(c)
		if err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return def
}
