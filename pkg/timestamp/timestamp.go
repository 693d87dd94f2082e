// Package timestamp handles the Unix-millisecond timestamps used across
// the pipeline: graph node versioning and the completion times stamped on
// reasoner replies. The reasoner's rulesets are not consistent about the
// shape of those stamps, so Parse accepts the forms JSON decoding can
// produce. A value of 0 always means "not set".
package timestamp

import (
	"strconv"
	"time"
)

// Now returns the current time as Unix milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}

// ToUnixMs converts a time.Time to Unix milliseconds. Zero time maps to 0.
func ToUnixMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// Format renders Unix milliseconds as an RFC3339 UTC string, or "" for 0.
func Format(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// Parse converts a loosely-typed timestamp to Unix milliseconds. Numeric
// values above 1e12 are taken as milliseconds, below as seconds; strings
// may be RFC3339 or a stringified epoch. JSON decoding produces float64
// for numbers, which is why that case exists. Anything unparseable,
// including nil, yields 0.
func Parse(input any) int64 {
	if input == nil {
		return 0
	}

	switch v := input.(type) {
	case int64:
		if v == 0 {
			return 0
		}
		if v > 1e12 {
			return v
		}
		return v * 1000

	case float64:
		if v == 0 {
			return 0
		}
		if v > 1e12 {
			return int64(v)
		}
		return int64(v * 1000)

	case int:
		return Parse(int64(v))

	case int32:
		return Parse(int64(v))

	case string:
		if v == "" {
			return 0
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return ToUnixMs(t)
		}
		if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
			return Parse(ts)
		}
		if ts, err := strconv.ParseFloat(v, 64); err == nil {
			return Parse(ts)
		}
		return 0

	case time.Time:
		return ToUnixMs(v)

	case *time.Time:
		if v == nil {
			return 0
		}
		return ToUnixMs(*v)

	default:
		return 0
	}
}

// Between returns the duration from start to end. Either side being 0
// yields 0, so unset stamps never produce huge spans.
func Between(start, end int64) time.Duration {
	if start == 0 || end == 0 {
		return 0
	}
	return time.UnixMilli(end).Sub(time.UnixMilli(start))
}
