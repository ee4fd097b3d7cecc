package registry

import "sort"

// normalizeKey strips every non-alphanumeric rune and lower-cases the rest,
// so REGNO, reg_no and Reg-No all collapse to "regno".
func normalizeKey(key string) string {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	return string(out)
}

// Resolve looks a value up in a raw registry row by trying candidate key
// spellings in priority order. Matching is exact on the normalized form of
// both sides; there is no fuzzy matching. Row keys are scanned in sorted
// order per candidate so the result is deterministic for a given row.
// The second return is false when no candidate matches or row is nil.
func Resolve(row map[string]any, candidates ...string) (any, bool) {
	if len(row) == 0 {
		return nil, false
	}

	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	normalized := make(map[string]string, len(keys))
	for _, k := range keys {
		normalized[k] = normalizeKey(k)
	}

	for _, candidate := range candidates {
		want := normalizeKey(candidate)
		if want == "" {
			continue
		}
		for _, k := range keys {
			if normalized[k] == want {
				return row[k], true
			}
		}
	}
	return nil, false
}
