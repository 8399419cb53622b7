package storage

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// mergeMaps merges src into dst. Nested objects merge recursively so a
// patch touching one key of a settings sub-object leaves its siblings
// intact; everything else replaces.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				mergeMaps(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}

// patchRecord applies a field-level merge patch to a typed record by
// round-tripping it through its JSON form. Both backends use this so merge
// semantics cannot drift between them.
func patchRecord[T any](rec *T, patch Patch) (*T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	mergeMaps(m, patch)

	merged, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := json.Unmarshal(merged, out); err != nil {
		return nil, err
	}
	return out, nil
}

// withUpdatedAt folds the updatedAt stamp into the patch itself so the
// merge and the stamp land in a single write. The caller's map is not
// touched.
func withUpdatedAt(patch Patch) Patch {
	out := make(Patch, len(patch)+1)
	for k, v := range patch {
		out[k] = v
	}
	out["updatedAt"] = time.Now()
	return out
}

// mergeByID combines the result sets of independent single-predicate
// queries into one set, deduplicated by record id. This is how OR across
// different fields is expressed against a backend that has no native
// disjunctive query; every such call site goes through here.
func mergeByID[T any](id func(*T) string, lists ...[]*T) []*T {
	seen := make(map[string]bool)
	out := make([]*T, 0)
	for _, list := range lists {
		for _, rec := range list {
			key := id(rec)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, rec)
		}
	}
	return out
}

// sortByTime orders records client-side. Neither backend is trusted for
// ordering; every sorted read passes through here after fetch.
func sortByTime[T any](items []*T, key func(*T) time.Time, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return key(items[i]).After(key(items[j]))
		}
		return key(items[i]).Before(key(items[j]))
	})
}

// normalizeEmail applies the lookup-time email normalization
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
