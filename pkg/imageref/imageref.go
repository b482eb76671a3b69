// Package imageref turns the raw image reference stored with an item into
// the list of absolute image URLs the marketplace accepts.
//
// Submissions have stored references in several shapes over time: a JSON
// array of URLs, a comma-separated list, a single URL, or a bare object
// storage path. All of them are accepted.
package imageref

import (
	"encoding/json"
	"net/url"
	"strings"
)

// MaxImages is the most image URLs an inventory item may carry.
const MaxImages = 24

// Normalize parses raw into absolute http(s) URLs. Bare paths are resolved
// against baseURL; when baseURL is empty they are dropped, as are references
// with any other scheme. Duplicates are removed and order is kept.
func Normalize(raw, baseURL string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, ref := range split(raw) {
		u, ok := resolve(ref, baseURL)
		if !ok {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		if len(out) == MaxImages {
			break
		}
	}
	return out
}

func split(raw string) []string {
	if strings.HasPrefix(raw, "[") {
		var refs []string
		if err := json.Unmarshal([]byte(raw), &refs); err == nil {
			return refs
		}
		raw = strings.Trim(raw, "[]")
	}
	return strings.Split(raw, ",")
}

func resolve(ref, baseURL string) (string, bool) {
	ref = strings.Trim(strings.TrimSpace(ref), `"'`)
	if ref == "" {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return "", false
		}
		return u.String(), true
	case "":
		if baseURL == "" || strings.HasPrefix(ref, "//") {
			return "", false
		}
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/"), true
	default:
		return "", false
	}
}
