package gateway

import (
	"net/url"
	"sort"
)

// Params is a flat key/value query parameter set. Empty values are omitted
// from the encoded query string, matching how the backend treats an absent
// filter versus a filter on the empty string.
type Params map[string]string

// Encode renders the parameters in stable key order, skipping empties.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for key, value := range p {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		values.Set(key, p[key])
	}
	return values.Encode()
}
