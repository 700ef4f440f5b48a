package cloudmedia

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// signParams computes the request signature: the non-empty parameters sorted
// by name, joined as key=value pairs with '&', with the API secret appended,
// hashed with SHA-1. The file payload and api_key are never part of the
// signature.
func signParams(params url.Values, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "file" || k == "api_key" || k == "signature" {
			continue
		}
		if params.Get(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, params.Get(k)))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + apiSecret))
	return hex.EncodeToString(sum[:])
}
