//go:build unit || e2e

package testutil

import (
	"fmt"
	"net/url"
)

// Field sets key on the query map, or removes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// QueryString copies base, applies the mutations and encodes the result.
func QueryString(base map[string]any, muts ...func(map[string]any)) string {
	m := make(map[string]any, len(base))
	for k, v := range base {
		m[k] = v
	}
	for _, f := range muts {
		f(m)
	}

	values := url.Values{}
	for k, v := range m {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}
