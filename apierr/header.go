package apierr

import (
	"net/http"
	"sort"
	"strings"
)

// Header is a multi-valued header map with case-insensitive keys.
// The zero value is ready to use.
type Header struct {
	values map[string][]string // lower-cased key -> values
	names  map[string]string   // lower-cased key -> first spelling seen
}

// NewHeader copies m into a Header. Keys differing only in case are merged
// in map iteration order.
func NewHeader(m map[string][]string) Header {
	var h Header
	for k, vv := range m {
		for _, v := range vv {
			h.Add(k, v)
		}
	}
	return h
}

// HeaderFromHTTP copies an http.Header.
func HeaderFromHTTP(h http.Header) Header {
	return NewHeader(h)
}

func (h *Header) init() {
	if h.values == nil {
		h.values = make(map[string][]string)
		h.names = make(map[string]string)
	}
}

// Add appends value to the values of key.
func (h *Header) Add(key, value string) {
	h.init()
	k := strings.ToLower(key)
	if _, ok := h.names[k]; !ok {
		h.names[k] = key
	}
	h.values[k] = append(h.values[k], value)
}

// Set replaces all values of key.
func (h *Header) Set(key string, values ...string) {
	h.init()
	k := strings.ToLower(key)
	h.names[k] = key
	h.values[k] = append([]string(nil), values...)
}

// Del removes key.
func (h *Header) Del(key string) {
	k := strings.ToLower(key)
	delete(h.values, k)
	delete(h.names, k)
}

// Get returns the first value of key, or "" when absent.
func (h Header) Get(key string) string {
	if vv := h.values[strings.ToLower(key)]; len(vv) > 0 {
		return vv[0]
	}
	return ""
}

// Lookup is Get with a presence flag.
func (h Header) Lookup(key string) (string, bool) {
	vv := h.values[strings.ToLower(key)]
	if len(vv) == 0 {
		return "", false
	}
	return vv[0], true
}

// Values returns all values of key. The slice is a copy.
func (h Header) Values(key string) []string {
	vv := h.values[strings.ToLower(key)]
	if vv == nil {
		return nil
	}
	return append([]string(nil), vv...)
}

func (h Header) Has(key string) bool {
	_, ok := h.values[strings.ToLower(key)]
	return ok
}

func (h Header) Len() int { return len(h.values) }

// Names returns the keys in their original spelling, sorted
// case-insensitively.
func (h Header) Names() []string {
	out := make([]string, 0, len(h.names))
	for _, n := range h.names {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func (h Header) Clone() Header {
	var c Header
	for k, vv := range h.values {
		c.Set(h.names[k], vv...)
	}
	return c
}

// HTTP exports the header with canonical keys.
func (h Header) HTTP() http.Header {
	out := make(http.Header, len(h.values))
	for k, vv := range h.values {
		out[http.CanonicalHeaderKey(h.names[k])] = append([]string(nil), vv...)
	}
	return out
}
