package apierr

import (
	"io"
	"net/http"
	"strconv"
	"strings"
)

// DefaultBodyLimit caps how much of an error body FromHTTP reads.
const DefaultBodyLimit = 1 << 20

const messagePrefix = "The API returned an error code"

// Response is a completed HTTP exchange as seen by Translate.
type Response struct {
	Status int
	Header Header
	Body   []byte
}

// Translate turns a non-2xx response into an *APIError. It never fails:
// bodies that are empty, binary, HTML or otherwise not a JSON object simply
// contribute no structured fields.
func Translate(r Response) *APIError {
	p := ParsePayload(r.Body)

	outer := Field{}
	if v, ok := r.Header.Lookup(RequestIDHeader); ok && v != "" {
		outer = Some(v)
	}
	frag := RequestIDFragment(p.RequestID, outer)

	return &APIError{
		Status:    r.Status,
		Message:   FormatMessage(r.Status, frag, p),
		RequestID: frag,
		Payload:   p,
		Raw:       string(r.Body),
		Header:    r.Header.Clone(),
	}
}

// Parse is Translate for callers holding the pieces separately.
func Parse(body []byte, status int, header Header) *APIError {
	return Translate(Response{Status: status, Header: header, Body: body})
}

// FromHTTP reads up to limit bytes of resp.Body (DefaultBodyLimit when
// limit <= 0) and translates. A failed read keeps whatever bytes arrived.
// The caller still owns and closes resp.Body.
func FromHTTP(resp *http.Response, limit int64) *APIError {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}
	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(resp.Body, limit))
	}
	return Translate(Response{
		Status: resp.StatusCode,
		Header: HeaderFromHTTP(resp.Header),
		Body:   body,
	})
}

// RequestIDFragment joins the body-supplied (inner) and header-supplied
// (outer) request ids:
//
//	inner and outer -> "inner.outer"
//	outer only      -> ".outer"
//	inner only      -> "inner"
//	neither         -> ""
func RequestIDFragment(inner, outer Field) string {
	switch {
	case inner.Valid && outer.Valid:
		return inner.Value + "." + outer.Value
	case outer.Valid:
		return "." + outer.Value
	case inner.Valid:
		return inner.Value
	default:
		return ""
	}
}

// FormatMessage builds
//
//	The API returned an error code [<status>( | <fragment>)]( <reason>)( - <description>)
//
// where each optional part appears only when its source is present.
func FormatMessage(status int, fragment string, p Payload) string {
	var b strings.Builder
	b.WriteString(messagePrefix)
	b.WriteString(" [")
	b.WriteString(strconv.Itoa(status))
	if fragment != "" {
		b.WriteString(" | ")
		b.WriteString(fragment)
	}
	b.WriteString("]")
	if reason, ok := p.Reason().Get(); ok {
		b.WriteString(" ")
		b.WriteString(reason)
	}
	if desc, ok := p.Description().Get(); ok {
		b.WriteString(" - ")
		b.WriteString(desc)
	}
	return b.String()
}
