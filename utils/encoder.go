package utils

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeJSONBody encodes body as a request payload. HTML characters are
// left as-is so names like "<Q1 & Q2>" reach the API unchanged.
func EncodeJSONBody(body any) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return buf, nil
}
