package apierr

import (
	"bytes"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Field is an optional string extracted from an error body.
type Field struct {
	Value string
	Valid bool
}

// Some returns a present Field.
func Some(v string) Field { return Field{Value: v, Valid: true} }

func (f Field) Get() (string, bool) { return f.Value, f.Valid }

// Or returns the value, or def when the field is absent.
func (f Field) Or(def string) string {
	if f.Valid {
		return f.Value
	}
	return def
}

// Payload is the structured part of an error body. Every field is optional;
// a body that is empty, not JSON, or not a JSON object yields the zero Payload.
type Payload struct {
	Type             Field
	Status           Field
	Code             Field
	Error            Field // OAuth-style alternate for Code
	Message          Field
	ErrorDescription Field // OAuth-style alternate for Message
	RequestID        Field // body "request_id"
	HelpURL          Field

	// ContextInfo is passed through as raw JSON; nil when absent.
	ContextInfo jsoniter.RawMessage
}

// Reason is the machine-ish error code: "code", falling back to "error".
func (p Payload) Reason() Field {
	if p.Code.Valid {
		return p.Code
	}
	return p.Error
}

// Description is the human-ish text: "message", falling back to
// "error_description".
func (p Payload) Description() Field {
	if p.Message.Valid {
		return p.Message
	}
	return p.ErrorDescription
}

// Empty reports whether nothing was extracted.
func (p Payload) Empty() bool {
	return !p.Type.Valid && !p.Status.Valid && !p.Code.Valid &&
		!p.Error.Valid && !p.Message.Valid && !p.ErrorDescription.Valid &&
		!p.RequestID.Valid && !p.HelpURL.Valid && p.ContextInfo == nil
}

// ParsePayload extracts the known fields from body. It never fails. The
// body must be exactly one JSON object, optionally surrounded by whitespace;
// anything else yields the zero Payload. A repeated key takes its last value.
func ParsePayload(body []byte) Payload {
	if !json.Valid(body) {
		return Payload{}
	}
	iter := json.BorrowIterator(body)
	defer json.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return Payload{}
	}
	var p Payload
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch key {
		case "type":
			p.Type = scalar(it)
		case "status":
			p.Status = scalar(it)
		case "code":
			p.Code = scalar(it)
		case "error":
			p.Error = scalar(it)
		case "message":
			p.Message = scalar(it)
		case "error_description":
			p.ErrorDescription = scalar(it)
		case "request_id":
			p.RequestID = scalar(it)
		case "help_url":
			p.HelpURL = scalar(it)
		case "context_info":
			p.ContextInfo = container(it)
		default:
			it.Skip()
		}
		return it.Error == nil
	})
	if iter.Error != nil {
		return Payload{}
	}

	// only whitespace may follow the object
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return Payload{}
	}
	return p
}

// scalar reads the next value as text. Strings, numbers and booleans count;
// null, objects, arrays and empty strings are absent.
func scalar(it *jsoniter.Iterator) Field {
	switch it.WhatIsNext() {
	case jsoniter.StringValue:
		if s := it.ReadString(); s != "" {
			return Some(s)
		}
	case jsoniter.NumberValue:
		if n := it.ReadNumber(); n != "" {
			return Some(string(n))
		}
	case jsoniter.BoolValue:
		return Some(strconv.FormatBool(it.ReadBool()))
	default:
		it.Skip()
	}
	return Field{}
}

// container keeps an object or array as raw JSON; other values are absent.
func container(it *jsoniter.Iterator) jsoniter.RawMessage {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue, jsoniter.ArrayValue:
		return jsoniter.RawMessage(bytes.TrimSpace(it.SkipAndReturnBytes()))
	default:
		it.Skip()
		return nil
	}
}
