// Package protocol validates room status write requests.
//
// Only standard.state and standard.activity may be written. Every PATCH must
// carry apiVersion and a standard object; status and custom are read-only.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Intent is a validated write request. Absent or null fields are empty.
type Intent struct {
	APIVersion string `json:"apiVersion"`
	State      string `json:"state,omitempty"`
	Activity   string `json:"activity,omitempty"`
}

// Validation messages returned to clients.
const (
	MsgEmptyBody         = "Request body is empty"
	MsgAPIVersionMissing = "apiVersion is required in PATCH requests"
	MsgStatusReadOnly    = "status properties are read-only and cannot be modified"
	MsgCustomReadOnly    = "custom properties are read-only and cannot be modified"
	MsgStandardRequired  = "standard is required. Only standard.state and standard.activity are writable"
	MsgNothingWritable   = "No writable properties provided. Only standard.state and standard.activity are writable"
)

var writable = map[string]bool{"state": true, "activity": true}

// ParsePatch validates body and extracts the write intent. All failures are
// *ValidationError.
func ParsePatch(body []byte) (Intent, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Intent{}, invalid(MsgEmptyBody)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return Intent{}, invalid(fmt.Sprintf("Error parsing request: %v", err))
	}
	if root == nil {
		return Intent{}, invalid("Error parsing request: body is not a JSON object")
	}

	rawVersion, ok := root["apiVersion"]
	if !ok {
		return Intent{}, invalid(MsgAPIVersionMissing)
	}
	if _, ok := root["status"]; ok {
		return Intent{}, invalid(MsgStatusReadOnly)
	}
	if _, ok := root["custom"]; ok {
		return Intent{}, invalid(MsgCustomReadOnly)
	}

	var standard map[string]json.RawMessage
	rawStandard, ok := root["standard"]
	if !ok || json.Unmarshal(rawStandard, &standard) != nil || standard == nil {
		return Intent{}, invalid(MsgStandardRequired)
	}

	keys := make([]string, 0, len(standard))
	for k := range standard {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !writable[k] {
			return Intent{}, invalid(fmt.Sprintf("standard.%s is read-only. Only state and activity are writable", k))
		}
	}
	if len(standard) == 0 {
		return Intent{}, invalid(MsgNothingWritable)
	}

	intent := Intent{APIVersion: scalar(rawVersion)}

	var err error
	if intent.State, err = optionalString("state", standard["state"]); err != nil {
		return Intent{}, err
	}
	if intent.Activity, err = optionalString("activity", standard["activity"]); err != nil {
		return Intent{}, err
	}

	return intent, nil
}

// optionalString decodes a string or null field; absent and null are "".
func optionalString(name string, raw json.RawMessage) (string, error) {
	if raw == nil {
		return "", nil
	}

	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(fmt.Sprintf("standard.%s must be a string", name))
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// scalar renders apiVersion as text. Strings are unquoted, null is empty and
// other values are kept as written.
func scalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
