package shell

import (
	"encoding/json"
)

// ParseRecordingPayload normalises the payload of a recording notification.
//
// Only boolean true and the exact string "true" mean recording. Byte slices
// and JSON raw messages are read as their text or JSON value, and a
// single-element slice is unwrapped because some hosts deliver event data as
// a variadic list. Everything else, including nil, is not recording.
func ParseRecordingPayload(payload any) RecordingSignal {
	switch v := payload.(type) {
	case bool:
		return RecordingSignal(v)
	case *bool:
		return v != nil && RecordingSignal(*v)
	case string:
		return v == "true"
	case *string:
		return v != nil && *v == "true"
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return false
		}
		return ParseRecordingPayload(decoded)
	case []byte:
		return string(v) == "true"
	case []any:
		if len(v) != 1 {
			return false
		}
		return ParseRecordingPayload(v[0])
	default:
		return false
	}
}

// Names of the host events that carry the recording state.
const (
	EventRecording        = "recording"
	EventRecordingStarted = "recording:started"
	EventRecordingStopped = "recording:stopped"
)

// SignalForEvent maps a named host event to a recording signal. The second
// result is false for events that do not concern recording.
func SignalForEvent(name string, payload any) (RecordingSignal, bool) {
	switch name {
	case EventRecording:
		return ParseRecordingPayload(payload), true
	case EventRecordingStarted:
		return true, true
	case EventRecordingStopped:
		return false, true
	default:
		return false, false
	}
}
