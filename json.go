package tagid

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON writes the wrapped value exactly as json.Marshal would write it
// on its own: 1, 1.5 or "1", never an object.
//
// HTML characters are left unescaped here. The calling encoder escapes them
// again unless SetEscapeHTML(false) is in effect, as it does for a bare value.
func (id ID[Tag, R]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(id.v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes the wrapped value with the standard decoder for R.
// Decode errors are returned as is, e.g. a *json.UnmarshalTypeError naming
// int64 when a string is found.
//
// encoding/json passes map keys to UnmarshalJSON still quoted, so maps keyed
// by an ID with a numeric R encode but do not decode; decode those into a map
// keyed by R instead.
func (id *ID[Tag, R]) UnmarshalJSON(data []byte) error {
	v := id.v
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*id = New[Tag](v)
	return nil
}
