package parameters

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// objectWriter builds a JSON object one field at a time. Each field is either
// always written or written only when present; nothing is ever emitted as null
// unless the caller passes a nil value to always.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

// always writes key unconditionally.
func (w *objectWriter) always(key string, v any) {
	if w.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("marshal %s: %w", key, err)
		return
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(data)
	w.n++
}

// optional writes key only if present is true.
func (w *objectWriter) optional(key string, v any, present bool) {
	if present {
		w.always(key, v)
	}
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

// nonNil returns s, or an empty slice when s is nil, for fields that are
// always serialized as arrays.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
