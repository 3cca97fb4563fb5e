package model

import "encoding/json"

// Setting is one key/value configuration row. Value holds raw JSON so the
// caller decides the shape ("naming.bookFolder" is a string, others may not be).
type Setting struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
