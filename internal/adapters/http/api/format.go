package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	contentTypeJSON    = "application/json; charset=utf-8"
	contentTypeMsgPack = "application/x-msgpack"

	formatParam   = "format"
	formatMsgPack = "msgpack"
)

// wantsMsgPack reports whether the client asked for MessagePack, either with
// ?format=msgpack or an Accept header naming it.
func wantsMsgPack(r *http.Request) bool {
	if r == nil {
		return false
	}
	if strings.EqualFold(r.URL.Query().Get(formatParam), formatMsgPack) {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), contentTypeMsgPack)
}

// writeResponse encodes v as JSON, or as MessagePack when requested. Struct
// fields keep their json names in both encodings.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, v any) error {
	if wantsMsgPack(r) {
		w.Header().Set("Content-Type", contentTypeMsgPack)
		w.WriteHeader(status)
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
