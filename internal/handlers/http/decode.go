// internal/handlers/http/decode.go
package http

import (
	"encoding/json"
	"net/http"

	"alphawell/internal/util"
)

const maxBodyBytes = 4 << 20 // seri 50 tahun masih muat

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return util.BadInput("bad request body")
	}
	return nil
}
