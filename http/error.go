package http

import (
	"net/http"

	"github.com/fwojciec/brief"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	brief.EINVALID:            http.StatusBadRequest,
	brief.EUNSUPPORTED:        http.StatusBadRequest,
	brief.ECONTENTTOOSHORT:    http.StatusBadRequest,
	brief.EALLCHUNKSTOOSHORT:  http.StatusBadRequest,
	brief.EMALFORMEDCONTENT:   http.StatusBadRequest,
	brief.ENOTFOUND:           http.StatusNotFound,
	brief.EUNAUTHORIZED:       http.StatusUnauthorized,
	brief.EFORBIDDEN:          http.StatusForbidden,
	brief.ERATELIMITED:        http.StatusTooManyRequests,
	brief.EQUOTA:              http.StatusTooManyRequests,
	brief.EMODELLOADING:       http.StatusServiceUnavailable,
	brief.EMISSINGCREDENTIALS: http.StatusInternalServerError,
	brief.EINTERNAL:           http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

