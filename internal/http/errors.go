package http

import (
	"call-monitor/internal/shared/svcerrors"
)

// Query interface errors
const (
	codeInvalidQuery = "QRY_1000"
)

// errInvalidQuery returns an error for malformed query parameters or bodies.
func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}
