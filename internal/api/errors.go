// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/geoimpact/internal/mapdata"
	"github.com/tomtom215/geoimpact/internal/topology"
	"github.com/tomtom215/geoimpact/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeValidation      = validation.ErrorCode
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeDatabase        = "DATABASE_ERROR"
	ErrCodeDataUnavailable = "DATA_UNAVAILABLE"
	ErrCodeRateLimited     = "RATE_LIMITED"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// statusClientClosedRequest is the nginx convention for a client that went
// away before the response was ready.
const statusClientClosedRequest = 499

// classifyError maps an error from the engine to an HTTP status and code.
// storeErrCode is the code used for errors that are not otherwise known,
// so the same mapping serves store-backed and pure endpoints.
func classifyError(err error, storeErrCode string) (int, string, string) {
	switch {
	case errors.Is(err, topology.ErrUnavailable), errors.Is(err, mapdata.ErrDataUnavailable):
		return http.StatusServiceUnavailable, ErrCodeDataUnavailable, "World map data is unavailable"
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, ErrCodeInternal, "Request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeInternal, "Request timed out"
	case storeErrCode == ErrCodeDatabase:
		return http.StatusInternalServerError, ErrCodeDatabase, "Failed to query articles"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "Internal server error"
	}
}
