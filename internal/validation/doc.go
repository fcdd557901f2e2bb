// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is built once with the domain tags the
// API needs and translates failures into the VALIDATION_ERROR response format.
//
// # Custom Tags
//
//   - involvement_level: primary, major, moderate, minor or none (any case)
//   - country: any identifier the gazetteer resolves (name, alias, ISO code)
//   - region: a known region name or region alias
//
// # Example
//
//	type EventMapRequest struct {
//	    Countries map[string]string `json:"countries" validate:"max=300,dive,keys,required,endkeys,involvement_level"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Field names in messages come from json tags, so errors name the keys the
// client actually sent ("countries[Ukraine] must be one of: ...").
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation
