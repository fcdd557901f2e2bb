// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package models

import (
	"time"
)

// APIResponse is the envelope used by every endpoint except /geo/activity,
// whose raw shape is consumed directly by the news frontend.
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-10-18T12:00:00Z", "query_time_ms": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError describes a failed request. Code is one of BAD_REQUEST,
// VALIDATION_ERROR, NOT_FOUND, RATE_LIMITED, DATABASE_ERROR, DATA_UNAVAILABLE
// or INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ActivityResponse is returned by GET /geo/activity.
type ActivityResponse struct {
	Hours         int            `json:"hours"`
	TotalArticles int            `json:"totalArticles"`
	CountryCounts map[string]int `json:"countryCounts"`
	RegionCounts  map[string]int `json:"regionCounts"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}

// EventMapRequest is the body of POST /geo/map/event. Keys of Countries may
// be names, aliases or ISO codes; values are involvement level names.
type EventMapRequest struct {
	Countries map[string]string `json:"countries" validate:"max=300,dive,keys,required,max=100,endkeys,involvement_level"`
	Regions   map[string]string `json:"regions" validate:"max=50,dive,keys,required,max=100,region,endkeys,involvement_level"`
}

// BoundaryQuery holds the parameters of GET /geo/boundary.
type BoundaryQuery struct {
	Name string  `json:"name" validate:"required,max=200"`
	Lat  float64 `json:"lat" validate:"latitude"`
	Lon  float64 `json:"lon" validate:"longitude"`
}

// ResolveQuery holds the parameters of GET /geo/resolve.
type ResolveQuery struct {
	ID string `json:"id" validate:"required,max=100"`
}

// CountriesResponse is returned by GET /geo/countries.
type CountriesResponse struct {
	Countries     interface{} `json:"countries"`
	Regions       interface{} `json:"regions"`
	Aliases       interface{} `json:"aliases"`
	RegionAliases interface{} `json:"regionAliases"`
}

// ResolveResponse is returned by GET /geo/resolve. Kind is "country" or
// "region"; exactly one of Country and Region is set.
type ResolveResponse struct {
	Query       string      `json:"query"`
	Kind        string      `json:"kind"`
	DisplayName string      `json:"displayName"`
	Country     interface{} `json:"country,omitempty"`
	Region      interface{} `json:"region,omitempty"`
	MemberOf    []string    `json:"memberOf,omitempty"`
}
