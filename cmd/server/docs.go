// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// @title Geoimpact API
// @version 1.0
// @description Turns a stream of news articles into the data a map needs: which countries are mentioned and how often, how strongly each country is involved in an event, and the outline of a single place.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit on /geo: 100 requests per minute per IP address. Rejections return 429 with code RATE_LIMITED.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "countries[Ukraine] must be a valid involvement level",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-10-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/geoimpact/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health probes
//
// @tag.name Geo
// @tag.description Mention counts, render payloads, boundaries and the gazetteer
package main
