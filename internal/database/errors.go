// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package database

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/tomtom215/geoimpact/internal/logging"
)

// closeWithLog closes a resource and logs any error.
// A nil logger falls back to the global logger.
func closeWithLog(closer io.Closer, logger *zerolog.Logger, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		if logger == nil {
			l := logging.Logger()
			logger = &l
		}
		logger.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
