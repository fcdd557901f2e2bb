// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package models

import (
	"strings"
	"time"
)

// Article is one published article as read from the article store.
// Only Title and CreatedAt are guaranteed; the other text fields may be empty.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AltTitle    string    `json:"altTitle,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Text joins the non-empty text fields with single spaces, in the order
// title, alt title, description, category.
func (a *Article) Text() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{a.Title, a.AltTitle, a.Description, a.Category} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
