// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/models"
)

// seedNamespace derives stable article ids so reseeding is idempotent.
var seedNamespace = uuid.MustParse("6f1c2a52-9d8e-4b5e-8f43-3a1d7c0e2b91")

type mockHeadline struct {
	title       string
	description string
	category    string
}

var mockHeadlines = []mockHeadline{
	{"Ukraine and Russia agree to new round of prisoner exchanges", "Talks brokered by Turkey and the UAE continue in Istanbul.", "World"},
	{"Kremlin rejects ceasefire proposal", "Moscow says the plan ignores its security demands.", "World"},
	{"EU leaders meet in Brussels over energy prices", "France and Germany push for a joint gas purchasing scheme.", "Europe"},
	{"Floods displace thousands in Pakistan", "Heavy monsoon rains hit Sindh province for a third week.", "Asia"},
	{"Japanese yen slides to a new low against the dollar", "The Bank of Japan holds rates steady.", "Business"},
	{"Brazil's Lula meets Argentine president in Buenos Aires", "The leaders discuss a Mercosur trade deal with the EU.", "Americas"},
	{"Wildfires spread across southern Australia", "Crews in Victoria battle blazes near Melbourne.", "Australia"},
	{"Nigeria and Ghana sign regional power agreement", "West Africa grid link to be completed by 2028.", "Africa"},
	{"Kenyan runners dominate Berlin marathon", "", "Sport"},
	{"Canada wildfire smoke drifts over New York", "Air quality alerts issued across the northeastern US.", "Americas"},
	{"India launches lunar probe", "ISRO says the lander will touch down near the south pole.", "Science"},
	{"Chinese exports fall for third month", "Beijing announces new stimulus measures.", "Business"},
	{"Israel and Hamas negotiators return to Cairo", "Egypt and Qatar mediate talks on a Gaza truce.", "Middle East"},
	{"Iranian drones intercepted over Iraq", "", "Middle East"},
	{"Mexico City hit by magnitude 6.1 earthquake", "No major damage reported in the capital.", "Americas"},
	{"South Korea and Japan hold first summit in years", "Seoul and Tokyo pledge closer security ties.", "Asia"},
	{"UK inflation eases to 3.9%", "The Bank of England signals rates have peaked.", "Business"},
	{"Polish farmers block border crossings with Ukraine", "Protests over grain imports enter a second week.", "Europe"},
	{"Sudan conflict: aid convoys reach Darfur", "The UN warns of famine in parts of the country.", "Africa"},
	{"Indonesian volcano erupts on Java", "Villages evacuated as ash reaches 5km.", "Asia"},
	{"Chile elects new constitutional council", "", "Americas"},
	{"Vatican hosts peace envoys from Kyiv", "Pope receives Ukrainian delegation.", "Europe"},
	{"Greek ferry strike strands tourists", "Athens says services will resume on Monday.", "Europe"},
	{"Saudi Arabia raises oil output", "OPEC+ members meet in Vienna.", "Business"},
	{"New Zealand votes in general election", "Wellington counts early ballots.", "Asia-Pacific"},
	{"Ethiopia and Eritrea border talks resume", "", "Africa"},
	{"Scandinavian heatwave breaks records in Norway and Sweden", "", "Europe"},
	{"Venezuelan migrants cross Darien Gap in record numbers", "Panama and Colombia ask for international help.", "Americas"},
	{"Taiwan reports Chinese military aircraft near island", "", "Asia"},
	{"Moroccan rescuers search for quake survivors", "The Atlas mountains region is the worst hit.", "Africa"},
}

// SeedMockData seeds the article store with demo headlines spread over the
// last three days. Ids are deterministic, so running it twice adds nothing.
func (db *DB) SeedMockData(ctx context.Context) error {
	logging.Info().Int("articles", len(mockHeadlines)).Msg("Seeding article store with mock headlines...")

	now := time.Now().UTC()
	articles := make([]models.Article, 0, len(mockHeadlines))
	for i, h := range mockHeadlines {
		articles = append(articles, models.Article{
			ID:          uuid.NewSHA1(seedNamespace, []byte(h.title)).String(),
			Title:       h.title,
			Description: h.description,
			Category:    h.category,
			// One headline every 2h20m covers roughly 70 hours.
			CreatedAt: now.Add(-time.Duration(i) * 140 * time.Minute),
		})
	}

	inserted, err := db.InsertArticles(ctx, articles)
	if err != nil {
		return fmt.Errorf("failed to seed articles: %w", err)
	}

	logging.Info().Int("inserted", inserted).Msg("Mock headlines seeded")
	return nil
}
