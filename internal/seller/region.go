// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package seller

import (
	"strings"
	"unicode"

	"github.com/tomtom215/cratedigger/internal/models"
)

// usStates holds the two-letter US state and district abbreviations.
// Checked before country tokens so "Sacramento, CA" classifies as US even
// though CA is also the Canada country code.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {},
}

// caProvinces holds Canadian province and territory abbreviations.
var caProvinces = map[string]struct{}{
	"ON": {}, "QC": {}, "BC": {}, "AB": {}, "MB": {}, "SK": {},
	"NS": {}, "NB": {}, "NL": {}, "PE": {}, "YT": {}, "NT": {}, "NU": {},
}

// usTokens / caTokens / ukTokens are whole-token country markers.
var (
	usTokens = map[string]struct{}{"US": {}, "USA": {}}
	caTokens = map[string]struct{}{"CANADA": {}}
	ukTokens = map[string]struct{}{"UK": {}, "GB": {}}
	euTokens = map[string]struct{}{"EU": {}, "EUROPE": {}}
)

// usPhrases etc. are substring markers for spelled-out forms.
var (
	usPhrases = []string{"UNITED STATES", "U.S."}
	ukPhrases = []string{"UNITED KINGDOM", "GREAT BRITAIN", "ENGLAND", "SCOTLAND", "WALES", "NORTHERN IRELAND"}
	euPhrases = []string{
		"GERMANY", "FRANCE", "ITALY", "SPAIN", "NETHERLANDS", "BELGIUM",
		"AUSTRIA", "PORTUGAL", "IRELAND", "SWEDEN", "DENMARK", "FINLAND",
		"POLAND", "GREECE", "CZECH", "HUNGARY", "ROMANIA", "BULGARIA",
		"CROATIA", "SLOVAKIA", "SLOVENIA", "ESTONIA", "LATVIA", "LITHUANIA",
		"LUXEMBOURG", "MALTA", "CYPRUS",
	}
)

// NormalizeRegion classifies a free-text seller location into a coarse
// region bucket. Rule-based and total: anything unrecognized is OTHER.
//
// Priority: US state abbreviations beat ambiguous two-letter country
// codes ("Sacramento, CA" is US, "Toronto, Canada" is CA), then country
// tokens and spelled-out phrases in US, CA, UK, EU order.
func NormalizeRegion(location string) models.RegionCode {
	if strings.TrimSpace(location) == "" {
		return models.RegionOther
	}

	upper := strings.ToUpper(location)
	tokens := splitLocationTokens(upper)

	for _, tok := range tokens {
		if _, ok := usStates[tok]; ok {
			return models.RegionUS
		}
	}
	for _, tok := range tokens {
		if _, ok := usTokens[tok]; ok {
			return models.RegionUS
		}
	}
	for _, phrase := range usPhrases {
		if strings.Contains(upper, phrase) {
			return models.RegionUS
		}
	}

	for _, tok := range tokens {
		if _, ok := caTokens[tok]; ok {
			return models.RegionCA
		}
		if _, ok := caProvinces[tok]; ok {
			return models.RegionCA
		}
	}

	// UK before EU so "Northern Ireland" does not match the "Ireland"
	// phrase first.
	for _, tok := range tokens {
		if _, ok := ukTokens[tok]; ok {
			return models.RegionUK
		}
	}
	for _, phrase := range ukPhrases {
		if strings.Contains(upper, phrase) {
			return models.RegionUK
		}
	}

	for _, tok := range tokens {
		if _, ok := euTokens[tok]; ok {
			return models.RegionEU
		}
	}
	for _, phrase := range euPhrases {
		if strings.Contains(upper, phrase) {
			return models.RegionEU
		}
	}

	return models.RegionOther
}

// splitLocationTokens splits on any non-letter so "Portland, OR" and
// "Portland/OR" tokenize identically.
func splitLocationTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
