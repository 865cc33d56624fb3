// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/tomtom215/cratedigger/internal/textnorm"
)

// fingerprintHexLen is the truncated fingerprint width. 128 bits of
// SHA-256 output; the residual collision risk at this width is accepted
// rather than mitigated.
const fingerprintHexLen = 32

// Fingerprint derives the stable identity hash for a release from its
// normalized attributes. Year and catalog number are optional and only
// contribute when present, so listings that omit them still fingerprint
// consistently with each other.
func Fingerprint(title, artist string, year *int, catalog string) string {
	parts := []string{
		textnorm.Normalize(artist),
		textnorm.Normalize(title),
	}
	if year != nil {
		parts = append(parts, strconv.Itoa(*year))
	}
	if c := textnorm.Normalize(catalog); c != "" {
		parts = append(parts, c)
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:fingerprintHexLen]
}
