// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

var spaceIDs = [...]string{
	SRGB:          "srgb",
	AdobeRGB1998:  "adobergb1998",
	AppleRGB:      "applergb",
	BestRGB:       "bestrgb",
	BetaRGB:       "betargb",
	BruceRGB:      "brucergb",
	CIERGB:        "ciergb",
	ColorMatchRGB: "colormatchrgb",
	DonRGB4:       "donrgb4",
	ECIRGBv2:      "ecirgbv2",
	EktaSpacePS5:  "ektaspaceps5",
	NTSCRGB:       "ntscrgb",
	PALSECAMRGB:   "palsecamrgb",
	ProPhotoRGB:   "prophotorgb",
	SMPTECRGB:     "smptecrgb",
	WideGamutRGB:  "widegamutrgb",
}

// spaceAliases are the accepted alternative identifiers,
// already in normalized (folded, alphanumeric only) form.
var spaceAliases = map[string]Space{
	"adobergb":     AdobeRGB1998,
	"adobe1998":    AdobeRGB1998,
	"apple":        AppleRGB,
	"best":         BestRGB,
	"beta":         BetaRGB,
	"bruce":        BruceRGB,
	"cie":          CIERGB,
	"colormatch":   ColorMatchRGB,
	"don4":         DonRGB4,
	"donrgb":       DonRGB4,
	"ecirgb":       ECIRGBv2,
	"eci":          ECIRGBv2,
	"ektaspace":    EktaSpacePS5,
	"ekta":         EktaSpacePS5,
	"ntsc":         NTSCRGB,
	"palsecam":     PALSECAMRGB,
	"pal":          PALSECAMRGB,
	"secam":        PALSECAMRGB,
	"prophoto":     ProPhotoRGB,
	"rommrgb":      ProPhotoRGB,
	"smptec":       SMPTECRGB,
	"smpte":        SMPTECRGB,
	"widegamut":    WideGamutRGB,
	"standardrgb":  SRGB,
	"iec6196621":   SRGB,
	"standardsrgb": SRGB,
}

var whiteIDs = [...]string{
	WhiteD65: "d65",
	WhiteD50: "d50",
	WhiteA:   "a",
	WhiteB:   "b",
	WhiteC:   "c",
	WhiteD55: "d55",
	WhiteD75: "d75",
	WhiteE:   "e",
	WhiteF2:  "f2",
	WhiteF7:  "f7",
	WhiteF11: "f11",
}

// minSuggestSimilarity is the Levenshtein similarity an identifier
// needs to be suggested for an unknown name.
const minSuggestSimilarity = 0.6

// suggest returns the identifier most similar to key, or "" when none
// reaches [minSuggestSimilarity]. Ties go to the earliest identifier.
func suggest(key string, ids []string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", minSuggestSimilarity
	for _, id := range ids {
		if sim := strutil.Similarity(key, id, lev); sim > bestSim {
			best, bestSim = id, sim
		}
	}
	return best
}

// unknownName returns the error for an unrecognized identifier,
// naming the closest known one when there is one.
func unknownName(fn string, err error, name, key string, ids []string) error {
	if s := suggest(key, ids); s != "" {
		return fmt.Errorf("%s: %w: %q (did you mean %q?)", fn, err, name, s)
	}
	return fmt.Errorf("%s: %w: %q", fn, err, name)
}

// normalize folds the case of the identifier and drops everything
// but letters and digits, so that "PAL / SECAM" becomes "palsecam".
func normalize(s string) string {
	s = cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// String returns the canonical identifier of the space, e.g. "adobergb1998".
func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceIDs) {
		return strconv.FormatInt(int64(s), 10)
	}
	return spaceIDs[s]
}

// SpaceValues returns all known color spaces.
func SpaceValues() []Space {
	vs := make([]Space, len(spaceIDs))
	for i := range vs {
		vs[i] = Space(i)
	}
	return vs
}

// ParseSpace returns the [Space] for the given identifier. Matching is
// case-insensitive, ignores spaces and punctuation, and accepts both
// the display names ("Adobe RGB (1998)") and aliases ("PAL / SECAM").
// An empty string yields the default [SRGB].
func ParseSpace(name string) (Space, error) {
	key := normalize(name)
	if key == "" {
		return SRGB, nil
	}
	for i, id := range spaceIDs {
		if id == key {
			return Space(i), nil
		}
	}
	if s, ok := spaceAliases[key]; ok {
		return s, nil
	}
	ids := slices.Concat(spaceIDs[:], slices.Sorted(maps.Keys(spaceAliases)))
	return SRGB, unknownName("cie.ParseSpace", ErrUnknownSpace, name, key, ids)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Space) UnmarshalText(text []byte) error {
	v, err := ParseSpace(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String returns the canonical identifier of the white, e.g. "d65".
func (w White) String() string {
	if w < 0 || int(w) >= len(whiteIDs) {
		return strconv.FormatInt(int64(w), 10)
	}
	return whiteIDs[w]
}

// WhiteValues returns all known reference whites.
func WhiteValues() []White {
	vs := make([]White, len(whiteIDs))
	for i := range vs {
		vs[i] = White(i)
	}
	return vs
}

// ParseWhite returns the [White] for the given identifier, matched
// case-insensitively ("D65", "d65", "d 65"). An empty string yields
// the default [WhiteD65].
func ParseWhite(name string) (White, error) {
	key := normalize(name)
	if key == "" {
		return WhiteD65, nil
	}
	for i, id := range whiteIDs {
		if id == key {
			return White(i), nil
		}
	}
	return WhiteD65, unknownName("cie.ParseWhite", ErrUnknownWhite, name, key, whiteIDs[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (w White) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (w *White) UnmarshalText(text []byte) error {
	v, err := ParseWhite(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// String returns the name of the companding function.
func (c Companding) String() string {
	switch c {
	case CompandingGamma:
		return "gamma"
	case CompandingSRGB:
		return "srgb"
	case CompandingLStar:
		return "lstar"
	}
	return strconv.FormatInt(int64(c), 10)
}
