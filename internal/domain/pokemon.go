package domain

import (
	"strconv"
	"strings"
)

// Summary is the minimal list-item record for one Pokémon.
// Identity is the name (unique in a listing) or the id derived from URL.
type Summary struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot is one of a Pokémon's (up to two) typed slots.
type TypeSlot struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
}

// Detail is the canonical per-Pokémon record exposed by the service.
type Detail struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Types          []TypeSlot `json:"types"`
	Height         int        `json:"height"`
	Weight         int        `json:"weight"`
	BaseExperience int        `json:"baseExperience"`
	SpriteURL      string     `json:"spriteUrl"`
	SpeciesURL     string     `json:"speciesUrl"`
}

// FlavorText is one game-version description of a species.
type FlavorText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
	VersionName  string `json:"versionName"`
}

// Genus is a localized species category line.
type Genus struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

// LocalizedName is a species name in one language.
type LocalizedName struct {
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
}

// Species carries the cross-version descriptive record for a species id.
type Species struct {
	FlavorTextEntries []FlavorText    `json:"flavorTextEntries"`
	Genera            []Genus         `json:"genera"`
	LocalizedNames    []LocalizedName `json:"localizedNames"`
}

// ListPage is one fetch unit of the paginated upstream listing.
type ListPage struct {
	Items     []Summary `json:"items"`
	HasNext   bool      `json:"hasNext"`
	PageIndex int       `json:"pageIndex"`
}

// IDFromURL derives the numeric id from a resource URL: the second-to-last
// path segment (upstream URLs end with a trailing slash).
func IDFromURL(url string) int {
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return id
}

// SummaryID returns the summary's explicit id when set, otherwise the id
// derived from its URL.
func SummaryID(s Summary) int {
	if s.ID > 0 {
		return s.ID
	}
	return IDFromURL(s.URL)
}
