package settings

import (
	"context"
	"fmt"
	"strings"

	"invites-backend/internal/sheets"
)

// Settings is the fixed schema of event-display strings. Physically it lives
// as independent key/value rows, so any subset of keys may be present; the
// rest fall back to Defaults.
type Settings struct {
	DedicationDateDisplay string `json:"dedicationDateDisplay"`
	DedicationTimeDisplay string `json:"dedicationTimeDisplay"`
	LocationDisplay       string `json:"locationDisplay"`
	DedicationTimeLabel   string `json:"dedicationTimeLabel"`
	LocationLabel         string `json:"locationLabel"`
	DateLabel             string `json:"dateLabel"`
	AddressLabel          string `json:"addressLabel"`
	MapLabel              string `json:"mapLabel"`
	DressCodeLabel        string `json:"dressCodeLabel"`
	HostsLabel            string `json:"hostsLabel"`
	GiftNote              string `json:"giftNote"`
	EventTitle            string `json:"eventTitle"`
	CelebrantName         string `json:"celebrantName"`
	CelebrantImageURL     string `json:"celebrantImageUrl"`
	VenueAddress          string `json:"venueAddress"`
	VenueMapURL           string `json:"venueMapUrl"`
	DressCode             string `json:"dressCode"`
	RegistryNote          string `json:"registryNote"`
	RSVPDeadlineISO       string `json:"rsvpDeadlineISO"`
	HostNames             string `json:"hostNames"`
	ThemeName             string `json:"themeName"`
	BackgroundImageURL    string `json:"backgroundImageUrl"`
	AccentColor           string `json:"accentColor"`
	InvitationTemplate    string `json:"invitationTemplate"`
}

// Defaults are returned for every key absent from the sheet (or when the
// sheet cannot be read at all).
var Defaults = Settings{
	DedicationDateDisplay: "Oct 11, 2025 (Saturday)",
	DedicationTimeDisplay: "10:00 AM",
	LocationDisplay:       "Celebration Church | 243 Purok 2 Banlic, Calamba City, Laguna",
	DedicationTimeLabel:   "Time",
	LocationLabel:         "Location",
	DateLabel:             "Date",
	AddressLabel:          "Address",
	MapLabel:              "Map",
	DressCodeLabel:        "Dress code",
	HostsLabel:            "Hosts",
	GiftNote:              "Your presence is the most precious gift we could ask for. If you wish to bless Lauan further, we would deeply appreciate monetary gifts for his future needs or gift checks from department stores. 💙",
	EventTitle:            "Dedication Ceremony",
	VenueMapURL:           "https://maps.app.goo.gl/WKZxYMgytgadwv9i7",
	InvitationTemplate:    "classic",
}

// Keys lists every settings key in schema order. It drives merge order,
// deterministic upsert order and the handler's allowed-key filter.
var Keys = []string{
	"dedicationDateDisplay",
	"dedicationTimeDisplay",
	"locationDisplay",
	"dedicationTimeLabel",
	"locationLabel",
	"dateLabel",
	"addressLabel",
	"mapLabel",
	"dressCodeLabel",
	"hostsLabel",
	"giftNote",
	"eventTitle",
	"celebrantName",
	"celebrantImageUrl",
	"venueAddress",
	"venueMapUrl",
	"dressCode",
	"registryNote",
	"rsvpDeadlineISO",
	"hostNames",
	"themeName",
	"backgroundImageUrl",
	"accentColor",
	"invitationTemplate",
}

// fieldMap binds each sheet key to its struct field. Single source for both
// reading and writing, next to Keys.
func (s *Settings) fieldMap() map[string]*string {
	return map[string]*string{
		"dedicationDateDisplay": &s.DedicationDateDisplay,
		"dedicationTimeDisplay": &s.DedicationTimeDisplay,
		"locationDisplay":       &s.LocationDisplay,
		"dedicationTimeLabel":   &s.DedicationTimeLabel,
		"locationLabel":         &s.LocationLabel,
		"dateLabel":             &s.DateLabel,
		"addressLabel":          &s.AddressLabel,
		"mapLabel":              &s.MapLabel,
		"dressCodeLabel":        &s.DressCodeLabel,
		"hostsLabel":            &s.HostsLabel,
		"giftNote":              &s.GiftNote,
		"eventTitle":            &s.EventTitle,
		"celebrantName":         &s.CelebrantName,
		"celebrantImageUrl":     &s.CelebrantImageURL,
		"venueAddress":          &s.VenueAddress,
		"venueMapUrl":           &s.VenueMapURL,
		"dressCode":             &s.DressCode,
		"registryNote":          &s.RegistryNote,
		"rsvpDeadlineISO":       &s.RSVPDeadlineISO,
		"hostNames":             &s.HostNames,
		"themeName":             &s.ThemeName,
		"backgroundImageUrl":    &s.BackgroundImageURL,
		"accentColor":           &s.AccentColor,
		"invitationTemplate":    &s.InvitationTemplate,
	}
}

const keyValueSpan = "A:B"

// Service implements the key/value settings store over the tabular backend.
type Service struct {
	Store sheets.Store
	Sheet string
}

// Get reads the full key/value range and merges it over Defaults. A read
// failure (e.g. the sheet does not exist yet) yields plain Defaults; settings
// retrieval never hard-fails the caller. When a key appears on more than one
// row, the first occurrence wins and later rows are shadowed.
func (s *Service) Get(ctx context.Context) Settings {
	merged := Defaults
	rows, err := s.Store.ReadColumns(ctx, s.Sheet, keyValueSpan)
	if err != nil {
		return merged
	}

	kv := make(map[string]string, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(cell(row, 0))
		if key == "" {
			continue
		}
		if _, seen := kv[key]; seen {
			continue
		}
		kv[key] = cell(row, 1)
	}

	fields := merged.fieldMap()
	for _, key := range Keys {
		if v, ok := kv[key]; ok {
			*fields[key] = v
		}
	}
	return merged
}

// Update upserts the provided keys: existing rows are overwritten in place,
// unseen keys are appended. The sheet is created (with a key,value header) on
// first use. Returns the re-read merged settings.
func (s *Service) Update(ctx context.Context, partial map[string]string) (Settings, error) {
	s.ensureSheet(ctx)

	rows, err := s.Store.ReadColumns(ctx, s.Sheet, keyValueSpan)
	if err != nil {
		// freshly created sheet may read as empty
		rows = nil
	}
	keyRow := make(map[string]int, len(rows))
	for i, row := range rows {
		key := strings.TrimSpace(cell(row, 0))
		if key == "" {
			continue
		}
		if _, seen := keyRow[key]; seen {
			continue
		}
		keyRow[key] = i + 1 // 1-indexed sheet row
	}

	for _, key := range Keys {
		value, ok := partial[key]
		if !ok {
			continue
		}
		if row, exists := keyRow[key]; exists {
			rng := fmt.Sprintf("B%d", row)
			if err := s.Store.Update(ctx, s.Sheet, rng, [][]interface{}{{value}}); err != nil {
				return Settings{}, err
			}
		} else {
			if err := s.Store.Append(ctx, s.Sheet, keyValueSpan, [][]interface{}{{key, value}}); err != nil {
				return Settings{}, err
			}
		}
	}

	return s.Get(ctx), nil
}

// ensureSheet creates the settings sheet with a header row if it is missing.
// Best effort: if this fails, the following writes surface the real error.
func (s *Service) ensureSheet(ctx context.Context) {
	exists, err := s.Store.SheetExists(ctx, s.Sheet)
	if err != nil || exists {
		return
	}
	if err := s.Store.CreateSheet(ctx, s.Sheet); err != nil {
		return
	}
	_ = s.Store.Update(ctx, s.Sheet, "A1:B1", [][]interface{}{{"key", "value"}})
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
