package models

import "strings"

// DefaultPostTime is used when a draft has no time of day.
const DefaultPostTime = "12:00"

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists every supported recurrence in display order.
var Frequencies = []Frequency{FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

var Platforms = []Platform{PlatformFacebook, PlatformTwitter, PlatformInstagram, PlatformLinkedIn}

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformTwitter, PlatformInstagram, PlatformLinkedIn:
		return true
	}
	return false
}

// Post is one scheduled content item. The JSON form is the persisted form.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	Frequency   Frequency  `json:"frequency"`
	StartDate   Date       `json:"startDate"`
	PostTime    string     `json:"postTime"`
	Platforms   []Platform `json:"platforms"`
}

// NormalizePlatforms lower-cases, trims and de-duplicates platform ids,
// keeping first-seen order. A nil input becomes an empty set.
func NormalizePlatforms(in []Platform) []Platform {
	out := make([]Platform, 0, len(in))
	seen := make(map[Platform]struct{}, len(in))
	for _, p := range in {
		p = Platform(strings.ToLower(strings.TrimSpace(string(p))))
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
