package utils

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// ProfanityFilter masks banned words with '*' of the same rune length.
//   - ASCII words are matched case-insensitively on word boundaries.
//   - Other scripts are matched as plain substrings.
type ProfanityFilter struct {
	patterns []*regexp.Regexp
}

var (
	filterMu         sync.RWMutex
	defaultFilter    *ProfanityFilter
	extraBannedWords []string
)

// DefaultBannedWords keeps generated hashtags brand safe. PROFANITY_WORDS
// extends it through SetExtraBannedWords.
var DefaultBannedWords = []string{
	"fuck", "fucking", "fucker", "motherfucker", "shit", "bullshit",
	"bastard", "bitch", "dick", "cock", "pussy", "cunt",
	"asshole", "dumbass", "jackass", "retard", "moron", "slut", "whore",
	"faggot", "idiot", "crap", "douche", "douchebag",
	"wanker", "twat", "prick", "arsehole", "bollocks",
	"damn", "dammit", "piss", "pissed",
	"cocksucker", "shithead", "dipshit", "dumbfuck",
	"porn", "sex", "nsfw", "xxx",
}

// SetExtraBannedWords replaces the words added on top of DefaultBannedWords.
// The default filter is rebuilt on next use.
func SetExtraBannedWords(words []string) {
	filterMu.Lock()
	defer filterMu.Unlock()
	extraBannedWords = append([]string(nil), words...)
	defaultFilter = nil
}

// MaskProfanity masks profanity in s using the default filter.
func MaskProfanity(s string) string {
	if s == "" {
		return s
	}
	return currentFilter().Mask(s)
}

func currentFilter() *ProfanityFilter {
	filterMu.RLock()
	f := defaultFilter
	filterMu.RUnlock()
	if f != nil {
		return f
	}

	filterMu.Lock()
	defer filterMu.Unlock()
	if defaultFilter == nil {
		words := make([]string, 0, len(DefaultBannedWords)+len(extraBannedWords))
		words = append(words, DefaultBannedWords...)
		words = append(words, extraBannedWords...)
		defaultFilter = NewProfanityFilter(words)
	}
	return defaultFilter
}

// ContainsProfanity reports whether MaskProfanity would change s.
func ContainsProfanity(s string) bool {
	return MaskProfanity(s) != s
}

// NewProfanityFilter builds a filter from banned words, longest first so
// longer words win over their substrings.
func NewProfanityFilter(words []string) *ProfanityFilter {
	uniq := make([]string, 0, len(words))
	seen := map[string]struct{}{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	sort.Slice(uniq, func(i, j int) bool {
		return len([]rune(uniq[i])) > len([]rune(uniq[j]))
	})

	pats := make([]*regexp.Regexp, 0, len(uniq))
	for _, w := range uniq {
		pattern := regexp.QuoteMeta(w)
		if isASCIIWord(w) {
			pattern = `(?i)\b` + pattern + `\b`
		}
		pats = append(pats, regexp.MustCompile(pattern))
	}
	return &ProfanityFilter{patterns: pats}
}

func (pf *ProfanityFilter) Mask(s string) string {
	if pf == nil || len(pf.patterns) == 0 || s == "" {
		return s
	}
	out := s
	for _, re := range pf.patterns {
		out = re.ReplaceAllStringFunc(out, func(m string) string {
			return strings.Repeat("*", len([]rune(m)))
		})
	}
	return out
}

func isASCIIWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
