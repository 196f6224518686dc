package utils

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{M}0-9_]+)`)

// ExtractHashtags returns the hashtags in text in first-seen order. Repeats
// (case-insensitive) and tags containing profanity are dropped.
// Example: "#Launch #damn #launch #ok" -> ["#Launch", "#ok"].
func ExtractHashtags(text string) []string {
	tags := hashtagRe.FindAllString(text, -1)
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		raw := strings.TrimPrefix(tag, "#")
		if ContainsProfanity(raw) {
			continue
		}
		key := strings.ToLower(raw)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// AppendText joins extra onto base separated by a blank line.
func AppendText(base, extra string) string {
	base = strings.TrimRight(base, " \t\n")
	extra = strings.TrimSpace(extra)
	switch {
	case extra == "":
		return base
	case base == "":
		return extra
	}
	return base + "\n\n" + extra
}
