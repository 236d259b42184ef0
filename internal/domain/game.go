package domain

import (
	"regexp"
	"strings"
)

type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ExternalRef string `json:"external_ref,omitempty"`
}

var nonWordRun = regexp.MustCompile(`[^a-z0-9]+`)

// GameIDFromName derives the stable identifier for a game from its
// display name: lowercase, runs of non-alphanumeric characters collapse
// to a single dash, leading and trailing runs are stripped.
// "Mass Effect 3: From Ashes" becomes "gid-mass-effect-3-from-ashes".
// The derivation is idempotent, so creating the same game twice yields
// the same node.
func GameIDFromName(name string) string {
	slug := nonWordRun.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	return "gid-" + slug
}
