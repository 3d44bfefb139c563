// Package matching implements the pure tag-set logic of the proximity engine:
// deriving effective interest/activity sets from profile fields and scoring
// the overlap between a traveler and a business.
package matching

import (
	"strings"

	"wayfare/internal/domain/entity"
)

// Normalization selects how tags are compared.
type Normalization int

const (
	// NormalizationExact compares tags byte-for-byte as stored. This is the
	// historical behavior: "Hiking" and "hiking" do not match.
	NormalizationExact Normalization = iota
	// NormalizationFold trims surrounding whitespace and case-folds tags
	// before comparing. Matched tags are still reported in their original
	// spelling.
	NormalizationFold
)

// TagProfile is a party's effective interest and activity tag sets.
// Both slices are deduplicated and keep first-seen order.
type TagProfile struct {
	Interests  []string
	Activities []string
}

// TravelerTags derives a traveler's effective tag sets: the union of the
// explicitly declared tags and the tags derived from broader travel
// preferences. Absent fields contribute nothing; the result is never nil.
func TravelerTags(profile *entity.TravelerProfile) TagProfile {
	if profile == nil {
		return TagProfile{}
	}

	return TagProfile{
		Interests:  unionTags(profile.Interests, profile.TravelStyles),
		Activities: unionTags(profile.Activities, profile.TripTypes),
	}
}

// BusinessTags derives a business's effective tag sets from its declared
// interest and activity tags.
func BusinessTags(profile *entity.BusinessProfile) TagProfile {
	if profile == nil {
		return TagProfile{}
	}

	return TagProfile{
		Interests:  unionTags(profile.Interests),
		Activities: unionTags(profile.Activities),
	}
}

// unionTags merges the sources into one deduplicated slice, preserving the
// order tags were first seen. Empty strings are dropped.
func unionTags(sources ...[]string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, source := range sources {
		for _, tag := range source {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}

	return out
}

// canonical returns the comparison key for a tag under the given normalization.
func canonical(tag string, norm Normalization) string {
	if norm == NormalizationFold {
		return strings.ToLower(strings.TrimSpace(tag))
	}

	return tag
}

// intersect returns the tags of a that also appear in b, compared under norm.
// Results keep a's order and original spelling.
func intersect(a, b []string, norm Normalization) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	keys := make(map[string]struct{}, len(b))
	for _, tag := range b {
		keys[canonical(tag, norm)] = struct{}{}
	}

	var matched []string
	seen := make(map[string]struct{})
	for _, tag := range a {
		key := canonical(tag, norm)
		if _, ok := keys[key]; !ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		matched = append(matched, tag)
	}

	return matched
}
