package extract

import (
	"regexp"
	"sort"
	"strings"
)

// UnexpectedCap bounds the unexpected-term sample kept per document.
const UnexpectedCap = 5

var capitalizedRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

// SkillSet is a set of canonical skill names matched case-insensitively
// while preserving the canonical display form. The zero value is an
// empty set.
type SkillSet struct {
	display map[string]string
}

// NewSkillSet builds a SkillSet from canonical names. Blank entries are
// dropped; on case-insensitive duplicates the first display form wins.
func NewSkillSet(names ...string) SkillSet {
	set := SkillSet{display: make(map[string]string, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := set.display[key]; !ok {
			set.display[key] = name
		}
	}
	return set
}

func (s SkillSet) Len() int { return len(s.display) }

// Contains reports case-insensitive membership.
func (s SkillSet) Contains(name string) bool {
	_, ok := s.display[strings.ToLower(name)]
	return ok
}

// Names returns the canonical display forms, sorted for deterministic
// output.
func (s SkillSet) Names() []string {
	names := make([]string, 0, len(s.display))
	for _, display := range s.display {
		names = append(names, display)
	}
	sort.Strings(names)
	return names
}

// Join renders the set as a sorted, separator-joined display string.
func (s SkillSet) Join(sep string) string {
	return strings.Join(s.Names(), sep)
}

// Difference returns the members of s not present in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	diff := SkillSet{display: make(map[string]string)}
	for key, display := range s.display {
		if _, ok := other.display[key]; !ok {
			diff.display[key] = display
		}
	}
	return diff
}

// Match reports which required skills appear in the text
// (case-insensitive substring containment) together with a bounded
// sample of capitalized terms outside the required set. The sample is
// deduplicated and kept in first-discovered order; it is a noisy
// discovery signal for a reviewer, not a verified skill list.
func Match(text string, required SkillSet) (detected SkillSet, unexpected []string) {
	lower := strings.ToLower(text)
	detected = SkillSet{display: make(map[string]string)}
	for key, display := range required.display {
		if strings.Contains(lower, key) {
			detected.display[key] = display
		}
	}

	seen := make(map[string]bool)
	for _, token := range capitalizedRe.FindAllString(text, -1) {
		if required.Contains(token) || seen[token] {
			continue
		}
		seen[token] = true
		unexpected = append(unexpected, token)
		if len(unexpected) == UnexpectedCap {
			break
		}
	}
	return detected, unexpected
}
