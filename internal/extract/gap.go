package extract

import (
	"regexp"
	"strings"
)

// Gap is the skill delta between what a candidate shows and what the
// role requires.
type Gap struct {
	Missing SkillSet
	Extra   SkillSet
}

// Reconcile computes Missing = required − detected and
// Extra = detected − required. The detected set may come from the
// matcher or from a candidate's self-declared skill list; call sites
// must be explicit about which source feeds it.
func Reconcile(detected, required SkillSet) Gap {
	return Gap{
		Missing: required.Difference(detected),
		Extra:   detected.Difference(required),
	}
}

var declaredSkillsRe = regexp.MustCompile(`(?im)^\s*skills?\s*[:\-]\s*(.+)$`)

// DeclaredSkills parses the comma-separated list following a "Skills:"
// label, the candidate's own claim of what they know. Returns an empty
// set when no such line exists.
func DeclaredSkills(text string) SkillSet {
	m := declaredSkillsRe.FindStringSubmatch(text)
	if m == nil {
		return NewSkillSet()
	}
	return NewSkillSet(strings.Split(m[1], ",")...)
}
