package extract

import (
	"regexp"
	"strings"
)

// Sentinel values reported when a heuristic finds nothing.
const (
	NameUnknown            = "Unknown"
	EmailNotFound          = "Not Found"
	ExperienceNotMentioned = "Not Mentioned"
	RoleGeneral            = "General"
)

// DefaultRoles is the closed role vocabulary scanned by default.
var DefaultRoles = []string{"developer", "engineer", "analyst", "manager", "designer"}

var (
	nameRe       = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*`)
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	experienceRe = regexp.MustCompile(`(?i)(\d+)\s*(?:years|yrs)`)
)

// Fields holds the identity signals pulled from one document's text.
type Fields struct {
	Name       string
	Email      string
	Experience string
	Role       string
}

// Extractor runs the field heuristics with a configured role
// vocabulary. All scans are first-match-wins over the same immutable
// text; the heuristics are intentionally simple and their known
// ambiguities (a date-range number before "years", multiple emails)
// are accepted as-is.
type Extractor struct {
	roleRe *regexp.Regexp
}

// NewExtractor builds an Extractor. An empty vocabulary falls back to
// DefaultRoles.
func NewExtractor(roles []string) *Extractor {
	if len(roles) == 0 {
		roles = DefaultRoles
	}
	quoted := make([]string, len(roles))
	for i, role := range roles {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(role))
	}
	return &Extractor{
		roleRe: regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`),
	}
}

// Fields extracts name, email, experience and role from text. Pure
// function of the text and the configured vocabulary.
func (e *Extractor) Fields(text string) Fields {
	fields := Fields{
		Name:       NameUnknown,
		Email:      EmailNotFound,
		Experience: ExperienceNotMentioned,
		Role:       RoleGeneral,
	}

	if m := nameRe.FindString(text); m != "" {
		fields.Name = m
	}
	if m := emailRe.FindString(text); m != "" {
		fields.Email = m
	}
	if m := experienceRe.FindStringSubmatch(text); m != nil {
		fields.Experience = m[1] + " years"
	}
	if m := e.roleRe.FindString(text); m != "" {
		fields.Role = capitalize(m)
	}
	return fields
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
