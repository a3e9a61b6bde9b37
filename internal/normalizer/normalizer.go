// Package normalizer converts the AI collaborator's loosely-structured resume
// output into the canonical ResumeDocument. Normalization is total: any subset of
// the raw keys may be absent and the result is still a fully-populated document
// with non-nil collections and present (possibly empty) string fields.
package normalizer

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
)

// DateSeparator is the en-dash glyph the collaborator uses in date-range strings
const DateSeparator = "–"

// presentMarker signals an ongoing role or degree inside a raw dates string
const presentMarker = "Present"

// IDFunc produces synthetic identifiers for list items. IDs must be unique within
// one normalization call; they carry no meaning and are never displayed.
type IDFunc func(kind string) string

// Normalizer maps RawResumeDocument values onto the canonical model
type Normalizer struct {
	newID IDFunc
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithIDFunc overrides the identifier generator, mainly for tests and for callers
// that need reproducible output
func WithIDFunc(fn IDFunc) Option {
	return func(n *Normalizer) {
		n.newID = fn
	}
}

// New creates a Normalizer. The default ID generator is a per-call counter, which
// keeps Normalize deterministic for identical input.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts a raw document into the canonical model. It is a pure
// function with no I/O and never fails; missing fields default to empty values.
func (n *Normalizer) Normalize(raw models.RawResumeDocument) models.ResumeDocument {
	newID := n.newID
	if newID == nil {
		newID = counterIDFunc()
	}

	doc := models.ResumeDocument{
		Experience:     []models.Experience{},
		Education:      []models.Education{},
		Skills:         []models.Skill{},
		Projects:       []models.Project{},
		Certifications: []models.Certification{},
		Languages:      []models.Language{},
		Awards:         []models.Award{},
	}

	if pi := raw.PersonalInfo; pi != nil {
		doc.PersonalInfo = models.PersonalInfo{
			FullName: pi.Name,
			Email:    pi.Email,
			Phone:    pi.Phone,
			Location: pi.Address,
		}
		doc.Summary = pi.Summary
	}

	for _, exp := range raw.WorkExperience {
		start, end := splitDates(exp.Dates)
		if end == "" {
			end = presentMarker
		}
		doc.Experience = append(doc.Experience, models.Experience{
			ID:        newID("exp"),
			Company:   exp.Company,
			Position:  exp.Position,
			StartDate: start,
			EndDate:   end,
			Current:   strings.Contains(exp.Dates, presentMarker),
			// The raw shape carries responsibilities as one blob; bullets are
			// not pre-split at this stage.
			Description: []string{exp.Responsibilities},
		})
	}

	for _, edu := range raw.Education {
		start, end := splitDates(edu.Dates)
		doc.Education = append(doc.Education, models.Education{
			ID:          newID("edu"),
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Field:       "",
			StartDate:   start,
			EndDate:     end,
		})
	}

	// Technical skills always precede soft skills; this ordering is part of the
	// normalization contract, not a display choice.
	if sk := raw.Skills; sk != nil {
		for _, name := range sk.Technical {
			doc.Skills = append(doc.Skills, models.Skill{
				ID:       newID("skl"),
				Name:     name,
				Level:    models.SkillLevelIntermediate,
				Category: "Technical",
			})
		}
		for _, name := range sk.Soft {
			doc.Skills = append(doc.Skills, models.Skill{
				ID:       newID("skl"),
				Name:     name,
				Level:    models.SkillLevelIntermediate,
				Category: "Soft",
			})
		}
	}

	for _, project := range raw.Projects {
		technologies := project.Technologies
		if technologies == nil {
			technologies = []string{}
		}
		doc.Projects = append(doc.Projects, models.Project{
			ID:           newID("prj"),
			Name:         project.Name,
			Description:  project.Description,
			Technologies: technologies,
			URL:          project.URL,
		})
	}

	for _, cert := range raw.Certifications {
		doc.Certifications = append(doc.Certifications, models.Certification{
			ID:     newID("crt"),
			Name:   cert.Name,
			Issuer: cert.Issuer,
			// The collaborator conflates details with the issue date at this
			// layer; mapped through unchanged until the upstream contract is
			// fixed.
			Date: cert.Details,
		})
	}

	if raw.Languages != nil {
		doc.Languages = raw.Languages
	}
	if raw.Awards != nil {
		doc.Awards = raw.Awards
	}

	return doc
}

// splitDates splits a raw date-range string ("Jan 2020 – Present") on the en-dash
// separator, trimming whitespace on both sides. A missing second segment yields an
// empty end date.
func splitDates(dates string) (start, end string) {
	parts := strings.SplitN(dates, DateSeparator, 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

// counterIDFunc returns a fresh per-call sequential generator
func counterIDFunc() IDFunc {
	counters := make(map[string]int)
	return func(kind string) string {
		counters[kind]++
		return fmt.Sprintf("%s-%d", kind, counters[kind])
	}
}
