package templates

import (
	"html/template"
	"strings"

	"resumeforge/pkg/models"
)

// viewFuncs are the helpers available to every template document
var viewFuncs = template.FuncMap{
	"join": strings.Join,
}

// skillGroup is one display bucket of skills sharing a category
type skillGroup struct {
	Category string
	Skills   []models.Skill
}

// experienceView wraps an experience entry with its display end date resolved:
// ongoing roles show "Present" regardless of the stored end date.
type experienceView struct {
	models.Experience
	DisplayEnd string
}

// resumeView is the data every template document executes against
type resumeView struct {
	Personal       models.PersonalInfo
	Summary        string
	Experience     []experienceView
	Education      []models.Education
	Skills         []models.Skill
	SkillGroups    []skillGroup
	Projects       []models.Project
	Certifications []models.Certification
	Languages      []models.Language
	Awards         []models.Award
}

func newResumeView(doc models.ResumeDocument) resumeView {
	view := resumeView{
		Personal:       doc.PersonalInfo,
		Summary:        doc.Summary,
		Education:      doc.Education,
		Skills:         doc.Skills,
		SkillGroups:    groupSkills(doc.Skills),
		Projects:       doc.Projects,
		Certifications: doc.Certifications,
		Languages:      doc.Languages,
		Awards:         doc.Awards,
	}
	for _, exp := range doc.Experience {
		end := exp.EndDate
		if exp.Current {
			end = "Present"
		}
		view.Experience = append(view.Experience, experienceView{Experience: exp, DisplayEnd: end})
	}
	return view
}

// groupSkills buckets skills by category, groups ordered by first appearance of
// their category and items kept in list order within each group
func groupSkills(skills []models.Skill) []skillGroup {
	var groups []skillGroup
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, skillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}

// skillNames returns the names within a group, for templates that join them into
// a single run of text
func (g skillGroup) Names() []string {
	names := make([]string, len(g.Skills))
	for i, skill := range g.Skills {
		names[i] = skill.Name
	}
	return names
}
