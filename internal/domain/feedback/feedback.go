package feedback

import (
	"fmt"
	"strings"

	"resume-match/internal/domain/skill"
)

// ProjectSuggestion is one portfolio project idea tied to skills the
// candidate is missing.
type ProjectSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

type projectTemplate struct {
	Title       string
	Description string
	Skills      []string
}

var projectCatalog = []projectTemplate{
	{
		Title:       "Full-Stack Web Application",
		Description: "Build a complete web app with frontend and backend",
		Skills:      []string{"JavaScript", "React", "Node.js", "MongoDB"},
	},
	{
		Title:       "RESTful API Project",
		Description: "Create a scalable API with authentication and database",
		Skills:      []string{"Node.js", "Express.js", "MongoDB", "SQL"},
	},
	{
		Title:       "Data Analysis Project",
		Description: "Build a data processing and visualization application",
		Skills:      []string{"Python", "Machine Learning", "Data Science"},
	},
}

const maxProjectSuggestions = 3

// Strengths derives positive feedback from the skill overlap. The result
// is never empty.
func Strengths(resumeSkills, jobSkills, matchingSkills skill.Set) []string {
	var out []string

	if matchingSkills.Len() > 0 {
		out = append(out, fmt.Sprintf("Strong technical skills in %s", joinFirst(matchingSkills, 3)))
	}
	if resumeSkills.Len() > 5 {
		out = append(out, "Diverse skill set with multiple technologies")
	}
	if float64(matchingSkills.Len()) > float64(jobSkills.Len())*0.7 {
		out = append(out, "Excellent alignment with job requirements")
	}

	if len(out) == 0 {
		return []string{"Good technical foundation"}
	}
	return out
}

// Improvements derives actionable gaps. The result is never empty.
func Improvements(resumeSkills, missingSkills skill.Set) []string {
	var out []string

	if missingSkills.Len() > 0 {
		out = append(out, fmt.Sprintf("Add missing skills: %s", joinFirst(missingSkills, 3)))
	}
	if resumeSkills.Len() < 3 {
		out = append(out, "Expand your technical skill set")
	}
	if resumeSkills.Len() == 0 {
		out = append(out, "Highlight technical skills in your resume")
	}

	if len(out) == 0 {
		return []string{"Continue developing your technical skills"}
	}
	return out
}

// Projects proposes up to three catalog projects that would exercise
// skills missing from the resume. Falls back to a generic portfolio
// suggestion when nothing in the catalog applies.
func Projects(jobSkills, resumeSkills skill.Set) []ProjectSuggestion {
	missing := jobSkills.Subtract(resumeSkills)

	var out []ProjectSuggestion
	for _, tpl := range projectCatalog {
		var develops []string
		for _, s := range tpl.Skills {
			if missing.Contains(s) {
				develops = append(develops, s)
			}
		}
		if len(develops) == 0 {
			continue
		}
		out = append(out, ProjectSuggestion{
			Title:       tpl.Title,
			Description: tpl.Description,
			Relevance:   fmt.Sprintf("Develops missing skills: %s", strings.Join(develops, ", ")),
		})
		if len(out) == maxProjectSuggestions {
			break
		}
	}

	if len(out) == 0 {
		return []ProjectSuggestion{{
			Title:       "Portfolio Project",
			Description: "Build a comprehensive project showcasing your skills",
			Relevance:   "Demonstrates practical experience",
		}}
	}
	return out
}

func joinFirst(s skill.Set, n int) string {
	names := s.Names()
	if len(names) > n {
		names = names[:n]
	}
	return strings.Join(names, ", ")
}
