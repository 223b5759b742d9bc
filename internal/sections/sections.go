package sections

import (
	"regexp"
	"strconv"
	"strings"
)

// ResumeSections maps a fixed set of section names to the raw text
// attributed to them. Keys are always present, possibly empty.
type ResumeSections map[string]string

// JobRequirements holds the structured requirements pulled from a job
// description.
type JobRequirements struct {
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	ExperienceLevel  string   `json:"experience_level"`
	EducationLevel   string   `json:"education_level"`
	Responsibilities []string `json:"responsibilities"`
}

var sectionNames = []string{"contact", "summary", "experience", "education", "skills", "certifications"}

var sectionHeaders = map[string][]string{
	"contact":        {"contact", "email", "phone"},
	"summary":        {"summary", "objective", "profile"},
	"experience":     {"experience", "work history", "employment"},
	"education":      {"education", "academic"},
	"skills":         {"skills", "technical skills"},
	"certifications": {"certifications", "certificates"},
}

// headerOrder fixes the priority when a line matches several sections'
// keywords; mirrors the original first-match-wins scan.
var headerOrder = []string{"contact", "summary", "experience", "education", "skills", "certifications"}

// SplitResume attributes each line of a resume to the section whose
// header keyword was seen most recently. Lines before any header are
// dropped.
func SplitResume(text string) ResumeSections {
	out := make(ResumeSections, len(sectionNames))
	for _, name := range sectionNames {
		out[name] = ""
	}

	current := ""
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		matched := ""
		for _, name := range headerOrder {
			for _, kw := range sectionHeaders[name] {
				if strings.Contains(lower, kw) {
					matched = name
					break
				}
			}
			if matched != "" {
				break
			}
		}

		if matched != "" {
			current = matched
			continue
		}
		if current != "" && strings.TrimSpace(line) != "" {
			out[current] += line + "\n"
		}
	}

	return out
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*experience`),
	regexp.MustCompile(`experience\s*level:\s*(\w+)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*\w+`),
}

var educationPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`bachelor'?s?\s*degree`), "bachelor's degree"},
	{regexp.MustCompile(`master'?s?\s*degree`), "master's degree"},
	{regexp.MustCompile(`phd`), "phd"},
	{regexp.MustCompile(`associate'?s?\s*degree`), "associate's degree"},
}

// ExtractJobRequirements scans a job description for experience and
// education signals. Skill lists are filled by the caller from the
// extractor; this only handles the regex-detectable fields.
func ExtractJobRequirements(text string) JobRequirements {
	out := JobRequirements{
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Responsibilities: []string{},
	}
	lower := strings.ToLower(text)

	for _, re := range experiencePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			out.ExperienceLevel = m[1]
			break
		}
	}
	for _, p := range educationPatterns {
		if p.re.MatchString(lower) {
			out.EducationLevel = p.label
			break
		}
	}

	return out
}

var experienceYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*\w+`),
	regexp.MustCompile(`experience:\s*(\d+)\+?\s*years?`),
}

// ExperienceYears pulls the first years-of-experience figure found in a
// resume, 0 when none.
func ExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, re := range experienceYearPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 0
}

var educationLineKeywords = []string{"bachelor", "master", "phd", "degree", "university", "college"}

// Education collects resume lines that mention a degree or institution.
func Education(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range educationLineKeywords {
			if strings.Contains(lower, kw) {
				out = append(out, strings.TrimSpace(line))
				break
			}
		}
	}
	return out
}
