package recommend

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"resume-match/internal/domain/skill"

	"github.com/google/uuid"
)

// JobPosting is a synthesized job record. Field names are part of the
// public recommendations contract.
type JobPosting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	Experience      string   `json:"experience"`
	JobType         string   `json:"jobType"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	URL             string   `json:"url"`
	Source          string   `json:"source"`
	PostedDate      string   `json:"postedDate"`
}

const (
	postingCount = 10
	// Chance of drawing a posting outside the candidate's matched
	// categories, to keep the listing varied.
	offCategoryChance = 0.3
	seniorityChance   = 0.7
	matchJitter       = 10
)

var sources = []string{"LinkedIn", "Indeed", "Glassdoor", "AngelList", "Internshala", "Naukri", "Cutshort"}

var jobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

var locations = []string{"Remote", "New York, NY", "San Francisco, CA", "Bangalore, India", "London, UK", "Berlin, Germany"}

var experienceLevels = []string{"0-1 years", "1-3 years", "2-4 years", "3-5 years", "5+ years"}

var companies = []string{"TechCorp", "InnovateSoft", "DataInsights", "MobileApps Inc", "CloudSystems", "DesignStudio", "StartupXYZ", "ServerTech"}

var seniorities = []string{"Junior ", "Senior ", "Lead ", "Principal ", ""}

var skillCategories = map[string][]string{
	"frontend": {"React", "Angular", "Vue.js", "JavaScript", "TypeScript", "HTML", "CSS", "SASS", "Redux", "Webpack"},
	"backend":  {"Node.js", "Express.js", "Django", "Flask", "Ruby on Rails", "Spring Boot", "ASP.NET", "PHP"},
	"database": {"MongoDB", "PostgreSQL", "MySQL", "SQL Server", "Oracle", "Redis", "Elasticsearch"},
	"devops":   {"Docker", "Kubernetes", "AWS", "Azure", "GCP", "CI/CD", "Jenkins", "Terraform"},
	"mobile":   {"React Native", "Flutter", "iOS", "Android", "Swift", "Kotlin"},
	"data":     {"Python", "R", "Machine Learning", "Data Analysis", "TensorFlow", "PyTorch", "Pandas", "NumPy"},
	"design":   {"Figma", "Adobe XD", "Sketch", "UI/UX", "Photoshop", "Illustrator"},
}

var softSkills = []string{"Communication", "Teamwork", "Problem Solving", "Critical Thinking", "Time Management"}

var jobTitles = map[string][]string{
	"frontend":  {"Frontend Developer", "UI Developer", "React Developer", "JavaScript Engineer"},
	"backend":   {"Backend Developer", "API Developer", "Node.js Developer", "Python Developer"},
	"fullstack": {"Full Stack Developer", "Software Engineer", "Web Developer", "MERN Stack Developer"},
	"mobile":    {"Mobile Developer", "iOS Developer", "Android Developer", "React Native Developer"},
	"data":      {"Data Scientist", "Data Analyst", "Machine Learning Engineer", "AI Researcher"},
	"devops":    {"DevOps Engineer", "Site Reliability Engineer", "Cloud Engineer", "Infrastructure Engineer"},
	"design":    {"UI/UX Designer", "Product Designer", "Web Designer", "Graphic Designer"},
}

// Generator synthesizes plausible job postings for a candidate skill
// set. Determinism is not required; tests inject a seeded rand.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

// Generate returns 10 postings sorted by match percentage descending.
// For every posting, matching and missing skills partition the required
// list exactly.
func (g *Generator) Generate(candidate skill.Set) []JobPosting {
	categories := g.classify(candidate)

	out := make([]JobPosting, 0, postingCount)
	for i := 0; i < postingCount; i++ {
		category := categories[g.rng.Intn(len(categories))]
		if g.rng.Float64() < offCategoryChance {
			category = g.anyTitleCategory()
		}

		title := g.pickTitle(category)
		required := g.sampleSkills(category)

		var matching, missing []string
		for _, s := range required {
			if candidate.Contains(s) {
				matching = append(matching, s)
			} else {
				missing = append(missing, s)
			}
		}

		pct := 0
		if len(required) > 0 {
			pct = int(math.Round(float64(len(matching)) / float64(len(required)) * 100))
		}
		pct += g.rng.Intn(2*matchJitter+1) - matchJitter
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}

		id := uuid.NewString()
		out = append(out, JobPosting{
			ID:              id,
			Title:           title,
			Company:         companies[g.rng.Intn(len(companies))],
			Location:        locations[g.rng.Intn(len(locations))],
			Description:     describe(title, required),
			Skills:          required,
			Experience:      experienceLevels[g.rng.Intn(len(experienceLevels))],
			JobType:         jobTypes[g.rng.Intn(len(jobTypes))],
			MatchPercentage: pct,
			MatchingSkills:  matching,
			MissingSkills:   missing,
			URL:             "https://example.com/job/" + id,
			Source:          sources[g.rng.Intn(len(sources))],
			PostedDate:      g.randomPostedDate(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

// classify maps the candidate's skills onto posting categories; a
// candidate matching nothing is treated as fullstack.
func (g *Generator) classify(candidate skill.Set) []string {
	var matched []string
	for _, category := range categoryOrder {
		for _, s := range skillCategories[category] {
			if candidate.Contains(s) {
				matched = append(matched, category)
				break
			}
		}
	}
	if len(matched) == 0 {
		return []string{"fullstack"}
	}
	return matched
}

// categoryOrder keeps classification deterministic; map iteration order
// is not.
var categoryOrder = []string{"frontend", "backend", "database", "devops", "mobile", "data", "design"}

var titleCategoryOrder = []string{"frontend", "backend", "fullstack", "mobile", "data", "devops", "design"}

func (g *Generator) anyTitleCategory() string {
	return titleCategoryOrder[g.rng.Intn(len(titleCategoryOrder))]
}

func (g *Generator) pickTitle(category string) string {
	titles, ok := jobTitles[category]
	if !ok {
		titles = jobTitles["fullstack"]
	}
	title := titles[g.rng.Intn(len(titles))]
	if g.rng.Float64() < seniorityChance {
		title = seniorities[g.rng.Intn(len(seniorities))] + title
	}
	return title
}

// sampleSkills draws 4-8 distinct required skills from the category pool
// plus the soft-skill pool.
func (g *Generator) sampleSkills(category string) []string {
	pool := append(append([]string{}, skillCategories[category]...), softSkills...)
	n := 4 + g.rng.Intn(5)
	if n > len(pool) {
		n = len(pool)
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

func (g *Generator) randomPostedDate() string {
	daysAgo := 1 + g.rng.Intn(30)
	return g.now().AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func describe(title string, required []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "We are looking for a %s to join our team. ", title)
	if len(required) > 0 {
		list := strings.Join(required[:len(required)-1], ", ")
		last := required[len(required)-1]
		if list == "" {
			fmt.Fprintf(&b, "The ideal candidate will have experience with %s. ", last)
		} else {
			fmt.Fprintf(&b, "The ideal candidate will have experience with %s and %s. ", list, last)
		}
	}
	b.WriteString("You will be responsible for developing and maintaining our applications, collaborating with cross-functional teams, and ensuring high-quality code.")
	return b.String()
}
