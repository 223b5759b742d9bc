package skill

import "strings"

// Entry is one recognized skill in the controlled vocabulary.
type Entry struct {
	Name     string
	Category string
}

const (
	CategoryLanguage  = "Programming Language"
	CategoryWeb       = "Web Framework"
	CategoryDatabase  = "Database"
	CategoryCloud     = "Cloud"
	CategoryDevOps    = "DevOps"
	CategoryMobile    = "Mobile"
	CategoryData      = "Data & ML"
	CategoryDesign    = "Design"
	CategoryTesting   = "Testing"
	CategoryPM        = "Project Management"
	CategorySoftSkill = "Soft Skill"
)

// Vocabulary is the fixed catalog of skill labels the extractor matches
// against. Names are canonical display casing; entries are unique.
var Vocabulary = []Entry{
	{Name: "Python", Category: CategoryLanguage},
	{Name: "JavaScript", Category: CategoryLanguage},
	{Name: "TypeScript", Category: CategoryLanguage},
	{Name: "Java", Category: CategoryLanguage},
	{Name: "C++", Category: CategoryLanguage},
	{Name: "C#", Category: CategoryLanguage},
	{Name: "C", Category: CategoryLanguage},
	{Name: "PHP", Category: CategoryLanguage},
	{Name: "Ruby", Category: CategoryLanguage},
	{Name: "Go", Category: CategoryLanguage},
	{Name: "Golang", Category: CategoryLanguage},
	{Name: "Rust", Category: CategoryLanguage},
	{Name: "Swift", Category: CategoryLanguage},
	{Name: "Kotlin", Category: CategoryLanguage},
	{Name: "Scala", Category: CategoryLanguage},
	{Name: "Perl", Category: CategoryLanguage},
	{Name: "R", Category: CategoryLanguage},
	{Name: "MATLAB", Category: CategoryLanguage},
	{Name: "Dart", Category: CategoryLanguage},
	{Name: "Elixir", Category: CategoryLanguage},
	{Name: "Haskell", Category: CategoryLanguage},
	{Name: "Objective-C", Category: CategoryLanguage},
	{Name: "Bash", Category: CategoryLanguage},
	{Name: "SQL", Category: CategoryLanguage},

	{Name: "HTML", Category: CategoryWeb},
	{Name: "CSS", Category: CategoryWeb},
	{Name: "React", Category: CategoryWeb},
	{Name: "Angular", Category: CategoryWeb},
	{Name: "Vue.js", Category: CategoryWeb},
	{Name: "Svelte", Category: CategoryWeb},
	{Name: "Next.js", Category: CategoryWeb},
	{Name: "Nuxt.js", Category: CategoryWeb},
	{Name: "Node.js", Category: CategoryWeb},
	{Name: "Express.js", Category: CategoryWeb},
	{Name: "NestJS", Category: CategoryWeb},
	{Name: "Django", Category: CategoryWeb},
	{Name: "Flask", Category: CategoryWeb},
	{Name: "FastAPI", Category: CategoryWeb},
	{Name: "Spring Boot", Category: CategoryWeb},
	{Name: "Spring", Category: CategoryWeb},
	{Name: "Laravel", Category: CategoryWeb},
	{Name: "Ruby on Rails", Category: CategoryWeb},
	{Name: "ASP.NET", Category: CategoryWeb},
	{Name: "jQuery", Category: CategoryWeb},
	{Name: "Bootstrap", Category: CategoryWeb},
	{Name: "Tailwind CSS", Category: CategoryWeb},
	{Name: "SASS", Category: CategoryWeb},
	{Name: "Redux", Category: CategoryWeb},
	{Name: "Webpack", Category: CategoryWeb},
	{Name: "Vite", Category: CategoryWeb},
	{Name: "GraphQL", Category: CategoryWeb},
	{Name: "REST API", Category: CategoryWeb},
	{Name: "gRPC", Category: CategoryWeb},
	{Name: "WebSockets", Category: CategoryWeb},
	{Name: "Microservices", Category: CategoryWeb},

	{Name: "MySQL", Category: CategoryDatabase},
	{Name: "PostgreSQL", Category: CategoryDatabase},
	{Name: "MongoDB", Category: CategoryDatabase},
	{Name: "Redis", Category: CategoryDatabase},
	{Name: "SQLite", Category: CategoryDatabase},
	{Name: "Oracle", Category: CategoryDatabase},
	{Name: "SQL Server", Category: CategoryDatabase},
	{Name: "Cassandra", Category: CategoryDatabase},
	{Name: "DynamoDB", Category: CategoryDatabase},
	{Name: "Elasticsearch", Category: CategoryDatabase},
	{Name: "MariaDB", Category: CategoryDatabase},
	{Name: "Neo4j", Category: CategoryDatabase},
	{Name: "Firebase", Category: CategoryDatabase},
	{Name: "Supabase", Category: CategoryDatabase},

	{Name: "AWS", Category: CategoryCloud},
	{Name: "Amazon Web Services", Category: CategoryCloud},
	{Name: "Azure", Category: CategoryCloud},
	{Name: "Google Cloud", Category: CategoryCloud},
	{Name: "GCP", Category: CategoryCloud},
	{Name: "Heroku", Category: CategoryCloud},
	{Name: "DigitalOcean", Category: CategoryCloud},
	{Name: "Vercel", Category: CategoryCloud},
	{Name: "Netlify", Category: CategoryCloud},
	{Name: "Lambda", Category: CategoryCloud},
	{Name: "S3", Category: CategoryCloud},
	{Name: "EC2", Category: CategoryCloud},

	{Name: "Docker", Category: CategoryDevOps},
	{Name: "Kubernetes", Category: CategoryDevOps},
	{Name: "Jenkins", Category: CategoryDevOps},
	{Name: "Terraform", Category: CategoryDevOps},
	{Name: "Ansible", Category: CategoryDevOps},
	{Name: "CI/CD", Category: CategoryDevOps},
	{Name: "Git", Category: CategoryDevOps},
	{Name: "GitHub", Category: CategoryDevOps},
	{Name: "GitLab", Category: CategoryDevOps},
	{Name: "Bitbucket", Category: CategoryDevOps},
	{Name: "GitHub Actions", Category: CategoryDevOps},
	{Name: "Prometheus", Category: CategoryDevOps},
	{Name: "Grafana", Category: CategoryDevOps},
	{Name: "Nginx", Category: CategoryDevOps},
	{Name: "Apache", Category: CategoryDevOps},
	{Name: "Linux", Category: CategoryDevOps},
	{Name: "Kafka", Category: CategoryDevOps},
	{Name: "RabbitMQ", Category: CategoryDevOps},
	{Name: "Helm", Category: CategoryDevOps},
	{Name: "Vagrant", Category: CategoryDevOps},

	{Name: "React Native", Category: CategoryMobile},
	{Name: "Flutter", Category: CategoryMobile},
	{Name: "iOS", Category: CategoryMobile},
	{Name: "Android", Category: CategoryMobile},
	{Name: "SwiftUI", Category: CategoryMobile},
	{Name: "Jetpack Compose", Category: CategoryMobile},
	{Name: "Xamarin", Category: CategoryMobile},
	{Name: "Ionic", Category: CategoryMobile},

	{Name: "Machine Learning", Category: CategoryData},
	{Name: "Deep Learning", Category: CategoryData},
	{Name: "Data Science", Category: CategoryData},
	{Name: "Data Analysis", Category: CategoryData},
	{Name: "Data Engineering", Category: CategoryData},
	{Name: "TensorFlow", Category: CategoryData},
	{Name: "PyTorch", Category: CategoryData},
	{Name: "Scikit-learn", Category: CategoryData},
	{Name: "Keras", Category: CategoryData},
	{Name: "Pandas", Category: CategoryData},
	{Name: "NumPy", Category: CategoryData},
	{Name: "Matplotlib", Category: CategoryData},
	{Name: "Jupyter", Category: CategoryData},
	{Name: "Spark", Category: CategoryData},
	{Name: "Hadoop", Category: CategoryData},
	{Name: "Airflow", Category: CategoryData},
	{Name: "NLP", Category: CategoryData},
	{Name: "Computer Vision", Category: CategoryData},
	{Name: "Power BI", Category: CategoryData},
	{Name: "Tableau", Category: CategoryData},
	{Name: "Excel", Category: CategoryData},
	{Name: "ETL", Category: CategoryData},

	{Name: "Figma", Category: CategoryDesign},
	{Name: "Adobe XD", Category: CategoryDesign},
	{Name: "Sketch", Category: CategoryDesign},
	{Name: "UI/UX", Category: CategoryDesign},
	{Name: "Photoshop", Category: CategoryDesign},
	{Name: "Illustrator", Category: CategoryDesign},
	{Name: "InVision", Category: CategoryDesign},
	{Name: "Wireframing", Category: CategoryDesign},
	{Name: "Prototyping", Category: CategoryDesign},

	{Name: "Unit Testing", Category: CategoryTesting},
	{Name: "Integration Testing", Category: CategoryTesting},
	{Name: "Selenium", Category: CategoryTesting},
	{Name: "Cypress", Category: CategoryTesting},
	{Name: "Playwright", Category: CategoryTesting},
	{Name: "Jest", Category: CategoryTesting},
	{Name: "Mocha", Category: CategoryTesting},
	{Name: "JUnit", Category: CategoryTesting},
	{Name: "PyTest", Category: CategoryTesting},
	{Name: "TDD", Category: CategoryTesting},
	{Name: "QA", Category: CategoryTesting},

	{Name: "Agile", Category: CategoryPM},
	{Name: "Scrum", Category: CategoryPM},
	{Name: "Kanban", Category: CategoryPM},
	{Name: "Jira", Category: CategoryPM},
	{Name: "Confluence", Category: CategoryPM},
	{Name: "Trello", Category: CategoryPM},
	{Name: "Project Management", Category: CategoryPM},
	{Name: "Product Management", Category: CategoryPM},
	{Name: "Stakeholder Management", Category: CategoryPM},

	{Name: "Leadership", Category: CategorySoftSkill},
	{Name: "Teamwork", Category: CategorySoftSkill},
	{Name: "Communication", Category: CategorySoftSkill},
	{Name: "Problem Solving", Category: CategorySoftSkill},
	{Name: "Critical Thinking", Category: CategorySoftSkill},
	{Name: "Time Management", Category: CategorySoftSkill},
	{Name: "Mentoring", Category: CategorySoftSkill},
	{Name: "Collaboration", Category: CategorySoftSkill},
	{Name: "Adaptability", Category: CategorySoftSkill},
	{Name: "Public Speaking", Category: CategorySoftSkill},
}

// CategoryOf returns the vocabulary category for a canonical skill name,
// or the empty string for unknown names.
func CategoryOf(name string) string {
	for _, e := range Vocabulary {
		if strings.EqualFold(e.Name, name) {
			return e.Category
		}
	}
	return ""
}
