package thesaurus

// defaultEntries is the curated job-domain table. Several entries are
// intentionally one-directional; Related covers them from either side.
var defaultEntries = map[string][]string{
	"product":         {"product", "products"},
	"manager":         {"manager", "owner", "lead", "director", "head"},
	"product manager": {"product owner", "product lead", "pm", "product director", "product head"},
	"product owner":   {"product manager", "product lead", "po", "product director", "product head"},
	"product lead":    {"product manager", "product owner", "pm", "po"},
	"pm":              {"product manager", "product owner", "product lead"},
	"po":              {"product owner", "product manager", "product lead"},
	"project manager": {"project lead", "program manager", "project coordinator", "project director"},
	"program manager": {"project manager", "project lead", "program lead"},
	"scrum master":    {"agile coach", "scrum lead", "agile lead"},

	"agile":  {"scrum", "kanban", "lean", "sprint"},
	"scrum":  {"agile", "kanban", "sprint", "ceremonies"},
	"kanban": {"agile", "scrum", "lean"},
	"lean":   {"agile", "scrum", "kanban"},
	"sprint": {"agile", "scrum", "iteration"},

	"software":    {"dev", "engineer", "development", "programming", "coding", "tech"},
	"development": {"dev", "engineering", "programming", "coding", "software"},
	"engineering": {"development", "dev", "programming", "coding", "software"},
	"programming": {"coding", "development", "software", "engineering"},
	"coding":      {"programming", "development", "software", "engineering"},

	"e-commerce": {"ecommerce", "ecomm", "online retail", "retail", "commerce"},
	"ecommerce":  {"e-commerce", "ecomm", "online retail", "retail", "commerce"},
	"business":   {"commercial", "enterprise", "corporate"},
	"strategy":   {"strategic", "planning", "roadmap"},
	"roadmap":    {"strategy", "planning", "strategic"},

	"ai":                      {"artificial intelligence", "machine learning", "ml", "deep learning"},
	"artificial intelligence": {"ai", "machine learning", "ml"},
	"machine learning":        {"ai", "ml", "artificial intelligence"},
	"ml":                      {"machine learning", "ai", "artificial intelligence"},

	"ux":              {"user experience", "usability", "user research"},
	"ui":              {"user interface", "interface", "design"},
	"user experience": {"ux", "usability"},
	"user interface":  {"ui", "interface"},

	"aws":   {"amazon web services", "cloud", "amazon cloud"},
	"gcp":   {"google cloud platform", "google cloud", "cloud"},
	"azure": {"microsoft azure", "cloud"},
	"cloud": {"aws", "gcp", "azure", "cloud computing"},

	"analytics": {"analysis", "data analysis", "tracking", "metrics"},
	"analysis":  {"analytics", "data analysis", "analyze"},
	"data":      {"analytics", "analysis", "metrics", "insights"},
	"metrics":   {"analytics", "data", "kpi", "measurement"},
	"kpi":       {"metrics", "analytics", "measurement"},
	"budget":    {"budgets", "financial", "cost", "finance"},

	"team":       {"teams", "group", "squad", "crew"},
	"leadership": {"lead", "manage", "management", "leading"},
	"management": {"manage", "leadership", "leading"},
	"lead":       {"leadership", "manage", "management"},

	"jira":       {"atlassian", "ticketing", "project tracking"},
	"confluence": {"atlassian", "documentation", "wiki"},
	"slack":      {"communication", "messaging", "chat"},
	"github":     {"git", "version control", "repository"},
	"git":        {"github", "version control", "repository"},

	"csm": {"certified scrum master", "scrum master"},
	"pmp": {"project management professional", "project manager"},
	"mba": {"master of business administration", "business degree"},
}

// Default returns the built-in job-domain thesaurus.
func Default() Thesaurus {
	return New(defaultEntries)
}
