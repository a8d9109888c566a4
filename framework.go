package llmstxt

// Framework identifies a documentation site generator. Detection drives
// fetcher selection: frameworks that render content client-side need a
// browser-based fetch instead of a plain HTTP GET.
type Framework string

// Recognized documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// FrameworkDetector identifies documentation frameworks from HTML and
// reports their rendering requirements.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework

	// RequiresJS reports whether a framework needs JavaScript rendering
	// to produce its content.
	RequiresJS(framework Framework) bool
}
