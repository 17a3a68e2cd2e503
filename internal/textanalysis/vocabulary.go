package textanalysis

import (
	"regexp"
	"sync"
)

// SkillCategory is a named group of technical skills
type SkillCategory struct {
	Name   string
	Skills []string
}

// technicalSkills is the curated vocabulary used for required-skill detection and categorization
var technicalSkills = []SkillCategory{
	{Name: "programming", Skills: []string{
		"python", "java", "javascript", "c++", "c#", "php", "ruby", "go",
		"rust", "scala", "typescript", "kotlin", "swift", "r", "matlab",
	}},
	{Name: "web", Skills: []string{
		"html", "css", "react", "angular", "vue", "node.js", "express",
		"django", "flask", "spring", "asp.net", "jquery", "bootstrap",
	}},
	{Name: "database", Skills: []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"sqlite", "oracle", "sql server", "cassandra", "dynamodb",
	}},
	{Name: "cloud", Skills: []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
		"terraform", "ansible", "git", "github", "gitlab",
	}},
	{Name: "data_science", Skills: []string{
		"machine learning", "data science", "tensorflow", "pytorch",
		"scikit-learn", "pandas", "numpy", "matplotlib", "tableau", "spark",
	}},
	{Name: "mobile", Skills: []string{
		"android", "ios", "react native", "flutter", "xamarin", "ionic",
	}},
}

// OtherCategory holds skills outside the curated vocabulary
const OtherCategory = "other"

// requirementHeaders mark the start of a requirements section
var requirementHeaders = []string{
	"requirements", "required skills", "qualifications", "must have",
	"essential skills", "technical requirements", "preferred skills",
}

// stopwords excluded from keywords, key phrases and similarity token sets
var stopwordList = []string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against", "all", "almost",
	"alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "an",
	"and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are", "around",
	"as", "at", "be", "became", "because", "become", "becomes", "becoming", "been", "before",
	"beforehand", "behind", "being", "below", "beside", "besides", "between", "beyond", "both", "but",
	"by", "can", "cannot", "could", "did", "do", "does", "doing", "done", "down",
	"due", "during", "each", "either", "else", "elsewhere", "enough", "etc", "even", "ever",
	"every", "everyone", "everything", "everywhere", "except", "few", "for", "former", "formerly", "from",
	"further", "get", "give", "had", "has", "have", "he", "hence", "her", "here",
	"hereafter", "hereby", "herein", "hers", "herself", "him", "himself", "his", "how", "however",
	"i", "if", "in", "indeed", "into", "is", "it", "its", "itself", "just",
	"keep", "last", "latter", "least", "less", "made", "make", "many", "may", "me",
	"meanwhile", "might", "mine", "more", "moreover", "most", "mostly", "much", "must", "my",
	"myself", "namely", "neither", "never", "nevertheless", "next", "no", "nobody", "none", "nor",
	"not", "nothing", "now", "nowhere", "of", "off", "often", "on", "once", "one",
	"only", "onto", "or", "other", "others", "otherwise", "our", "ours", "ourselves", "out",
	"over", "own", "part", "per", "perhaps", "please", "put", "quite", "rather", "really",
	"regarding", "said", "same", "say", "see", "seem", "seemed", "seeming", "seems", "several",
	"she", "should", "show", "since", "so", "some", "somehow", "someone", "something", "sometime",
	"sometimes", "somewhere", "still", "such", "take", "than", "that", "the", "their", "them",
	"themselves", "then", "thence", "there", "thereafter", "thereby", "therefore", "therein", "thereupon", "these",
	"they", "this", "those", "though", "through", "throughout", "thru", "thus", "to", "together",
	"too", "toward", "towards", "under", "unless", "until", "up", "upon", "us", "used",
	"using", "various", "very", "via", "was", "we", "well", "were", "what", "whatever",
	"when", "whence", "whenever", "where", "whereafter", "whereas", "whereby", "wherein", "whereupon", "wherever",
	"whether", "which", "while", "whither", "who", "whoever", "whole", "whom", "whose", "why",
	"will", "with", "within", "without", "would", "yet", "you", "your", "yours", "yourself",
	"yourselves",
}

// vocabulary is the lazily built, read-only analysis backend
type vocabulary struct {
	stopwords      map[string]bool
	skillPatterns  map[string]*regexp.Regexp // whole-word matchers for very short skill names
	cuePatterns    []*regexp.Regexp
	experience     []*regexp.Regexp
	educationWords []*regexp.Regexp
}

var (
	backendOnce sync.Once
	backendVal  *vocabulary
)

// backend returns the process-wide vocabulary, building it on first use
func backend() *vocabulary {
	backendOnce.Do(func() {
		backendVal = buildVocabulary()
	})
	return backendVal
}

func buildVocabulary() *vocabulary {
	v := &vocabulary{
		stopwords:     make(map[string]bool, len(stopwordList)),
		skillPatterns: make(map[string]*regexp.Regexp),
		cuePatterns: []*regexp.Regexp{
			regexp.MustCompile(`experience (?:with|in) ([a-zA-Z0-9.+\s]+)`),
			regexp.MustCompile(`knowledge of ([a-zA-Z0-9.+\s]+)`),
			regexp.MustCompile(`proficient in ([a-zA-Z0-9.+\s]+)`),
			regexp.MustCompile(`familiar with ([a-zA-Z0-9.+\s]+)`),
			regexp.MustCompile(`skilled in ([a-zA-Z0-9.+\s]+)`),
		},
		experience: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\+)?\s*years?\s+(?:of\s+)?experience`),
			regexp.MustCompile(`minimum\s+(\d+)\s+years?`),
			regexp.MustCompile(`at least\s+(\d+)\s+years?`),
			regexp.MustCompile(`(\d+)(?:\+)?\s*yrs?\s+experience`),
		},
		educationWords: []*regexp.Regexp{
			regexp.MustCompile(`(bachelors?|masters?|phd|doctorate)`),
			regexp.MustCompile(`(degree|diploma|certificate)`),
			regexp.MustCompile(`\b([bm]\.[a-z]{2,4})\b`),
			regexp.MustCompile(`\b(bsc|msc|btech|mtech|mba|bca|mca|bba|beng|meng)\b`),
		},
	}

	for _, w := range stopwordList {
		v.stopwords[w] = true
	}
	for _, cat := range technicalSkills {
		for _, s := range cat.Skills {
			if len(s) <= 2 {
				v.skillPatterns[s] = regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(s) + `($|[^a-z0-9+#])`)
			}
		}
	}
	return v
}

// Categories returns a copy of the curated skill vocabulary
func Categories() []SkillCategory {
	out := make([]SkillCategory, len(technicalSkills))
	for i, cat := range technicalSkills {
		out[i] = SkillCategory{Name: cat.Name, Skills: append([]string(nil), cat.Skills...)}
	}
	return out
}
