package textanalysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section scanning limits
const (
	maxHeaderLength  = 100 // a heading line is shorter than this once trimmed
	sectionWindow    = 15  // lines considered, heading included
	minSectionLength = 50  // a blank line ends the section once this much text is collected
	minCueSkillLen   = 2   // exclusive
	maxCueSkillLen   = 50  // exclusive
)

// ExtractSkills finds required skills in a job description: vocabulary terms anywhere in the
// text plus cue-phrase captures inside requirement sections. The result has no duplicates and
// keeps first-seen order.
func (h *Heuristic) ExtractSkills(text string) []string {
	v := backend()
	lower := strings.ToLower(text)

	var found []string
	for _, cat := range technicalSkills {
		for _, skill := range cat.Skills {
			if v.containsSkill(lower, skill) {
				found = append(found, skill)
			}
		}
	}

	for _, section := range findRequirementSections(text) {
		found = append(found, v.parseSectionSkills(section)...)
	}

	return dedupeExact(found)
}

// containsSkill reports whether lower-cased text mentions a vocabulary skill.
// One- and two-letter names ("r", "go") must stand alone as words.
func (v *vocabulary) containsSkill(lower, skill string) bool {
	if p, ok := v.skillPatterns[skill]; ok {
		return p.MatchString(lower)
	}
	return strings.Contains(lower, skill)
}

// findRequirementSections returns the body text under each requirement heading
func findRequirementSections(text string) []string {
	lines := strings.Split(text, "\n")
	var sections []string

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= maxHeaderLength || !isRequirementHeader(strings.ToLower(trimmed)) {
			continue
		}

		var body strings.Builder
		end := min(i+sectionWindow, len(lines))
		for j := i + 1; j < end; j++ {
			if strings.TrimSpace(lines[j]) != "" {
				body.WriteString(lines[j])
				body.WriteString("\n")
			} else if body.Len() > minSectionLength {
				break
			}
		}
		sections = append(sections, body.String())
	}
	return sections
}

func isRequirementHeader(lowerLine string) bool {
	for _, header := range requirementHeaders {
		if strings.Contains(lowerLine, header) {
			return true
		}
	}
	return false
}

// parseSectionSkills extracts title-cased skill phrases that follow cue phrases.
// A Caser holds per-call state, so one is created for each call.
func (v *vocabulary) parseSectionSkills(section string) []string {
	lower := strings.ToLower(section)
	caser := cases.Title(language.English)
	var skills []string
	for _, pattern := range v.cuePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			skill := strings.TrimSpace(match[1])
			if len(skill) > minCueSkillLen && len(skill) < maxCueSkillLen {
				skills = append(skills, caser.String(skill))
			}
		}
	}
	return skills
}

// CategorizeSkills groups skills by vocabulary category. A skill goes to the first category
// with a vocabulary term it contains, otherwise to OtherCategory. Empty categories are omitted.
func CategorizeSkills(skills []string) map[string][]string {
	v := backend()
	categorized := make(map[string][]string)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		category := OtherCategory
	categories:
		for _, cat := range technicalSkills {
			for _, term := range cat.Skills {
				if v.containsSkill(lower, term) {
					category = cat.Name
					break categories
				}
			}
		}
		categorized[category] = append(categorized[category], skill)
	}
	return categorized
}

func dedupeExact(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
