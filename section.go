package resumedb

import (
	"regexp"
	"strings"
)

// Sections is the layout recovered from a resume's plain text.
type Sections struct {
	Header    string       `json:"header"`
	Summary   string       `json:"summary"`
	Employers []Employer   `json:"employers,omitempty"`
	Skills    []SkillGroup `json:"skills,omitempty"`
}

// Employer is one entry under an experience heading.
type Employer struct {
	Header     string   `json:"header"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights,omitempty"`
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Header string   `json:"header"`
	Skills []string `json:"skills"`
}

var (
	headerEndRe      = regexp.MustCompile(`(?i)^(summary|objective|profile|professional|experience|employment|work|skills)`)
	experienceRe     = regexp.MustCompile(`(?i)^(experience|employment|work\s+history|professional\s+experience|career\s+history)`)
	skillsRe         = regexp.MustCompile(`(?i)^(skills|technical\s+skills|core\s+competencies)`)
	skillsEndRe      = regexp.MustCompile(`(?i)^(experience|employment|work\s+history|professional\s+experience|career\s+history|education|certification)`)
	employerHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9&,.\-\s]+$`)
	bulletRe         = regexp.MustCompile(`^[-*•]\s+`)
)

// ParseSections splits resume text into header, summary, employers and
// skills using heading keywords common to resume layouts.
// Returns nil for text without any non-blank lines.
func ParseSections(text string) *Sections {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	s := &Sections{}

	// Header runs until the first section keyword.
	i := 0
	for i < len(lines) && !headerEndRe.MatchString(lines[i]) {
		i++
	}
	s.Header = strings.Join(lines[:i], "\n")

	// Summary runs until experience or skills. A bare heading such as
	// "Professional Summary" is not part of it.
	if i < len(lines) && len(strings.Fields(lines[i])) <= 3 &&
		!experienceRe.MatchString(lines[i]) && !skillsRe.MatchString(lines[i]) {
		i++
	}
	start := i
	for i < len(lines) && !experienceRe.MatchString(lines[i]) && !skillsRe.MatchString(lines[i]) {
		i++
	}
	s.Summary = strings.Join(lines[start:i], " ")

	s.Employers = parseEmployers(lines[i:])
	s.Skills = parseSkills(lines)
	return s
}

func isBullet(line string) bool {
	return strings.Contains(line, "•") || bulletRe.MatchString(line)
}

func parseEmployers(lines []string) []Employer {
	var employers []Employer
	var current *Employer
	var highlights []string
	inSection := false

	flush := func() {
		if current != nil {
			current.Highlights = highlights
			employers = append(employers, *current)
			current = nil
		}
		highlights = nil
	}

	for _, line := range lines {
		if experienceRe.MatchString(line) {
			inSection = true
			continue
		}
		if skillsRe.MatchString(line) {
			break
		}

		if inSection && employerHeaderRe.MatchString(line) && !strings.HasSuffix(line, ":") {
			flush()
			current = &Employer{Header: line}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case isBullet(line):
			highlights = append(highlights, line)
		case current.Summary == "":
			current.Summary = line
		default:
			current.Summary += " " + line
		}
	}
	flush()

	return employers
}

func parseSkills(lines []string) []SkillGroup {
	var groups []SkillGroup
	var header string
	var skills []string
	found := false

	flush := func() {
		if header != "" && len(skills) > 0 {
			groups = append(groups, SkillGroup{Header: header, Skills: skills})
		}
	}

	for _, line := range lines {
		if skillsRe.MatchString(line) {
			found = true
			header = line
			continue
		}
		if !found {
			continue
		}
		if skillsEndRe.MatchString(line) {
			flush()
			return groups
		}

		// Short lines without bullet marks title a new group.
		if !strings.ContainsAny(line, "-•*") && len(strings.Fields(line)) < 7 {
			flush()
			header = line
			skills = nil
			continue
		}
		skills = append(skills, line)
	}
	flush()

	return groups
}
