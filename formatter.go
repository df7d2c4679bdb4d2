package resumedb

import "strings"

// FormatResumes formats resumes for display or LLM context.
// Resumes are separated by blank lines.
func FormatResumes(resumes []*Resume) string {
	if len(resumes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(resumes))
	for _, r := range resumes {
		header := r.Filename
		if header == "" {
			header = r.Path
		}
		parts = append(parts, "## Resume: "+header+"\n"+r.Content)
	}

	return strings.Join(parts, "\n\n")
}
