package resumedb_test

import (
	"testing"

	"github.com/fwojciec/resumedb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | 555-0100

Summary
Seasoned engineer with ten years of experience.
Experience
Acme Corp
Senior Engineer (2019-2023): platform team
- Cut build times by half
- Mentored five engineers
Globex, Inc.
Backend developer (2015-2019)
• Built billing service
Skills
Languages
Go, Python, SQL, Bash, TypeScript, Rust, Java, C
Tools
Docker - Kubernetes - Terraform
Education
State University`

func TestParseSections(t *testing.T) {
	t.Parallel()

	t.Run("parses header and summary", func(t *testing.T) {
		t.Parallel()

		s := resumedb.ParseSections(sampleResume)

		require.NotNil(t, s)
		assert.Equal(t, "Jane Doe\njane@example.com | 555-0100", s.Header)
		assert.Equal(t, "Seasoned engineer with ten years of experience.", s.Summary)
	})

	t.Run("parses employers with highlights", func(t *testing.T) {
		t.Parallel()

		s := resumedb.ParseSections(sampleResume)

		require.NotNil(t, s)
		require.Len(t, s.Employers, 2)
		assert.Equal(t, "Acme Corp", s.Employers[0].Header)
		assert.Equal(t, "Senior Engineer (2019-2023): platform team", s.Employers[0].Summary)
		assert.Equal(t, []string{"- Cut build times by half", "- Mentored five engineers"}, s.Employers[0].Highlights)
		assert.Equal(t, "Globex, Inc.", s.Employers[1].Header)
		assert.Equal(t, "Backend developer (2015-2019)", s.Employers[1].Summary)
		assert.Equal(t, []string{"• Built billing service"}, s.Employers[1].Highlights)
	})

	t.Run("parses skill groups until education", func(t *testing.T) {
		t.Parallel()

		s := resumedb.ParseSections(sampleResume)

		require.NotNil(t, s)
		require.Len(t, s.Skills, 2)
		assert.Equal(t, "Languages", s.Skills[0].Header)
		assert.Equal(t, []string{"Go, Python, SQL, Bash, TypeScript, Rust, Java, C"}, s.Skills[0].Skills)
		assert.Equal(t, "Tools", s.Skills[1].Header)
		assert.Equal(t, []string{"Docker - Kubernetes - Terraform"}, s.Skills[1].Skills)
	})

	t.Run("returns nil for blank text", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, resumedb.ParseSections(""))
		assert.Nil(t, resumedb.ParseSections("  \n\t\n"))
	})

	t.Run("treats text without headings as header", func(t *testing.T) {
		t.Parallel()

		s := resumedb.ParseSections("Hello")

		require.NotNil(t, s)
		assert.Equal(t, "Hello", s.Header)
		assert.Empty(t, s.Summary)
		assert.Empty(t, s.Employers)
		assert.Empty(t, s.Skills)
	})
}
