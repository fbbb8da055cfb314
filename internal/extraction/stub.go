package extraction

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// StubExtractor fabricates resume text from file names. It backs DEV_MODE
// so the pipeline can run without documents or external tooling.
type StubExtractor struct{}

// NewStubExtractor creates the development-mode extractor.
func NewStubExtractor() *StubExtractor {
	return &StubExtractor{}
}

// Extract returns deterministic resume text derived from each file name.
func (e *StubExtractor) Extract(_ context.Context, paths []string) map[string]string {
	texts := make(map[string]string, len(paths))

	for i, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name := titleCase(strings.ReplaceAll(base, "_", " "))
		email := strings.ToLower(strings.ReplaceAll(base, "_", ".")) + "@email.com"
		years := 5 - i
		if years < 1 {
			years = 1
		}

		texts[path] = fmt.Sprintf(`Name: %s
Email: %s
Phone: 555-%04d

Experience: %d years in software development
Skills: Python, JavaScript, React, Node.js, SQL
Education: Bachelor's in Computer Science

Previous roles:
- Senior Software Engineer at Tech Corp
- Software Engineer at Startup Inc
- Junior Developer at Small Company
`, name, email, 1000+i, years)
	}

	return texts
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
