// Package extraction turns stored resume documents into plain text.
package extraction

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// errorPrefix marks a per-document extraction failure recorded in place of
// text. Failures never propagate to the batch level.
const errorPrefix = "Error extracting text:"

// TextExtractor converts stored documents into plain text, one entry per
// input path. A document that cannot be extracted gets an error string as
// its value instead of failing the whole call.
type TextExtractor interface {
	Extract(ctx context.Context, paths []string) map[string]string
}

// IsErrorText reports whether an extracted value records a failure rather
// than document text.
func IsErrorText(text string) bool {
	return strings.HasPrefix(text, errorPrefix)
}

// DocExtractor extracts text from PDF, Office and plain-text documents.
type DocExtractor struct{}

// NewDocExtractor creates the live document extractor.
func NewDocExtractor() *DocExtractor {
	return &DocExtractor{}
}

// Extract converts each document to plain text.
func (e *DocExtractor) Extract(ctx context.Context, paths []string) map[string]string {
	texts := make(map[string]string, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			texts[path] = fmt.Sprintf("%s %v", errorPrefix, err)
			continue
		}

		text, err := extractFile(path)
		if err != nil {
			log.Printf("Error extracting text from %s: %v", path, err)
			texts[path] = fmt.Sprintf("%s %v", errorPrefix, err)
			continue
		}

		texts[path] = strings.TrimSpace(text)
		log.Printf("Successfully extracted text from %s", filepath.Base(path))
	}

	return texts
}

func extractFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to convert document: %w", err)
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}
