package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/brief"
)

// loadContent extracts content from a URL or a local PDF file.
func loadContent(ctx context.Context, contents brief.ContentService, source string) (*brief.Content, error) {
	if isURL(source) {
		return contents.ExtractURL(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, brief.Errorf(brief.ENOTFOUND, "%s is neither a URL nor an existing file", source)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return contents.ExtractPDF(ctx, filepath.Base(source), f, info.Size())
}

func isURL(s string) bool {
	s = strings.ToLower(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
