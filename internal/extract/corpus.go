package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is one extracted document from a corpus directory.
type Document struct {
	Filename string
	Text     string
}

// Corpus enumerates supported documents directly under dir (no recursion)
// and extracts each one. Filenames are returned in lexical order so runs
// over the same directory are deterministic.
func Corpus(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !supportedExt(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		docs = append(docs, Document{
			Filename: entry.Name(),
			Text:     Text(path),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Filename < docs[j].Filename })
	return docs, nil
}

func supportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}
