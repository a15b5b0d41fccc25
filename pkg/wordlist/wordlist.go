package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadFile reads a word list from path, choosing the parser by extension.
func ReadFile(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	if IsYAML(filepath.Ext(path)) {
		return ParseYAML(content)
	}
	return ParseText(content)
}

// IsYAML reports whether the file extension denotes a YAML word list.
func IsYAML(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// ParseYAML parses a top-level YAML sequence of strings.
func ParseYAML(content []byte) ([]string, error) {
	var raw []string
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return clean(raw), nil
}

// maxLineSize bounds a single plain text entry.
const maxLineSize = 1 << 20

// ParseText parses one entry per line, skipping blanks and '#' comments.
// Lines longer than 1 MiB fail with ErrFailedToParseText.
func ParseText(content []byte) ([]string, error) {
	var raw []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrFailedToParseText, err)
	}
	return clean(raw), nil
}

func clean(raw []string) []string {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
