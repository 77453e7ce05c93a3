package codegen

import (
	"regexp"
	"strings"
)

// FileRecord is one generated file recovered from a model response.
// Language is the fence annotation; it is informational only and never
// influences how the file is written.
type FileRecord struct {
	Name     string
	Language string
	Content  string
}

// Readme is the free text preceding the first code fence in a response.
type Readme struct {
	Content string
}

// fileBlockRe matches a filename line immediately followed by a fenced code
// block with a language tag. Content capture is lazy: it stops at the first
// closing fence, so generated code that embeds a fence of its own can
// under-capture. That ambiguity is inherent to the format.
var fileBlockRe = regexp.MustCompile("(?s)(\\S+?)\n```(\\S+)\n(.+?)```")

// forbiddenNameChars are stripped from captured filenames before use.
var forbiddenNameChars = regexp.MustCompile(`[<>"|?*]`)

// ParseResponse scans a raw model response and returns the file records in
// source order plus the README segment. It never fails: input without any
// fence yields zero records and a README equal to the whole text, and a
// record whose filename sanitizes to nothing is dropped silently.
func ParseResponse(text string) ([]FileRecord, Readme) {
	var records []FileRecord
	for _, m := range fileBlockRe.FindAllStringSubmatch(text, -1) {
		name := forbiddenNameChars.ReplaceAllString(m[1], "")
		if strings.TrimSpace(name) == "" {
			continue
		}
		records = append(records, FileRecord{
			Name:     name,
			Language: m[2],
			Content:  m[3],
		})
	}

	readme := text
	if idx := strings.Index(text, "```"); idx >= 0 {
		readme = text[:idx]
	}
	return records, Readme{Content: readme}
}
