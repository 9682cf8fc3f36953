package parser

import (
	"regexp"
	"strings"
)

// ParsedContent is note/todo text with its inline tags pulled out
type ParsedContent struct {
	Text string
	Tags []string
}

// Tags start with a letter so "issue #42" keeps its number
var tagRegex = regexp.MustCompile(`(^|\s)#([a-zA-Z][a-zA-Z0-9_,-]*)`)

// ParseContent extracts #tags from free text.
// Syntax: "Call the bank #money,errands #phone"
func ParseContent(input string) ParsedContent {
	result := ParsedContent{Tags: []string{}}

	for _, match := range tagRegex.FindAllStringSubmatch(input, -1) {
		// Split by comma in case of #tag1,tag2
		for _, tag := range strings.Split(match[2], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				result.Tags = append(result.Tags, tag)
			}
		}
	}
	input = tagRegex.ReplaceAllString(input, "$1")

	// Clean up the text (remove extra spaces)
	result.Text = strings.Join(strings.Fields(input), " ")

	return result
}

// SplitTags parses a comma/space separated tag list, dropping any leading #
func SplitTags(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(f, "#")
		if f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}
