package services

import (
	"strings"
)

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries. Order is preserved and duplicates are kept.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
