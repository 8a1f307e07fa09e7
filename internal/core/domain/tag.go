package domain

import (
	"strings"
	"time"
)

// Tag is a unique-named label attached to jobs. Names are stored
// lowercase so "Remote" and "remote" resolve to the same tag.
type Tag struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func NewTag(name string) *Tag {
	return &Tag{
		Name:      NormalizeTagName(name),
		CreatedAt: time.Now(),
	}
}

func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SplitTagNames turns the comma-separated form value into normalized,
// de-duplicated tag names, preserving first-seen order.
func SplitTagNames(s string) []string {
	var names []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		name := NormalizeTagName(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
