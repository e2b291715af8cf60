package domain

import (
	"fmt"
	"strings"
)

// Tag is a dot recorded on a hole score.
type Tag uint8

const (
	TagGreenie Tag = iota
	TagSandie
	TagSnake
	TagPin
	tagCount
)

var tagNames = [tagCount]string{
	TagGreenie: "greenie",
	TagSandie:  "sandie",
	TagSnake:   "snake",
	TagPin:     "pin",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

func ParseTag(s string) (Tag, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tagNames {
		if n == name {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tag %q", s)
}

// Tags is a set of Tag values.
type Tags uint8

func NewTags(tags ...Tag) Tags {
	var set Tags
	for _, t := range tags {
		set = set.With(t)
	}
	return set
}

func (s Tags) Has(t Tag) bool {
	return t < tagCount && s&(1<<t) != 0
}

func (s Tags) With(t Tag) Tags {
	if t >= tagCount {
		return s
	}
	return s | 1<<t
}

func (s Tags) List() []Tag {
	var out []Tag
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Tags) Strings() []string {
	list := s.List()
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.String()
	}
	return out
}

// String renders the set as a comma separated list, the storage format.
func (s Tags) String() string {
	return strings.Join(s.Strings(), ",")
}

func ParseTags(names []string) (Tags, error) {
	var set Tags
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		t, err := ParseTag(n)
		if err != nil {
			return 0, err
		}
		set = set.With(t)
	}
	return set, nil
}

func ParseTagList(csv string) (Tags, error) {
	if csv == "" {
		return 0, nil
	}
	return ParseTags(strings.Split(csv, ","))
}
