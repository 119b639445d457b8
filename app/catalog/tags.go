package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tags is the tag set of a command. Documents may spell it as a list of
// strings or as a single comma-separated string.
type Tags []string

// ParseTags splits a comma-separated tag string, dropping blank items.
func ParseTags(raw string) Tags {
	var out Tags
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join returns the tags separated by sep.
func (t Tags) Join(sep string) string {
	return strings.Join(t, sep)
}

func (t Tags) normalized() Tags {
	var out Tags
	for _, tag := range t {
		if s := strings.TrimSpace(tag); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// UnmarshalJSON keeps number items as written, so 1000000 stays "1000000".
func (t *Tags) UnmarshalJSON(b []byte) error {
	var list []any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&list); err == nil {
		out := make(Tags, 0, len(list))
		for _, item := range list {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		*t = out.normalized()
		return nil
	}
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("tags must be a list or a comma-separated string: %w", err)
	}
	if raw == nil {
		*t = nil
		return nil
	}
	*t = ParseTags(*raw)
	return nil
}

func (t *Tags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("decode tags: %w", err)
		}
		*t = Tags(list).normalized()
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*t = nil
			return nil
		}
		*t = ParseTags(node.Value)
	default:
		return fmt.Errorf("tags must be a list or a comma-separated string (line %d)", node.Line)
	}
	return nil
}
