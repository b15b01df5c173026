package frontmatter

import (
	"fmt"
	"sort"
	"strings"
)

// FieldOrder is the canonical emission order for goal frontmatter. Keys not
// listed here are appended alphabetically, so serialization is deterministic
// for any record.
var FieldOrder = []string{
	"type",
	"status",
	"startDate",
	"endDate",
	"priority",
	"completions",
	"subtasks",
	"dailySubtaskCompletions",
	"weeklySubtaskCompletions",
	"monthlyProgress",
	"recurrence",
	"tags",
}

// objectKeyOrder fixes the property order inside block-list objects.
var objectKeyOrder = []string{"id", "title", "completed"}

// Serialize renders a record as a delimited frontmatter block, ending with a
// newline after the closing delimiter. Empty lists and mappings emit `key: []`
// so the format stays stable across round trips; omitting a field entirely is
// the caller's call (it just leaves the key out of the record).
func Serialize(rec Record) string {
	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteString("\n")
	for _, key := range orderedKeys(rec) {
		writeField(&b, key, rec[key])
	}
	b.WriteString(delimiter)
	b.WriteString("\n")
	return b.String()
}

// Compose joins a serialized frontmatter block with a markdown body.
func Compose(rec Record, body string) string {
	out := Serialize(rec)
	if body == "" {
		return out
	}
	out += "\n" + body
	if !strings.HasSuffix(body, "\n") {
		out += "\n"
	}
	return out
}

func orderedKeys(rec Record) []string {
	seen := make(map[string]bool, len(rec))
	var keys []string
	for _, k := range FieldOrder {
		if _, ok := rec[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var extra []string
	for k := range rec {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func writeField(b *strings.Builder, key string, v Value) {
	switch v.Kind {
	case KindScalar:
		fmt.Fprintf(b, "%s: %s\n", key, formatScalar(v.Scalar))

	case KindList:
		fmt.Fprintf(b, "%s: [%s]\n", key, strings.Join(v.List, ", "))

	case KindObjectList:
		if len(v.Objects) == 0 {
			fmt.Fprintf(b, "%s: []\n", key)
			return
		}
		fmt.Fprintf(b, "%s:\n", key)
		for _, obj := range v.Objects {
			for i, k := range orderedObjectKeys(obj) {
				if i == 0 {
					fmt.Fprintf(b, "  - %s: %s\n", k, obj[k])
				} else {
					fmt.Fprintf(b, "    %s: %s\n", k, obj[k])
				}
			}
		}

	case KindMap:
		if len(v.Map) == 0 {
			fmt.Fprintf(b, "%s: []\n", key)
			return
		}
		fmt.Fprintf(b, "%s:\n", key)
		mapKeys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			mapKeys = append(mapKeys, k)
		}
		sort.Strings(mapKeys)
		for _, k := range mapKeys {
			entry := v.Map[k]
			if entry.Kind == KindList {
				fmt.Fprintf(b, "  %s: [%s]\n", k, strings.Join(entry.List, ", "))
			} else {
				fmt.Fprintf(b, "  %s: %s\n", k, formatScalar(entry.Scalar))
			}
		}
	}
}

func orderedObjectKeys(obj map[string]string) []string {
	seen := make(map[string]bool, len(obj))
	var keys []string
	for _, k := range objectKeyOrder {
		if _, ok := obj[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var extra []string
	for k := range obj {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func formatScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return "null"
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
