// Package frontmatter implements the restricted YAML dialect used by goal
// files: scalars, inline lists, block lists (of scalars or flat objects) and
// two-space block mappings. The parser is deliberately lenient — lines that
// don't match any production are dropped, never fatal — so a hand-edited file
// with one bad line still loads.
package frontmatter

import (
	"strconv"
	"strings"
)

const delimiter = "---"

// Parse extracts the frontmatter block from a markdown document and parses it
// into a Record. Documents without a leading delimiter (or with an unclosed
// one) yield an empty record.
func Parse(content string) Record {
	rec := Record{}
	block, ok := extractBlock(content)
	if !ok {
		return rec
	}

	lines := strings.Split(block, "\n")
	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" || indentOf(line) > 0 {
			// Blank line, or an indented line with no open block: dropped.
			i++
			continue
		}

		key, rest, ok := splitKeyValue(line)
		if !ok {
			i++
			continue
		}

		switch {
		case rest == "" || rest == "[]":
			v, next := parseBlockValue(lines, i+1, rest == "[]")
			rec[key] = v
			i = next
		case isInlineList(rest):
			rec[key] = List(splitInlineList(rest))
			i++
		default:
			rec[key] = Scalar(coerceScalar(rest))
			i++
		}
	}
	return rec
}

// Body returns everything after the closing frontmatter delimiter, with
// leading newlines trimmed. Documents without frontmatter are all body.
func Body(content string) string {
	trimmed := strings.TrimLeft(content, " \t\n\r")
	if !strings.HasPrefix(trimmed, delimiter) {
		return content
	}
	rest := trimmed[len(delimiter):]
	idx := strings.Index(rest, "\n"+delimiter)
	if idx == -1 {
		return content
	}
	body := rest[idx+len("\n"+delimiter):]
	return strings.TrimLeft(body, "\n")
}

// extractBlock returns the text between the first pair of delimiter lines.
func extractBlock(content string) (string, bool) {
	trimmed := strings.TrimLeft(content, " \t\n\r")
	if !strings.HasPrefix(trimmed, delimiter) {
		return "", false
	}
	rest := trimmed[len(delimiter):]
	idx := strings.Index(rest, "\n"+delimiter)
	if idx == -1 {
		return "", false
	}
	return strings.TrimPrefix(rest[:idx], "\n"), true
}

// parseBlockValue handles the lines following an empty `key:` (or `key: []`)
// value: a block list, a block mapping, or nothing at all.
func parseBlockValue(lines []string, i int, emptyIsList bool) (Value, int) {
	if i < len(lines) {
		line := lines[i]
		t := strings.TrimSpace(line)
		if indentOf(line) > 0 && strings.HasPrefix(t, "- ") {
			return parseBlockList(lines, i)
		}
		if isMapEntryLine(line) {
			return parseBlockMap(lines, i)
		}
	}
	if emptyIsList {
		return List(nil), i
	}
	return Scalar(nil), i
}

// parseBlockList consumes `- ` items. An item of the form `- key: value`
// opens an object; subsequent lines indented at least four spaces that don't
// start with `-` become properties of that object.
func parseBlockList(lines []string, i int) (Value, int) {
	var scalars []string
	var objects []map[string]string

	for i < len(lines) {
		line := lines[i]
		t := strings.TrimSpace(line)
		if t == "" || indentOf(line) == 0 || !strings.HasPrefix(t, "- ") {
			break
		}

		item := strings.TrimSpace(t[2:])
		k, v, ok := splitKeyValue(item)
		if !ok {
			scalars = append(scalars, item)
			i++
			continue
		}

		obj := map[string]string{k: v}
		i++
		for i < len(lines) {
			cont := lines[i]
			if indentOf(cont) < 4 || strings.HasPrefix(strings.TrimSpace(cont), "-") {
				break
			}
			if ck, cv, ok := splitKeyValue(strings.TrimSpace(cont)); ok {
				obj[ck] = cv
			}
			i++
		}
		objects = append(objects, obj)
	}

	if len(objects) > 0 {
		return Objects(objects), i
	}
	return List(scalars), i
}

// parseBlockMap consumes two-space-indented `key: value` entries. Values are
// inline-list-aware; anything failing the indentation rule ends the mapping.
func parseBlockMap(lines []string, i int) (Value, int) {
	m := map[string]Value{}
	for i < len(lines) {
		line := lines[i]
		if !isMapEntryLine(line) {
			break
		}
		k, v, ok := splitKeyValue(strings.TrimSpace(line))
		if ok {
			if isInlineList(v) {
				m[k] = List(splitInlineList(v))
			} else {
				m[k] = Scalar(coerceScalar(v))
			}
		}
		i++
	}
	return Mapping(m), i
}

// isMapEntryLine reports whether a line is a two-space-indented mapping entry.
func isMapEntryLine(line string) bool {
	if !strings.HasPrefix(line, "  ") {
		return false
	}
	t := line[2:]
	if t == "" || t[0] == ' ' || t[0] == '\t' || t[0] == '-' {
		return false
	}
	_, _, ok := splitKeyValue(t)
	return ok
}

// splitKeyValue splits "key: value" (or a trailing "key:") into its parts.
// A colon not followed by a space does not count, so URLs stay scalars.
func splitKeyValue(s string) (key, value string, ok bool) {
	if idx := strings.Index(s, ": "); idx >= 0 {
		key, value = strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+2:])
	} else if strings.HasSuffix(s, ":") {
		key = strings.TrimSpace(s[:len(s)-1])
	} else {
		return "", "", false
	}
	if key == "" || strings.Contains(key, ":") {
		return "", "", false
	}
	return key, value, true
}

func isInlineList(s string) bool {
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// splitInlineList splits "[a, b, c]" into trimmed elements, no coercion.
func splitInlineList(s string) []string {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		items = append(items, unquote(strings.TrimSpace(p)))
	}
	return items
}

// coerceScalar maps the textual value to its typed form: booleans, nulls and
// numbers, everything else a string. Quoted values skip coercion.
func coerceScalar(s string) any {
	if unquoted := unquote(s); unquoted != s {
		return unquoted
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null", "~":
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// unquote strips one pair of matching surrounding quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func indentOf(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
