package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeFieldOrder(t *testing.T) {
	rec := Record{
		"tags":     List([]string{"health"}),
		"type":     Scalar("daily"),
		"status":   Scalar("active"),
		"priority": Scalar("high"),
	}

	out := Serialize(rec)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "---", lines[0])
	assert.Equal(t, "type: daily", lines[1])
	assert.Equal(t, "status: active", lines[2])
	assert.Equal(t, "priority: high", lines[3])
	assert.Equal(t, "tags: [health]", lines[4])
	assert.Equal(t, "---", lines[5])
}

func TestSerializeEmptyCollections(t *testing.T) {
	rec := Record{
		"completions": List(nil),
		"subtasks":    Objects(nil),
		"tags":        List(nil),
	}

	out := Serialize(rec)
	assert.Contains(t, out, "completions: []\n")
	assert.Contains(t, out, "subtasks: []\n")
	assert.Contains(t, out, "tags: []\n")
}

func TestSerializeObjectList(t *testing.T) {
	rec := Record{
		"subtasks": Objects([]map[string]string{
			{"id": "a", "title": "First thing", "completed": "false"},
			{"id": "b", "title": "Second thing", "completed": "true"},
		}),
	}

	out := Serialize(rec)
	assert.Contains(t, out, "subtasks:\n  - id: a\n    title: First thing\n    completed: false\n  - id: b\n")
}

func TestSerializeMapping(t *testing.T) {
	rec := Record{
		"dailySubtaskCompletions": Mapping(map[string]Value{
			"2024-01-06": List([]string{"a"}),
			"2024-01-05": List([]string{"a", "b"}),
		}),
		"monthlyProgress": Mapping(map[string]Value{
			"2024-01": Scalar(int64(3)),
		}),
	}

	out := Serialize(rec)
	// Map keys come out sorted.
	assert.Contains(t, out, "dailySubtaskCompletions:\n  2024-01-05: [a, b]\n  2024-01-06: [a]\n")
	assert.Contains(t, out, "monthlyProgress:\n  2024-01: 3\n")
}

func TestComposePreservesBody(t *testing.T) {
	rec := Record{"type": Scalar("daily")}
	body := "# Morning routine\n\nNotes stay exactly as written.\n"

	out := Compose(rec, body)
	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.Equal(t, body, Body(out))
}

func TestRoundTrip(t *testing.T) {
	rec := Record{
		"type":      Scalar("weekly"),
		"status":    Scalar("active"),
		"startDate": Scalar("2024-01-01"),
		"endDate":   Scalar("2024-06-30"),
		"priority":  Scalar("medium"),
		"completions": List([]string{"2024-01-01", "2024-01-08"}),
		"subtasks": Objects([]map[string]string{
			{"id": "a", "title": "Plan the week", "completed": "false"},
			{"id": "b", "title": "Review notes", "completed": "false"},
		}),
		"weeklySubtaskCompletions": Mapping(map[string]Value{
			"2024-01-01": List([]string{"a", "b"}),
			"2024-01-08": List([]string{"a"}),
		}),
		"monthlyProgress": Mapping(map[string]Value{
			"2024-01": Scalar(int64(2)),
		}),
		"recurrence": Mapping(map[string]Value{
			"frequency":    Scalar("weekly"),
			"daysOfWeek":   List([]string{"1", "3"}),
			"targetCount":  Scalar(int64(4)),
			"minimumCount": Scalar(int64(2)),
		}),
		"tags": List([]string{"planning"}),
	}

	parsed := Parse(Compose(rec, "# Weekly review\n"))

	assert.Equal(t, "weekly", parsed["type"].AsString())
	assert.Equal(t, rec["completions"].AsList(), parsed["completions"].AsList())
	require.Equal(t, KindObjectList, parsed["subtasks"].Kind)
	assert.Equal(t, rec["subtasks"].Objects, parsed["subtasks"].Objects)
	require.Equal(t, KindMap, parsed["weeklySubtaskCompletions"].Kind)
	assert.Equal(t, []string{"a", "b"}, parsed["weeklySubtaskCompletions"].Map["2024-01-01"].AsList())
	assert.Equal(t, []string{"a"}, parsed["weeklySubtaskCompletions"].Map["2024-01-08"].AsList())

	n, ok := parsed["monthlyProgress"].Map["2024-01"].AsInt()
	require.True(t, ok)
	assert.Equal(t, 2, n)

	recur := parsed["recurrence"]
	assert.Equal(t, "weekly", recur.Map["frequency"].AsString())
	assert.Equal(t, []string{"1", "3"}, recur.Map["daysOfWeek"].AsList())
	target, _ := recur.Map["targetCount"].AsInt()
	minimum, _ := recur.Map["minimumCount"].AsInt()
	assert.Equal(t, 4, target)
	assert.Equal(t, 2, minimum)
}
