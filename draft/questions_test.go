package draft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kryoz0512/Survey-Chain/model"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("q%d", n)
	}
}

func TestAddQuestion(t *testing.T) {
	newID := sequentialIDs()
	questions := []model.Question{{ID: newID(), Text: "Q1", Type: model.Rating}}

	questions = AddQuestion(questions, newID())

	assert.Len(t, questions, 2)
	added := questions[1]
	assert.Equal(t, "q2", added.ID)
	assert.Equal(t, model.ShortAnswer, added.Type)
	assert.Empty(t, added.Text)
	assert.Nil(t, added.Options)

	t.Run("ids stay disjoint", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			questions = AddQuestion(questions, newID())
		}
		for _, q := range questions {
			assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
			seen[q.ID] = true
		}
	})
}

func TestRemoveQuestion(t *testing.T) {
	t.Run("keeps at least one question", func(t *testing.T) {
		questions := []model.Question{{ID: "q1", Text: "only one"}}

		got := RemoveQuestion(questions, "q1")

		assert.Equal(t, questions, got)
	})

	t.Run("removes by id", func(t *testing.T) {
		questions := []model.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}}

		got := RemoveQuestion(questions, "q2")

		assert.Equal(t, []model.Question{{ID: "q1"}, {ID: "q3"}}, got)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		questions := []model.Question{{ID: "q1"}, {ID: "q2"}}

		got := RemoveQuestion(questions, "nope")

		assert.Equal(t, questions, got)
	})
}

func TestUpdateQuestion(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Text: "first", Type: model.ShortAnswer},
		{ID: "q2", Text: "second", Type: model.MultipleChoice, Options: []string{"a", "b"}},
	}

	t.Run("updates only the named field", func(t *testing.T) {
		got := UpdateQuestion(questions, "q1", FieldText, "renamed")

		assert.Equal(t, "renamed", got[0].Text)
		assert.Equal(t, model.ShortAnswer, got[0].Type)
		assert.Equal(t, questions[1], got[1])
	})

	t.Run("type change keeps options", func(t *testing.T) {
		got := UpdateQuestion(questions, "q2", FieldType, string(model.ShortAnswer))

		assert.Equal(t, model.ShortAnswer, got[1].Type)
		assert.Equal(t, []string{"a", "b"}, got[1].Options)
	})

	t.Run("unknown field is a no-op", func(t *testing.T) {
		got := UpdateQuestion(questions, "q1", "required", "true")

		assert.Equal(t, questions, got)
	})

	t.Run("input slice untouched", func(t *testing.T) {
		UpdateQuestion(questions, "q1", FieldText, "changed")

		assert.Equal(t, "first", questions[0].Text)
	})
}

func TestOptions(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Type: model.MultipleChoice},
		{ID: "q2", Type: model.Checkbox, Options: []string{"yes", "no"}},
	}

	t.Run("add creates the list on first use", func(t *testing.T) {
		got := AddOption(questions, "q1")

		assert.Equal(t, []string{""}, got[0].Options)
	})

	t.Run("add appends", func(t *testing.T) {
		got := AddOption(questions, "q2")

		assert.Equal(t, []string{"yes", "no", ""}, got[1].Options)
	})

	t.Run("add to unknown question is a no-op", func(t *testing.T) {
		got := AddOption(questions, "nope")

		assert.Equal(t, questions, got)
	})

	t.Run("update sets by position", func(t *testing.T) {
		got := UpdateOption(questions, "q2", 1, "maybe")

		assert.Equal(t, []string{"yes", "maybe"}, got[1].Options)
		assert.Equal(t, []string{"yes", "no"}, questions[1].Options)
	})

	t.Run("update out of range is a no-op", func(t *testing.T) {
		assert.Equal(t, questions, UpdateOption(questions, "q2", 2, "x"))
		assert.Equal(t, questions, UpdateOption(questions, "q2", -1, "x"))
	})

	t.Run("remove shifts later options down", func(t *testing.T) {
		got := RemoveOption(questions, "q2", 0)

		assert.Equal(t, []string{"no"}, got[1].Options)
	})

	t.Run("remove out of range is a no-op", func(t *testing.T) {
		assert.Equal(t, questions, RemoveOption(questions, "q2", 2))
		assert.Equal(t, questions, RemoveOption(questions, "q2", -1))
	})
}
