package draft

import "github.com/Kryoz0512/Survey-Chain/model"

// Question list operations. All of them are pure: the input slice is never
// written through, a fresh slice is returned instead, so a snapshot taken
// before a mutation stays valid.

// Question field names accepted by UpdateQuestion.
const (
	FieldText = "text"
	FieldType = "type"
)

func AddQuestion(questions []model.Question, id string) []model.Question {
	next := make([]model.Question, len(questions), len(questions)+1)
	copy(next, questions)
	return append(next, model.Question{ID: id, Type: model.ShortAnswer})
}

// RemoveQuestion drops the question with the given id. A draft always keeps
// at least one question: removal from a single-question list is a no-op.
func RemoveQuestion(questions []model.Question, id string) []model.Question {
	if len(questions) <= 1 {
		return questions
	}
	next := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if q.ID != id {
			next = append(next, q)
		}
	}
	return next
}

// UpdateQuestion replaces a single named field on the matching question.
// Unknown fields and unknown ids leave the list unchanged.
func UpdateQuestion(questions []model.Question, id, field, value string) []model.Question {
	next := make([]model.Question, len(questions))
	copy(next, questions)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case FieldText:
			next[i].Text = value
		case FieldType:
			// changing type away from a choice type keeps Options around,
			// they are just ignored downstream
			next[i].Type = model.QuestionType(value)
		}
	}
	return next
}

// AddOption appends an empty option to the matching question, creating the
// option list on first use. No-op if the question does not exist.
func AddOption(questions []model.Question, questionID string) []model.Question {
	next := make([]model.Question, len(questions))
	copy(next, questions)
	for i := range next {
		if next[i].ID == questionID {
			opts := make([]string, len(next[i].Options), len(next[i].Options)+1)
			copy(opts, next[i].Options)
			next[i].Options = append(opts, "")
		}
	}
	return next
}

func UpdateOption(questions []model.Question, questionID string, index int, value string) []model.Question {
	next := make([]model.Question, len(questions))
	copy(next, questions)
	for i := range next {
		if next[i].ID != questionID || index < 0 || index >= len(next[i].Options) {
			continue
		}
		opts := make([]string, len(next[i].Options))
		copy(opts, next[i].Options)
		opts[index] = value
		next[i].Options = opts
	}
	return next
}

// RemoveOption deletes by position, shifting later options down. Callers must
// re-derive indices from the current list after every removal.
func RemoveOption(questions []model.Question, questionID string, index int) []model.Question {
	next := make([]model.Question, len(questions))
	copy(next, questions)
	for i := range next {
		if next[i].ID != questionID || index < 0 || index >= len(next[i].Options) {
			continue
		}
		opts := make([]string, 0, len(next[i].Options)-1)
		opts = append(opts, next[i].Options[:index]...)
		opts = append(opts, next[i].Options[index+1:]...)
		next[i].Options = opts
	}
	return next
}
