package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kryoz0512/Survey-Chain/model"
)

func validDraft() model.SurveyDraft {
	return model.SurveyDraft{
		Title:               "Test",
		Description:         "D",
		RewardAmount:        "0.1",
		RespondentType:      model.Public,
		NumberOfRespondents: "10",
		Questions:           []model.Question{{ID: "q1", Text: "Q1", Type: model.ShortAnswer}},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid public draft", func(t *testing.T) {
		assert.NoError(t, Validate(validDraft(), "0xabc"))
	})

	t.Run("missing identity comes first", func(t *testing.T) {
		d := validDraft()
		d.Title = ""

		assert.ErrorIs(t, Validate(d, ""), ErrMissingIdentity)
	})

	t.Run("required fields", func(t *testing.T) {
		for _, clear := range map[string]func(*model.SurveyDraft){
			"title":               func(d *model.SurveyDraft) { d.Title = "" },
			"description":         func(d *model.SurveyDraft) { d.Description = "" },
			"rewardAmount":        func(d *model.SurveyDraft) { d.RewardAmount = "" },
			"numberOfRespondents": func(d *model.SurveyDraft) { d.NumberOfRespondents = "" },
		} {
			d := validDraft()
			clear(&d)

			assert.ErrorIs(t, Validate(d, "0xabc"), ErrMissingRequiredField)
		}
	})

	t.Run("reward amount", func(t *testing.T) {
		for reward, want := range map[string]error{
			"0.001": nil,
			"0":     ErrInvalidReward,
			"-1":    ErrInvalidReward,
			"abc":   ErrInvalidReward,
			"NaN":   ErrInvalidReward,
			"+Inf":  ErrInvalidReward,
			"":      ErrMissingRequiredField,
		} {
			d := validDraft()
			d.RewardAmount = reward

			err := Validate(d, "0xabc")
			if want == nil {
				assert.NoError(t, err, "reward %q", reward)
			} else {
				assert.ErrorIs(t, err, want, "reward %q", reward)
			}
		}
	})

	t.Run("all questions blank", func(t *testing.T) {
		d := validDraft()
		d.Questions = []model.Question{{ID: "q1", Text: "   "}, {ID: "q2", Text: "\t\n"}}

		assert.ErrorIs(t, Validate(d, "0xabc"), ErrNoValidQuestions)
	})

	t.Run("targeted requires a screening deadline", func(t *testing.T) {
		d := validDraft()
		d.RespondentType = model.Targeted
		d.NumberOfRespondents = "5"

		assert.ErrorIs(t, Validate(d, "0xabc"), ErrMissingScreeningDeadline)

		d.Screening.Deadline = "2026-09-01T12:00"
		assert.NoError(t, Validate(d, "0xabc"))
	})

	t.Run("public ignores screening entirely", func(t *testing.T) {
		d := validDraft()
		d.Screening = model.ScreeningInfo{Description: "stale"}

		assert.NoError(t, Validate(d, "0xabc"))
	})
}

func TestValidQuestions(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Text: "keep"},
		{ID: "q2", Text: "  "},
		{ID: "q3", Text: " also keep "},
		{ID: "q4"},
	}

	valid := ValidQuestions(questions)

	assert.Len(t, valid, 2)
	assert.Equal(t, "q1", valid[0].ID)
	assert.Equal(t, "q3", valid[1].ID)
}
