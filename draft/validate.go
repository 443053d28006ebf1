package draft

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Kryoz0512/Survey-Chain/model"
)

// Validation failures, one per attempt: the chain short-circuits on the first
// failing rule, no accumulation.
var (
	ErrMissingIdentity          = errors.New("missing_identity")
	ErrMissingRequiredField     = errors.New("missing_required_field")
	ErrInvalidReward            = errors.New("invalid_reward")
	ErrNoValidQuestions         = errors.New("no_valid_questions")
	ErrMissingScreeningDeadline = errors.New("missing_screening_deadline")
)

// Validate gates submission. Order matters: identity, required text fields,
// reward amount, questions, then (targeted only) the screening deadline.
func Validate(d model.SurveyDraft, identity string) error {
	if identity == "" {
		return ErrMissingIdentity
	}
	if d.Title == "" || d.Description == "" || d.RewardAmount == "" || d.NumberOfRespondents == "" {
		return ErrMissingRequiredField
	}
	reward, err := strconv.ParseFloat(d.RewardAmount, 64)
	if err != nil || math.IsNaN(reward) || math.IsInf(reward, 0) || reward <= 0 {
		return ErrInvalidReward
	}
	if len(ValidQuestions(d.Questions)) == 0 {
		return ErrNoValidQuestions
	}
	if d.RespondentType == model.Targeted && d.Screening.Deadline == "" {
		return ErrMissingScreeningDeadline
	}
	return nil
}

// ValidQuestions filters out questions whose trimmed text is blank. Those stay
// editable in the draft but are never submitted.
func ValidQuestions(questions []model.Question) []model.Question {
	valid := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Text) != "" {
			valid = append(valid, q)
		}
	}
	return valid
}
