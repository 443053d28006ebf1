package draft

import (
	"context"
	"errors"
	"strconv"

	"github.com/Kryoz0512/Survey-Chain/escrow"
	"github.com/Kryoz0512/Survey-Chain/log"
	"github.com/Kryoz0512/Survey-Chain/model"
)

var (
	// ErrSubmissionInFlight rejects a second submit while one is outstanding.
	ErrSubmissionInFlight = errors.New("submission_in_flight")
	// ErrSubmissionFailed is the only failure the creator sees when the escrow
	// call rejects; the underlying cause goes to the log.
	ErrSubmissionFailed = errors.New("submission_failure")
)

// Coordinator turns a validated draft into exactly one escrow creation call.
type Coordinator struct {
	escrow escrow.Creator
}

func NewCoordinator(creator escrow.Creator) *Coordinator {
	return &Coordinator{escrow: creator}
}

// Submit runs validate → transform → escrow create. On any failure the draft
// is left untouched so the creator can correct and resubmit. At most one
// submission per session is in flight at a time; concurrent attempts get
// ErrSubmissionInFlight without reaching the escrow.
func (c *Coordinator) Submit(ctx context.Context, s *Session, identity string) (model.SurveyRecord, error) {
	if !s.inFlight.CAS(false, true) {
		return model.SurveyRecord{}, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	d := s.Draft()
	if err := Validate(d, identity); err != nil {
		return model.SurveyRecord{}, err
	}

	params := escrow.CreateParams{
		Title:          d.Title,
		Description:    d.Description,
		Questions:      ValidQuestions(d.Questions),
		RewardAmount:   d.RewardAmount,
		Creator:        identity,
		RespondentType: d.RespondentType,
	}
	if d.RespondentType == model.Targeted {
		// validation only checks presence, the count is parsed leniently here
		n, _ := strconv.Atoi(d.NumberOfRespondents)
		params.NumberOfRespondents = &n
		screening := d.Screening
		params.Screening = &screening
	}

	record, err := c.escrow.Create(ctx, params)
	if err != nil {
		log.Errorf("submit.escrow_create: %s", err)
		return model.SurveyRecord{}, ErrSubmissionFailed
	}
	return record, nil
}
