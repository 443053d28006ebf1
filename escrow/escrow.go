// Package escrow is the boundary to the collaborator that persists created
// surveys and holds their reward pools. Reward settlement and distribution
// happen entirely on the collaborator's side.
package escrow

import (
	"context"

	"github.com/Kryoz0512/Survey-Chain/model"
)

// CreateParams is the exact call shape of the creation operation.
// NumberOfRespondents and Screening are nil, not zero, for public surveys.
type CreateParams struct {
	Title               string
	Description         string
	Questions           []model.Question
	RewardAmount        string
	Creator             string
	RespondentType      model.RespondentType
	NumberOfRespondents *int
	Screening           *model.ScreeningInfo
}

// Creator persists a validated survey and returns the created record.
// The call may fail for any underlying transport or consensus reason.
type Creator interface {
	Create(ctx context.Context, params CreateParams) (model.SurveyRecord, error)
}
