package draft

import "github.com/Kryoz0512/Survey-Chain/model"

// ScreeningUpdate is a partial update of the screening configuration.
// Nil fields are left untouched, so toggling FlexibleScheduling off and on
// restores any DateTime entered earlier.
type ScreeningUpdate struct {
	Description        *string `json:"description"`
	Requirements       *string `json:"requirements"`
	FlexibleScheduling *bool   `json:"flexibleScheduling"`
	DateTime           *string `json:"dateTime"`
	MeetingLink        *string `json:"meetingLink"`
	Location           *string `json:"location"`
	Deadline           *string `json:"deadline"`
}

func ApplyScreening(info model.ScreeningInfo, upd ScreeningUpdate) model.ScreeningInfo {
	if upd.Description != nil {
		info.Description = *upd.Description
	}
	if upd.Requirements != nil {
		info.Requirements = *upd.Requirements
	}
	if upd.FlexibleScheduling != nil {
		info.FlexibleScheduling = *upd.FlexibleScheduling
	}
	if upd.DateTime != nil {
		info.DateTime = *upd.DateTime
	}
	if upd.MeetingLink != nil {
		info.MeetingLink = *upd.MeetingLink
	}
	if upd.Location != nil {
		info.Location = *upd.Location
	}
	if upd.Deadline != nil {
		info.Deadline = *upd.Deadline
	}
	return info
}
