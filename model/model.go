package model

import "time"

type QuestionType string

const (
	ShortAnswer    QuestionType = "short-answer"
	LongAnswer     QuestionType = "long-answer"
	MultipleChoice QuestionType = "multiple-choice"
	Checkbox       QuestionType = "checkbox"
	Rating         QuestionType = "rating"
	Date           QuestionType = "date"
	Time           QuestionType = "time"
)

type RespondentType string

const (
	Public   RespondentType = "public"
	Targeted RespondentType = "targeted"
)

// Question is one entry of a draft's ordered question list. Options is nil
// until the first option is added; it is kept, not cleared, when Type moves
// away from multiple-choice/checkbox.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// ScreeningInfo configures respondent vetting for targeted surveys.
// DateTime is only presented while FlexibleScheduling is off, but its stored
// value survives toggling.
type ScreeningInfo struct {
	Description        string `json:"description"`
	Requirements       string `json:"requirements"`
	FlexibleScheduling bool   `json:"flexibleScheduling"`
	DateTime           string `json:"dateTime,omitempty"`
	MeetingLink        string `json:"meetingLink,omitempty"`
	Location           string `json:"location,omitempty"`
	Deadline           string `json:"deadline"`
}

// SurveyDraft is the in-memory survey definition under edit. RewardAmount and
// NumberOfRespondents are decimal text, parsed lazily at validation and
// submission time. Screening is only consulted while RespondentType is
// targeted; switching back to public leaves it in place, ignored.
type SurveyDraft struct {
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	RewardAmount        string         `json:"rewardAmount"`
	RespondentType      RespondentType `json:"respondentType"`
	NumberOfRespondents string         `json:"numberOfRespondents"`
	Questions           []Question     `json:"questions"`
	Screening           ScreeningInfo  `json:"screening"`
}

// SurveyRecord is a survey persisted by the escrow collaborator.
// NumberOfRespondents and Screening are absent, not empty, for public surveys.
type SurveyRecord struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	RewardAmount        string         `json:"rewardAmount"`
	Creator             string         `json:"creator"`
	RespondentType      RespondentType `json:"respondentType"`
	NumberOfRespondents *int           `json:"numberOfRespondents,omitempty"`
	Questions           []Question     `json:"questions"`
	Screening           *ScreeningInfo `json:"screening,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}
