package draft

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/Kryoz0512/Survey-Chain/model"
)

// Session is one editing session owning a single draft. Mutations are
// serialized by the session mutex; each one swaps in slices produced by the
// pure operations in questions.go, so Draft snapshots never see a half-applied
// edit. The inFlight flag backs the submission single-flight guarantee.
type Session struct {
	id    string
	newID IDGenerator

	mu       sync.Mutex
	draft    model.SurveyDraft
	inFlight atomic.Bool
}

func newSession(id string, newID IDGenerator) *Session {
	return &Session{
		id:    id,
		newID: newID,
		draft: model.SurveyDraft{
			RespondentType: model.Public,
			Questions:      []model.Question{{ID: newID(), Type: model.ShortAnswer}},
		},
	}
}

func (s *Session) ID() string {
	return s.id
}

// Draft returns a snapshot of the current draft. The contained slices are
// never written through by later mutations.
func (s *Session) Draft() model.SurveyDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// DraftUpdate is a partial update of the draft's top-level fields.
type DraftUpdate struct {
	Title               *string               `json:"title"`
	Description         *string               `json:"description"`
	RewardAmount        *string               `json:"rewardAmount"`
	RespondentType      *model.RespondentType `json:"respondentType"`
	NumberOfRespondents *string               `json:"numberOfRespondents"`
}

// Update applies a partial top-level update. Switching RespondentType back to
// public does not clear previously entered screening fields.
func (s *Session) Update(upd DraftUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upd.Title != nil {
		s.draft.Title = *upd.Title
	}
	if upd.Description != nil {
		s.draft.Description = *upd.Description
	}
	if upd.RewardAmount != nil {
		s.draft.RewardAmount = *upd.RewardAmount
	}
	if upd.RespondentType != nil {
		s.draft.RespondentType = *upd.RespondentType
	}
	if upd.NumberOfRespondents != nil {
		s.draft.NumberOfRespondents = *upd.NumberOfRespondents
	}
}

func (s *Session) AddQuestion() model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Questions = AddQuestion(s.draft.Questions, s.newID())
	return s.draft.Questions[len(s.draft.Questions)-1]
}

func (s *Session) RemoveQuestion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Questions = RemoveQuestion(s.draft.Questions, id)
}

func (s *Session) UpdateQuestion(id, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Questions = UpdateQuestion(s.draft.Questions, id, field, value)
}

func (s *Session) AddOption(questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Questions = AddOption(s.draft.Questions, questionID)
}

func (s *Session) UpdateOption(questionID string, index int, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Questions = UpdateOption(s.draft.Questions, questionID, index, value)
}

func (s *Session) RemoveOption(questionID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Questions = RemoveOption(s.draft.Questions, questionID, index)
}

func (s *Session) SetScreening(upd ScreeningUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Screening = ApplyScreening(s.draft.Screening, upd)
}

// Sessions keeps the open editing sessions, keyed by opaque session id.
// A session disappears on successful submission or explicit abandon.
type Sessions struct {
	mu    sync.Mutex
	byID  map[string]*Session
	newID IDGenerator
}

func NewSessions(newID IDGenerator) *Sessions {
	return &Sessions{
		byID:  map[string]*Session{},
		newID: newID,
	}
}

// Open starts a new editing session with the default draft: public, one empty
// short-answer question.
func (ss *Sessions) Open() *Session {
	s := newSession(ss.newID(), ss.newID)
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.byID[s.id] = s
	return s
}

func (ss *Sessions) Get(id string) (*Session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s, ok := ss.byID[id]
	return s, ok
}

func (ss *Sessions) Close(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.byID, id)
}
