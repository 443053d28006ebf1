package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kryoz0512/Survey-Chain/app"
	"github.com/Kryoz0512/Survey-Chain/draft"
	"github.com/Kryoz0512/Survey-Chain/escrow"
	"github.com/Kryoz0512/Survey-Chain/model"
)

type okEscrow struct{}

func (okEscrow) Create(ctx context.Context, params escrow.CreateParams) (model.SurveyRecord, error) {
	return model.SurveyRecord{ID: "survey-1"}, nil
}

func testApp() app.App {
	return app.App{
		Sessions:    draft.NewSessions(draft.UUIDGenerator),
		Coordinator: draft.NewCoordinator(okEscrow{}),
	}
}

func draftRequest(method, target, body string, params map[string]string, wallet string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, oauth.ClaimsContext, map[string]string{
		"roles":  "creator",
		"wallet": wallet,
	})
	return r.WithContext(ctx)
}

func TestOpenDraft(t *testing.T) {
	a := testApp()

	w := httptest.NewRecorder()
	OpenDraft(a)(w, draftRequest("POST", "/api/drafts", "", nil, "0xabc"))

	require.Equal(t, http.StatusCreated, w.Code)

	body := struct {
		ID    string            `json:"id"`
		Draft model.SurveyDraft `json:"draft"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	assert.Len(t, body.Draft.Questions, 1)

	_, ok := a.Sessions.Get(body.ID)
	assert.True(t, ok)
}

func TestSubmitDraftValidation(t *testing.T) {
	a := testApp()
	s := a.Sessions.Open()
	params := map[string]string{"id": s.ID()}

	t.Run("empty draft fails with 422", func(t *testing.T) {
		w := httptest.NewRecorder()
		SubmitDraft(a)(w, draftRequest("POST", "/api/drafts/"+s.ID()+"/submit", "", params, "0xabc"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "missing_required_field")
	})

	t.Run("no wallet fails with missing_identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		SubmitDraft(a)(w, draftRequest("POST", "/api/drafts/"+s.ID()+"/submit", "", params, ""))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "missing_identity")
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		SubmitDraft(a)(w, draftRequest("POST", "/api/drafts/nope/submit", "", map[string]string{"id": "nope"}, "0xabc"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubmitDraftSuccessClosesSession(t *testing.T) {
	a := testApp()
	s := a.Sessions.Open()

	title, desc, reward, count := "Test", "D", "0.1", "10"
	s.Update(draft.DraftUpdate{
		Title:               &title,
		Description:         &desc,
		RewardAmount:        &reward,
		NumberOfRespondents: &count,
	})
	s.UpdateQuestion(s.Draft().Questions[0].ID, draft.FieldText, "Q1")

	w := httptest.NewRecorder()
	SubmitDraft(a)(w, draftRequest("POST", "/api/drafts/"+s.ID()+"/submit", "", map[string]string{"id": s.ID()}, "0xabc"))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "survey-1")

	_, ok := a.Sessions.Get(s.ID())
	assert.False(t, ok)
}
