package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Kryoz0512/Survey-Chain/app"
	"github.com/Kryoz0512/Survey-Chain/draft"
	"github.com/Kryoz0512/Survey-Chain/httpx"
	"github.com/Kryoz0512/Survey-Chain/log"
	"github.com/Kryoz0512/Survey-Chain/routes/middlewares"
)

func OpenDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := app.Sessions.Open()

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id":    session.ID(),
			"draft": session.Draft(),
		})
	}
}

func GetDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "get_draft", chi.URLParam(r, "id"))
			return
		}

		render.JSON(w, r, session.Draft())
	}
}

func UpdateDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "update_draft", chi.URLParam(r, "id"))
			return
		}

		upd := draft.DraftUpdate{}
		err := render.DecodeJSON(r.Body, &upd)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		session.Update(upd)
		render.JSON(w, r, session.Draft())
	}
}

// AbandonDraft discards the session; the client navigates back to the listing.
func AbandonDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.Sessions.Close(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func AddQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "add_question", chi.URLParam(r, "id"))
			return
		}

		question := session.AddQuestion()

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, question)
	}
}

func UpdateQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "update_question", chi.URLParam(r, "id"))
			return
		}

		body := struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		session.UpdateQuestion(chi.URLParam(r, "questionId"), body.Field, body.Value)
		render.JSON(w, r, session.Draft())
	}
}

func RemoveQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "remove_question", chi.URLParam(r, "id"))
			return
		}

		session.RemoveQuestion(chi.URLParam(r, "questionId"))
		render.JSON(w, r, session.Draft())
	}
}

func AddOption(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "add_option", chi.URLParam(r, "id"))
			return
		}

		session.AddOption(chi.URLParam(r, "questionId"))
		render.JSON(w, r, session.Draft())
	}
}

func UpdateOption(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "update_option", chi.URLParam(r, "id"))
			return
		}

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.index")
			return
		}

		body := struct {
			Value string `json:"value"`
		}{}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		session.UpdateOption(chi.URLParam(r, "questionId"), index, body.Value)
		render.JSON(w, r, session.Draft())
	}
}

func RemoveOption(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "remove_option", chi.URLParam(r, "id"))
			return
		}

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.index")
			return
		}

		session.RemoveOption(chi.URLParam(r, "questionId"), index)
		render.JSON(w, r, session.Draft())
	}
}

func UpdateScreening(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "update_screening", chi.URLParam(r, "id"))
			return
		}

		upd := draft.ScreeningUpdate{}
		err := render.DecodeJSON(r.Body, &upd)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		session.SetScreening(upd)
		render.JSON(w, r, session.Draft())
	}
}

func SubmitDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := app.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			httpx.LogNotFound(w, "submit_draft", chi.URLParam(r, "id"))
			return
		}

		record, err := app.Coordinator.Submit(r.Context(), session, middlewares.WalletAddress(r))
		switch {
		case err == nil:
			app.Sessions.Close(session.ID())
			render.Status(r, http.StatusCreated)
			render.JSON(w, r, record)
		case errors.Is(err, draft.ErrSubmissionInFlight):
			httpx.LogKind(w, r, http.StatusConflict, log.DebugLevel, "submit_draft.in_flight", err.Error())
		case errors.Is(err, draft.ErrSubmissionFailed):
			// cause already logged by the coordinator
			httpx.LogKind(w, r, http.StatusBadGateway, log.DebugLevel, "submit_draft.escrow", err.Error())
		default:
			httpx.LogKind(w, r, http.StatusUnprocessableEntity, log.DebugLevel, "submit_draft.validate", err.Error())
		}
	}
}
