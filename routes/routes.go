package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Kryoz0512/Survey-Chain/app"
	"github.com/Kryoz0512/Survey-Chain/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// created surveys (navigation targets after submit/cancel)
	api.Get("/surveys", ListSurveys(app))
	api.Get("/surveys/{id}", GetSurveyById(app))

	// draft editing sessions
	api.Route("/drafts", func(r chi.Router) {
		r.Use(middlewares.Creator(app.TokenSecret))

		r.Post("/", OpenDraft(app))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", GetDraft(app))
			r.Patch("/", UpdateDraft(app))
			r.Delete("/", AbandonDraft(app))

			r.Post("/questions", AddQuestion(app))
			r.Route("/questions/{questionId}", func(r chi.Router) {
				r.Patch("/", UpdateQuestion(app))
				r.Delete("/", RemoveQuestion(app))

				r.Post("/options", AddOption(app))
				r.Put(`/options/{index:^\d+$}`, UpdateOption(app))
				r.Delete(`/options/{index:^\d+$}`, RemoveOption(app))
			})

			r.Put("/screening", UpdateScreening(app))
			r.Post("/submit", SubmitDraft(app))
		})
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}
