package httpx

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Kryoz0512/Survey-Chain/log"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log a debug message, and send an HTTP response with status 404 and default text
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	w.WriteHeader(http.StatusNotFound)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Will log an error kind at the given level, and send an HTTP response with
// the given status and a JSON body carrying the kind
func LogKind(w http.ResponseWriter, r *http.Request, status int, level log.Level, code, kind string) {
	log.Log(level, code+":", kind)
	render.Status(r, status)
	render.JSON(w, r, map[string]any{
		"error": kind,
	})
}
