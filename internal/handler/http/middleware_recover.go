package http

import (
	"fmt"
	"net/http"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

// withRecover turns a panic in the relay pipeline into a soft failure
// envelope, so the relay never answers with a 5xx status.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().Interface("panic", rec).Msg("recovered from panic")
			writeEnvelope(w, r, models.FailureEnvelope(fmt.Sprint(rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
