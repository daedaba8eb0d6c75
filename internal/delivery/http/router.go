package http

import (
	"net/http"

	"speakerservice/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the mutating routes; pass middleware.NoAuth to leave them open.
func NewRouter(speakerController *controllers.SpeakerController, requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Speakers
	mux.HandleFunc("POST /speakers", requireAuth(speakerController.Add))
	mux.HandleFunc("GET /speakers", speakerController.AllSpeakers)
	mux.HandleFunc("GET /speakers/{id}", speakerController.Retrieve)
	mux.HandleFunc("DELETE /speakers/{id}", requireAuth(speakerController.Remove))
	mux.HandleFunc("POST /speakers/import/sessionize/{sessionizeID}", requireAuth(speakerController.ImportSessionize))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
