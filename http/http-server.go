package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/auth"
	appLogger "github.com/subassign/portal/logger"
	"github.com/subassign/portal/submission"
	"github.com/subassign/portal/user"
)

type HttpServer struct {
	userSrvc       *user.UserSrvc
	assignmentSrvc *assignment.AssignmentSrvc
	submSrvc       *submission.SubmissionSrvc
	jwtKey         []byte
	router         *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	assignmentSrvc *assignment.AssignmentSrvc,
	submSrvc *submission.SubmissionSrvc,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("subassign", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	// expose the request-scoped logger to the service and repo layers
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appLogger.WithLogger(r.Context(), httplog.LogEntry(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		userSrvc:       userSrvc,
		assignmentSrvc: assignmentSrvc,
		submSrvc:       submSrvc,
		jwtKey:         jwtKey,
		router:         router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router so tests can mount it on httptest servers.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/auth/register", httpserver.authRegister)
	r.Get("/assignments", httpserver.listAssignments)
	r.Post("/assignments", httpserver.createAssignment)
	r.Delete("/assignments/{id}", httpserver.deleteAssignment)
	r.Get("/submissions", httpserver.listSubmissions)
	r.Get("/submissions/assignment/{assignmentId}", httpserver.listSubmissionsByAssignment)
	r.Post("/submissions", httpserver.createSubmission)
	r.Put("/submissions/{id}/grade", httpserver.gradeSubmission)
}
