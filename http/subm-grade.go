package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/subassign/portal/httpjson"
	"github.com/subassign/portal/submission"
)

func (httpserver *HttpServer) gradeSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, err := instructorOnly(r); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.HandleError(logger, w, newErrBadId().SetDebug(err))
		return
	}

	type gradeRequest struct {
		Grade    int     `json:"grade"`
		Feedback *string `json:"feedback"`
	}

	var request gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received grade submission request", "id", id, "grade", request.Grade)

	_, err = httpserver.submSrvc.Grade(r.Context(), submission.GradeParams{
		SubmissionID: id,
		Grade:        request.Grade,
		Feedback:     request.Feedback,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type gradeResponse struct {
		Message string `json:"message"`
	}

	httpjson.WriteSuccessJson(w, gradeResponse{Message: "submission graded successfully"})
}
