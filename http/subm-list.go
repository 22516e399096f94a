package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/subassign/portal/httpjson"
	"github.com/subassign/portal/submission"
)

func mapSubmissions(rows []submission.Submission) []Submission {
	res := make([]Submission, 0, len(rows))
	for _, row := range rows {
		res = append(res, mapSubmission(row))
	}
	return res
}

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, err := instructorOnly(r); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	rows, err := httpserver.submSrvc.ListAll(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubmissions(rows))
}

func (httpserver *HttpServer) listSubmissionsByAssignment(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, err := requireRole(r, nil); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	assignmentID, err := uuid.Parse(chi.URLParam(r, "assignmentId"))
	if err != nil {
		httpjson.HandleError(logger, w, newErrBadId().SetDebug(err))
		return
	}

	rows, err := httpserver.submSrvc.ListByAssignment(r.Context(), assignmentID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubmissions(rows))
}
