package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/subassign/portal/httpjson"
	"github.com/subassign/portal/srvcerror"
)

func newErrBadId() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeNotFound,
		"no entity with the given id exists",
	).SetHttpStatusCode(http.StatusNotFound)
}

func (httpserver *HttpServer) deleteAssignment(w http.ResponseWriter, r *http.Request) {
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

	logger.Info("received delete assignment request", "id", id)

	if err := httpserver.assignmentSrvc.Delete(r.Context(), id); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type deleteResponse struct {
		Message string `json:"message"`
	}

	httpjson.WriteSuccessJson(w, deleteResponse{Message: "assignment deleted"})
}
