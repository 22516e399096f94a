package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/httpjson"
)

func (httpserver *HttpServer) createAssignment(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, err := instructorOnly(r); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type createRequest struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		DueDate     time.Time `json:"dueDate"`
	}

	var request createRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received create assignment request", "title", request.Title)

	created, err := httpserver.assignmentSrvc.Create(r.Context(), assignment.CreateParams{
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapAssignment(*created))
}
