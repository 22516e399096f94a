package http

import (
	"io"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/httpjson"
	"github.com/subassign/portal/srvcerror"
	"github.com/subassign/portal/submission"
)

// submissions are uploaded as multipart bodies; cap what we buffer in memory
const maxSubmissionUploadBytes = 32 << 20

func newErrBadAssignmentRef() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"submission references an unknown assignment",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	role := auth.RoleStudent
	claims, err := requireRole(r, &role)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	if err := r.ParseMultipartForm(maxSubmissionUploadBytes); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	assignmentID, err := uuid.Parse(r.FormValue("assignment"))
	if err != nil {
		httpjson.HandleError(logger, w, newErrBadAssignmentRef().SetDebug(err))
		return
	}

	studentUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger, w, srvcerror.ErrInternalSE().SetDebug(err))
		return
	}

	params := submission.CreateParams{
		AssignmentID: assignmentID,
		StudentUUID:  studentUUID,
		StudentName:  claims.Name,
		Content:      r.FormValue("content"),
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			httpjson.HandleError(logger, w, srvcerror.ErrInternalSE().SetDebug(err))
			return
		}
		params.FileName = header.Filename
		params.FileContent = content
	}

	logger.Info("received create submission request",
		"assignment", assignmentID, "student", claims.Name)

	if _, err := httpserver.submSrvc.Create(r.Context(), params); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type createResponse struct {
		Message string `json:"message"`
	}

	httpjson.WriteSuccessJson(w, createResponse{Message: "submission created successfully"})
}
