package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/subassign/portal/httpjson"
)

func (httpserver *HttpServer) listAssignments(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, err := requireRole(r, nil); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	rows, err := httpserver.assignmentSrvc.List(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	res := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		res = append(res, mapAssignment(row))
	}

	httpjson.WriteSuccessJson(w, res)
}
