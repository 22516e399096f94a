package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/subassign/portal/httpjson"
	"github.com/subassign/portal/user"
)

func (httpserver *HttpServer) authRegister(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type registerRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received register request", "email", request.Email, "role", request.Role)

	_, err := httpserver.userSrvc.Register(r.Context(), user.RegisterParams{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type registerResponse struct {
		Message string `json:"message"`
	}

	httpjson.WriteSuccessJson(w, registerResponse{Message: "registration successful"})
}
