package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/httpjson"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received login request", "email", request.Email)

	usr, err := httpserver.userSrvc.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	token, err := auth.GenerateJWT(
		usr.Name, usr.Email, usr.UUID, usr.Role,
		httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		httpjson.HandleError(logger, w, err)
		return
	}

	type loginResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}

	httpjson.WriteSuccessJson(w, loginResponse{
		User:  mapUser(usr),
		Token: token,
	})
}
