package api

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type ResponseError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{Data: data})
}

func CreatedJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(Response{Data: data})
}

func ErrorJSON(w http.ResponseWriter, status int, err error, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	res := ResponseError{Message: message}
	if err != nil {
		res.Error = err.Error()
	}
	json.NewEncoder(w).Encode(res)
}
