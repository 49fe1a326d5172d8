package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the JSON body written for any non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Result is a deferred HTTP response: handlers build one and call its Write
// method, which writes it out uniformly, logging every response the same
// way regardless of which handler produced it. Mirrors the teacher's
// server/result package.
type Result struct {
	Status      int
	IsErr       bool
	InternalMsg string
	resp        interface{}
}

// OK builds a 200 response carrying respObj as its JSON body.
func OK(respObj interface{}, internalMsg string) Result {
	return Result{Status: http.StatusOK, resp: respObj, InternalMsg: internalMsg}
}

// Created builds a 201 response carrying respObj as its JSON body.
func Created(respObj interface{}, internalMsg string) Result {
	return Result{Status: http.StatusCreated, resp: respObj, InternalMsg: internalMsg}
}

// BadRequest builds a 400 error response.
func BadRequest(userMsg, internalMsg string) Result {
	return errResult(http.StatusBadRequest, userMsg, internalMsg)
}

// Unauthorized builds a 401 error response.
func Unauthorized(userMsg, internalMsg string) Result {
	if userMsg == "" {
		userMsg = "you are not authorized to do that"
	}
	return errResult(http.StatusUnauthorized, userMsg, internalMsg)
}

// NotFound builds a 404 error response.
func NotFound(internalMsg string) Result {
	return errResult(http.StatusNotFound, "the requested resource was not found", internalMsg)
}

// InternalServerError builds a 500 error response.
func InternalServerError(internalMsg string) Result {
	return errResult(http.StatusInternalServerError, "an internal server error occurred", internalMsg)
}

func errResult(status int, userMsg, internalMsg string) Result {
	return Result{
		Status:      status,
		IsErr:       true,
		InternalMsg: internalMsg,
		resp:        ErrorResponse{Error: userMsg, Status: status},
	}
}

// Write marshals and writes the result to w, logging the outcome the way
// the teacher's server package does: one line per request with a
// level prefix, remote address, method, path, status, and internal
// message.
func (r Result) Write(w http.ResponseWriter, req *http.Request) {
	body, err := json.Marshal(r.resp)
	if err != nil {
		fallback := errResult(http.StatusInternalServerError, "an internal server error occurred", "marshal response: "+err.Error())
		fallback.Write(w, req)
		return
	}

	level := "INFO "
	if r.IsErr {
		level = "ERROR"
	}
	log.Printf("%s %s %s %s: HTTP-%d %s", level, req.RemoteAddr, req.Method, req.URL.Path, r.Status, r.InternalMsg)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.Status)
	w.Write(body)
}
