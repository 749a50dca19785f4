// Package response centralises JSON reply writing and the mapping from the
// application error taxonomy to HTTP status codes.  Internal causes are
// logged here and never echoed to clients.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Emannuh254/server-jobs/internal/common"
)

type ErrorCollector interface {
	IncErrors()
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Detail: "internal server error"}

	var appErr *common.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case common.CodeValidation:
			status = http.StatusBadRequest
		case common.CodeNotFound:
			status = http.StatusNotFound
		case common.CodeConflict:
			status = http.StatusConflict
		}
		if appErr.Code != common.CodeInternal {
			body.Detail = appErr.Message
			body.Fields = appErr.Fields
		}
	}

	if status >= http.StatusInternalServerError {
		zap.S().Errorw("request failed", "error", err)
		if errorCollector != nil {
			errorCollector.IncErrors()
		}
	}
	JSON(w, status, body)
}
