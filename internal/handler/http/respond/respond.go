// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"articlehub/internal/domain/entity"
)

// ErrorBody is the JSON shape of every refusal and error response.
type ErrorBody struct {
	Error  string            `json:"error" example:"article not found"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダー送信済みのためログのみ
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// NoContent writes 204 with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Refuse writes a user-facing refusal such as a permission denial. The
// message is returned as-is.
func Refuse(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}

// Validation writes 422 with the per-field reasons.
func Validation(w http.ResponseWriter, errs entity.ValidationErrors) {
	JSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Error:  "validation failed",
		Fields: errs.Fields(),
	})
}

// safeErrors are substrings of messages that may be shown to users.
var safeErrors = []string{
	"required",
	"invalid",
	"not found",
	"already",
	"must be",
	"cannot",
	"too long",
	"too short",
	"too large",
	"unauthorized",
	"forbidden",
	"rate limit",
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g., database errors) are returned as "internal server error",
// with details logged for debugging. Validation errors become 422 with their
// field map regardless of code.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if errs, ok := entity.AsValidationErrors(err); ok && code < 500 {
		Validation(w, errs)
		return
	}

	msg := err.Error()
	lowerMsg := strings.ToLower(msg)
	isSafe := false
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 500エラーは常に内部エラーとして扱う
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, ErrorBody{Error: msg})
		return
	}

	// 機密情報をマスクしてログ出力
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	generic := "internal server error"
	if code < 500 {
		generic = strings.ToLower(http.StatusText(code))
	}
	JSON(w, code, ErrorBody{Error: generic})
}

var (
	ErrBodyTooLarge = errors.New("request body too large")
	ErrInvalidJSON  = errors.New("invalid JSON body")
)

// DecodeJSON reads a JSON request body into v. Unknown fields are rejected.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return ErrInvalidJSON
	}
	return nil
}

// BodyError answers a DecodeJSON failure: 413 for an oversized body,
// 400 otherwise.
func BodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrBodyTooLarge) {
		Refuse(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	Refuse(w, http.StatusBadRequest, ErrInvalidJSON.Error())
}
