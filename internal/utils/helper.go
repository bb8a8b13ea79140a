package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds every JSON request body; cart and checkout payloads are tiny.
const maxBodyBytes = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// DecodeJSONBody reads a single JSON document from the request into dest.
func DecodeJSONBody(r *http.Request, dest any) error {

	logger := middleware.LoggerFromContext(r.Context()).With(slog.String("endpoint", r.URL.Path))

	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		logger.Error("Failed to read request body", slog.String("error", err.Error()))
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if len(body) > maxBodyBytes {
		logger.Warn("Request body too large", slog.Int("limit", maxBodyBytes))
		return errBodyTooLarge
	}

	if len(body) == 0 {
		logger.Warn("Empty request body")
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		logger.Warn("Failed to parse request JSON", slog.String("error", err.Error()))
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ValidateStruct runs the struct's validate tags. Field violations come back
// wrapped as validator.ValidationErrors.
func ValidateStruct(r *http.Request, validate *validator.Validate, data any) error {

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	logger := middleware.LoggerFromContext(r.Context())

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Warn("Request validation failed", slog.String("error", validationErrs.Error()))
		return fmt.Errorf("validation error: %w", validationErrs)
	}

	logger.Error("Unexpected validation error", slog.String("error", err.Error()))
	return fmt.Errorf("unexpected validation error: %w", err)
}
