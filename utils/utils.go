package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"digitalagency/apperrors"
	"digitalagency/models"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

// DecodeAndValidate decodes the request body into a structure and validates it.
// On failure it writes the 400 response itself and returns the error.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		HandleMessageResponse(w, "Invalid request body", http.StatusBadRequest)
		return err
	}
	if err := Validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string)
			for _, e := range validationErrors {
				fields[e.Field()] = e.Tag()
			}
			HandleValidationResponse(w, fields)
			return &apperrors.ValidationError{Fields: fields}
		}
		HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
		return err
	}
	return nil
}

// ValidatePartial re-validates only the touched fields of a patch struct.
func ValidatePartial(v interface{}) error {
	if err := Validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string)
			for _, e := range validationErrors {
				fields[e.Field()] = e.Tag()
			}
			return &apperrors.ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// HandleMessageResponse writes a message-only envelope with the given status.
func HandleMessageResponse(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, models.NewMessageResponse(statusCode < 400, message))
}

// HandleValidationResponse writes field-level validation errors.
func HandleValidationResponse(w http.ResponseWriter, fields interface{}) {
	writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Validation failed", fields))
}

// HandleDataResponse writes a success envelope carrying data.
func HandleDataResponse(w http.ResponseWriter, message string, data interface{}, statusCode int) {
	writeJSON(w, statusCode, models.NewDataResponse(message, data))
}

// HandleListResponse writes a success envelope carrying a list and its count.
func HandleListResponse(w http.ResponseWriter, data interface{}, count int) {
	writeJSON(w, http.StatusOK, models.NewListResponse(data, count))
}

// HandleError maps a taxonomy error to its HTTP status. Unexpected errors
// become a generic 500; raw detail is attached only outside production.
func HandleError(w http.ResponseWriter, err error, production bool) {
	var (
		validationErr  *apperrors.ValidationError
		conflictErr    *apperrors.ConflictError
		notFoundErr    *apperrors.NotFoundError
		invalidIDErr   *apperrors.InvalidIDError
		authErr        *apperrors.AuthError
		aggregationErr *apperrors.AggregationError
		upstreamErr    *apperrors.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Validation failed", validationErr.Fields))
	case errors.As(err, &conflictErr):
		HandleMessageResponse(w, conflictErr.Error(), http.StatusConflict)
	case errors.As(err, &notFoundErr):
		HandleMessageResponse(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &invalidIDErr):
		HandleMessageResponse(w, "Invalid ID format", http.StatusBadRequest)
	case errors.As(err, &authErr):
		HandleMessageResponse(w, authErr.Error(), authErr.StatusCode())
	case errors.As(err, &aggregationErr):
		writeErrorWithDetail(w, "Failed to compute statistics", aggregationErr, production)
	case errors.As(err, &upstreamErr):
		writeErrorWithDetail(w, upstreamErr.Service+" request failed", upstreamErr, production)
	default:
		writeErrorWithDetail(w, "Internal Server Error", err, production)
	}
}

func writeErrorWithDetail(w http.ResponseWriter, message string, err error, production bool) {
	var detail interface{}
	if !production {
		detail = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(message, detail))
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
