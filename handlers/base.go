package handlers

import (
	"net/http"

	"digitalagency/apperrors"
	"digitalagency/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// errorWriter carries the production flag so raw error detail only leaks in
// non-production runs. Handlers embed it.
type errorWriter struct {
	production bool
}

func (e errorWriter) writeError(w http.ResponseWriter, err error) {
	utils.HandleError(w, err, e.production)
}

// pathObjectID parses a path segment as an ObjectID. A malformed id is a 400
// InvalidIDError, distinct from a 404 for a well-formed but absent one.
func (e errorWriter) pathObjectID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	raw := r.PathValue(name)
	objectID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		e.writeError(w, &apperrors.InvalidIDError{ID: raw})
		return primitive.NilObjectID, false
	}
	return objectID, true
}

// requireEmail enforces the portal's owner-email query parameter.
func requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.HandleMessageResponse(w, "Client email is required", http.StatusBadRequest)
		return "", false
	}
	return email, true
}
