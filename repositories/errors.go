package repository

import (
	"errors"

	"digitalagency/apperrors"

	"go.mongodb.org/mongo-driver/mongo"
)

// translateErr maps driver errors to the taxonomy close to the data-access
// call. Resource names the entity for not-found messages; field names the
// unique key for conflicts.
func translateErr(err error, resource, field string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &apperrors.NotFoundError{Resource: resource}
	}
	if mongo.IsDuplicateKeyError(err) {
		return &apperrors.ConflictError{Field: field}
	}
	return err
}
