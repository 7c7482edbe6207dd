// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unknownRole    *catalog.UnknownRoleError
		emptyDesc      *catalog.EmptyDescriptionError
		assetErr       *catalog.AssetError
		invalidInput   *matching.InvalidInputError
		extractionErr  *ingestion.ExtractionError
		fetchErr       *fetch.Error
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &unknownRole):
		return http.StatusNotFound
	case errors.As(err, &emptyDesc), errors.As(err, &invalidInput), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &assetErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
