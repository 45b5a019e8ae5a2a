package http

import (
	"net/http"

	"carbontrack-api/internal/record"
	pkgErrors "carbontrack-api/pkg/errors"
	"carbontrack-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	record.ErrRecordNotFound:   pkgErrors.NewHTTPError(http.StatusNotFound, "Record not found"),
	record.ErrNotOwner:         pkgErrors.NewHTTPError(http.StatusForbidden, "Record does not belong to user"),
	record.ErrInvalidInput:     pkgErrors.NewHTTPError(http.StatusBadRequest, "Power rating and usage hours must be valid positive numbers"),
	record.ErrInvalidWasteType: pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid waste type"),
	record.ErrInvalidAmount:    pkgErrors.NewHTTPError(http.StatusBadRequest, "Amount must be a valid positive number"),
}
