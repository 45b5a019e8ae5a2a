package http

import (
	"net/http"

	"carbontrack-api/internal/alert"
	pkgErrors "carbontrack-api/pkg/errors"
	"carbontrack-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	alert.ErrMissingOwner:         pkgErrors.NewHTTPError(http.StatusBadRequest, "userId and userEmail are required"),
	alert.ErrThresholdOrder:       pkgErrors.NewHTTPError(http.StatusBadRequest, "criticalThreshold must be greater than or equal to firstThreshold"),
	alert.ErrNonPositiveThreshold: pkgErrors.NewHTTPError(http.StatusBadRequest, "Thresholds must be positive numbers"),
}
