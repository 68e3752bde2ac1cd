package api

import (
	"net/http"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/handler/httperr"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/pkg/errs"
	"stay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps domain and usecase errors to a status and error code.
// Unknown errors become 500 without leaking their message.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, pricing.ErrInvalidDateFormat):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidDateFormat, err, "Invalid date format, expected YYYY-MM-DD", nil)
	case errs.Is(err, pricing.ErrInvalidDateRange), errs.Is(err, rates.ErrEmptyRange):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidDateRange, err, err.Error(), nil)
	case errs.Is(err, pricing.ErrInvalidOverride),
		errs.Is(err, pricing.ErrInvalidPeakSeasonRate),
		errs.Is(err, pricing.ErrInvalidPriceType),
		errs.Is(err, rates.ErrTargetChangeNotAllowed),
		errs.Is(err, queries.ErrInvalidFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, err.Error(), nil)
	case infra.IsKind(err, infra.KindCheckViolated):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, "Request violates a data constraint", nil)
	case errs.Is(err, errs.ErrOwnership):
		httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeOwnershipViolation, err, "You do not own this listing", nil)
	case errs.Is(err, errs.ErrTargetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeTargetNotFound, err, "Property or room not found", nil)
	case errs.Is(err, errs.ErrRecordNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeNotFound, err, "Not found", nil)
	case errs.Is(err, pricing.ErrInvalidTarget):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, httperr.CodeInvalidTarget, err, "Listing has no base price per night", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
	}
}

func abortInvalidRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, msg, nil)
}
