package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	contribDomain "welfare-backend/internal/domain/contribution"
	investDomain "welfare-backend/internal/domain/investment"
	loanDomain "welfare-backend/internal/domain/loan"
	memberDomain "welfare-backend/internal/domain/member"
	milestoneDomain "welfare-backend/internal/domain/milestone"
	"welfare-backend/internal/domain/validation"
)

// writeDomainErr maps domain sentinels onto HTTP codes. Business-rule
// rejections keep their specific message: the reason drives the user's next
// action.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, memberDomain.ErrNotFound),
		errors.Is(err, contribDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, investDomain.ErrNotFound),
		errors.Is(err, milestoneDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, memberDomain.ErrInvalidState),
		errors.Is(err, contribDomain.ErrInvalidState),
		errors.Is(err, loanDomain.ErrInvalidState),
		errors.Is(err, milestoneDomain.ErrInvalidState),
		errors.Is(err, investDomain.ErrClosed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, loanDomain.ErrIneligible),
		errors.Is(err, loanDomain.ErrExceedsLimit),
		errors.Is(err, loanDomain.ErrExceedsBalance),
		errors.Is(err, memberDomain.ErrInsufficientBalance),
		errors.Is(err, memberDomain.ErrInactive),
		errors.Is(err, memberDomain.ErrEmailTaken),
		errors.Is(err, investDomain.ErrNoActiveMembers),
		errors.Is(err, validation.ErrInvalid):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
