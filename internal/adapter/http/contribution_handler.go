package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"welfare-backend/internal/usecase/contribution"
)

type ContributionHandler struct{ uc *contribution.Usecase }

func NewContributionHandler(uc *contribution.Usecase) *ContributionHandler {
	return &ContributionHandler{uc: uc}
}

type submitContributionReq struct {
	MemberID    string `json:"member_id"   validate:"required,hex32"`
	Amount      string `json:"amount"      validate:"required,money"`
	Type        string `json:"type"        validate:"required,oneof=deposit withdrawal"`
	Description string `json:"description" validate:"max=255"`
}

func (h *ContributionHandler) Submit(c echo.Context) error {
	var req submitContributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	amount, _ := decimal.NewFromString(req.Amount)
	dto, err := h.uc.Submit(c.Request().Context(), contribution.SubmitInput{
		MemberID:    req.MemberID,
		Amount:      amount,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type decideContributionReq struct {
	ApproverID string `json:"approver_id" validate:"required,hex32"`
	Reason     string `json:"reason"      validate:"max=255"`
}

func (h *ContributionHandler) Approve(c echo.Context) error {
	var req decideContributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.Approve(c.Request().Context(), c.Param("reference"), req.ApproverID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ContributionHandler) Reject(c echo.Context) error {
	var req decideContributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("reference"), req.ApproverID, req.Reason)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContributionHandler) ListByMember(c echo.Context) error {
	rows, err := h.uc.ListByMember(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ContributionHandler) ListPending(c echo.Context) error {
	rows, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
