package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"welfare-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	MemberID              string `json:"member_id"              validate:"required,hex32"`
	Principal             string `json:"principal"              validate:"required,money"`
	Term                  int    `json:"term"                   validate:"required,gte=1"`
	Purpose               string `json:"purpose"                validate:"required,max=500"`
	GuarantorName         string `json:"guarantor_name"         validate:"required,max=255"`
	GuarantorPhone        string `json:"guarantor_phone"        validate:"required,max=20"`
	GuarantorRelationship string `json:"guarantor_relationship" validate:"required,max=100"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	principal, _ := decimal.NewFromString(req.Principal)
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		MemberID:              req.MemberID,
		Principal:             principal,
		Term:                  req.Term,
		Purpose:               req.Purpose,
		GuarantorName:         req.GuarantorName,
		GuarantorPhone:        req.GuarantorPhone,
		GuarantorRelationship: req.GuarantorRelationship,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListByMember(c echo.Context) error {
	rows, err := h.uc.ListByMember(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LoanHandler) Eligibility(c echo.Context) error {
	elig, err := h.uc.CheckEligibility(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, elig)
}

type decideLoanReq struct {
	ApproverID string `json:"approver_id" validate:"required,hex32"`
	Notes      string `json:"notes"       validate:"max=500"`
}

func (h *LoanHandler) Approve(c echo.Context) error {
	var req decideLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("loan_id"), req.ApproverID, req.Notes)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Reject(c echo.Context) error {
	var req decideLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"), req.ApproverID, req.Notes)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type recordPaymentReq struct {
	Amount        string `json:"amount"         validate:"required,money"`
	PaymentDate   string `json:"payment_date"   validate:"required,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method" validate:"max=100"`
	RecordedBy    string `json:"recorded_by"    validate:"required,hex32"`
}

func (h *LoanHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
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
	date, _ := time.Parse("2006-01-02", req.PaymentDate)
	res, err := h.uc.RecordPayment(c.Request().Context(), c.Param("loan_id"), loan.PaymentInput{
		Amount:        amount,
		PaymentDate:   date.UTC(),
		PaymentMethod: req.PaymentMethod,
		RecordedBy:    req.RecordedBy,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// SweepOverdue is triggered by an operator or external scheduler, never by a
// timer inside this service.
func (h *LoanHandler) SweepOverdue(c echo.Context) error {
	n, err := h.uc.SweepOverdue(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"defaulted": n})
}

func (h *LoanHandler) InterestReport(c echo.Context) error {
	rows, err := h.uc.InterestReport(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
