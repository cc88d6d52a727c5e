package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"welfare-backend/internal/usecase/investment"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type createInvestmentReq struct {
	Amount         string `json:"amount"          validate:"required,money"`
	InvestmentDate string `json:"investment_date" validate:"required,datetime=2006-01-02"`
	InterestRate   string `json:"interest_rate"   validate:"omitempty,money"`
	MaturityDate   string `json:"maturity_date"   validate:"omitempty,datetime=2006-01-02"`
	Notes          string `json:"notes"`
	RecordedBy     string `json:"recorded_by"     validate:"required,hex32"`
}

func (h *InvestmentHandler) Create(c echo.Context) error {
	var req createInvestmentReq
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
	date, _ := time.Parse("2006-01-02", req.InvestmentDate)
	in := investment.CreateInput{
		Amount:         amount,
		InvestmentDate: date.UTC(),
		Notes:          req.Notes,
		RecordedBy:     req.RecordedBy,
	}
	if req.InterestRate != "" {
		in.InterestRate, _ = decimal.NewFromString(req.InterestRate)
	}
	if req.MaturityDate != "" {
		md, _ := time.Parse("2006-01-02", req.MaturityDate)
		mdUTC := md.UTC()
		in.MaturityDate = &mdUTC
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InvestmentHandler) Distributions(c echo.Context) error {
	rows, err := h.uc.Distributions(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *InvestmentHandler) MemberDistributions(c echo.Context) error {
	rows, err := h.uc.DistributionsByMember(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type distributeReq struct {
	GrossInterest    string `json:"gross_interest"    validate:"required,money"`
	DistributionDate string `json:"distribution_date" validate:"required,datetime=2006-01-02"`
	ProcessorID      string `json:"processor_id"      validate:"required,hex32"`
}

func (h *InvestmentHandler) Distribute(c echo.Context) error {
	var req distributeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	gross, _ := decimal.NewFromString(req.GrossInterest)
	date, _ := time.Parse("2006-01-02", req.DistributionDate)
	res, err := h.uc.Distribute(c.Request().Context(), c.Param("reference"), investment.DistributeInput{
		GrossInterest:    gross,
		DistributionDate: date.UTC(),
		ProcessorID:      req.ProcessorID,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type updateValueReq struct {
	CurrentValue string `json:"current_value" validate:"required,money"`
}

func (h *InvestmentHandler) UpdateValue(c echo.Context) error {
	var req updateValueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	value, _ := decimal.NewFromString(req.CurrentValue)
	dto, err := h.uc.UpdateValue(c.Request().Context(), c.Param("reference"), value)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) Mature(c echo.Context) error {
	dto, err := h.uc.Mature(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) Withdraw(c echo.Context) error {
	dto, err := h.uc.Withdraw(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
