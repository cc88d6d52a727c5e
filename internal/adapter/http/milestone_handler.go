package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"welfare-backend/internal/usecase/milestone"
)

type MilestoneHandler struct{ uc *milestone.Usecase }

func NewMilestoneHandler(uc *milestone.Usecase) *MilestoneHandler {
	return &MilestoneHandler{uc: uc}
}

type createMilestoneReq struct {
	Title        string `json:"title"         validate:"required,max=200"`
	Description  string `json:"description"`
	TargetAmount string `json:"target_amount" validate:"required,money"`
	TargetDate   string `json:"target_date"   validate:"required,datetime=2006-01-02"`
	Priority     string `json:"priority"      validate:"required,oneof=low medium high critical"`
	CreatedBy    string `json:"created_by"    validate:"required,hex32"`
}

func (h *MilestoneHandler) Create(c echo.Context) error {
	var req createMilestoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	target, _ := decimal.NewFromString(req.TargetAmount)
	date, _ := time.Parse("2006-01-02", req.TargetDate)
	dto, err := h.uc.Create(c.Request().Context(), milestone.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: target,
		TargetDate:   date.UTC(),
		Priority:     req.Priority,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateMilestoneReq struct {
	Title        *string `json:"title"         validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	TargetAmount *string `json:"target_amount" validate:"omitempty,money"`
	TargetDate   *string `json:"target_date"   validate:"omitempty,datetime=2006-01-02"`
	Priority     *string `json:"priority"      validate:"omitempty,oneof=low medium high critical"`
	Status       *string `json:"status"        validate:"omitempty,oneof=active achieved cancelled"`
}

func (h *MilestoneHandler) Update(c echo.Context) error {
	var req updateMilestoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := milestone.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	if req.TargetAmount != nil {
		amt, _ := decimal.NewFromString(*req.TargetAmount)
		in.TargetAmount = &amt
	}
	if req.TargetDate != nil {
		d, _ := time.Parse("2006-01-02", *req.TargetDate)
		dUTC := d.UTC()
		in.TargetDate = &dUTC
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("milestone_id"), in)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type progressReq struct {
	Amount string `json:"amount" validate:"required,money"`
}

func (h *MilestoneHandler) SetProgress(c echo.Context) error {
	var req progressReq
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
	dto, err := h.uc.SetProgress(c.Request().Context(), c.Param("milestone_id"), amount)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MilestoneHandler) AddProgress(c echo.Context) error {
	var req progressReq
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
	dto, err := h.uc.AddProgress(c.Request().Context(), c.Param("milestone_id"), amount)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MilestoneHandler) Cancel(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("milestone_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MilestoneHandler) ListActive(c echo.Context) error {
	list, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
