package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanflow/internal/domain/loan"
	"loanflow/internal/usecase/lifecycle"
)

type LoanHandler struct{ uc *lifecycle.Usecase }

func NewLoanHandler(uc *lifecycle.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyReq struct {
	CustomerID string  `json:"customer_id" validate:"required,hex32"`
	ProductID  string  `json:"product_id"  validate:"required,hex32"`
	Amount     float64 `json:"amount"      validate:"required,gt=0,intlike"`
	Tenor      int     `json:"tenor_months" validate:"required,gte=1,lte=120"`
	Notes      string  `json:"notes"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	actor := actorID(c)
	if actor == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + ActorHeader})
	}
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), actor, lifecycle.ApplyInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Amount:     req.Amount,
		Tenor:      req.Tenor,
		Notes:      req.Notes,
	})
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

type transitionReq struct {
	Notes           string `json:"notes"`
	DisbursementRef string `json:"disbursement_ref"`
}

// Transition serves every lifecycle action endpoint; the action comes
// from the route.
func (h *LoanHandler) Transition(action loan.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := actorID(c)
		if actor == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + ActorHeader})
		}
		loanID := c.Param("loan_id")
		if loanID == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
		}
		var req transitionReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
		dto, err := h.uc.Transition(c.Request().Context(), actor, lifecycle.TransitionInput{
			LoanID:          loanID,
			Action:          action,
			Notes:           req.Notes,
			DisbursementRef: req.DisbursementRef,
		})
		if err != nil {
			code, body := errorStatus(err)
			return c.JSON(code, body)
		}
		return c.JSON(http.StatusOK, dto)
	}
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) History(c echo.Context) error {
	entries, err := h.uc.History(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LoanHandler) ListByCustomer(c echo.Context) error {
	dtos, err := h.uc.ListByCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) Plafond(c echo.Context) error {
	productID := c.QueryParam("product_id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing product_id query param"})
	}
	dto, err := h.uc.AvailablePlafond(c.Request().Context(), c.Param("customer_id"), productID)
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
