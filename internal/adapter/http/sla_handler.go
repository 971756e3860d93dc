package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanflow/internal/usecase/sla"
)

type SLAHandler struct{ uc *sla.Usecase }

func NewSLAHandler(uc *sla.Usecase) *SLAHandler { return &SLAHandler{uc: uc} }

func (h *SLAHandler) Report(c echo.Context) error {
	rep, err := h.uc.Report(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, rep)
}
