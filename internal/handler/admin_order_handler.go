package handler

import (
	"net/http"

	"wildsafari/internal/config"
	"wildsafari/internal/middleware"
	"wildsafari/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者用の注文閲覧とダッシュボード
type AdminOrderHandler struct {
	orderUC *usecase.OrderQueryUsecase
	statsUC *usecase.AdminStatsUsecase
}

// DI
func NewAdminOrderHandler(orderUC *usecase.OrderQueryUsecase, statsUC *usecase.AdminStatsUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{orderUC: orderUC, statsUC: statsUC}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminGuard())

	g.GET("/orders", h.listAll)
	g.GET("/dashboard", h.dashboard)
}

// 全ユーザーの注文（所有ユーザー付き）
func (h *AdminOrderHandler) listAll(c echo.Context) error {
	out, err := h.orderUC.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) dashboard(c echo.Context) error {
	out, err := h.statsUC.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
