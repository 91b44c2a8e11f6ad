package handler

import (
	"net/http"

	"wildsafari/internal/config"
	"wildsafari/internal/middleware"
	"wildsafari/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	cartUC     *usecase.CartUsecase
}

// DI
func NewCheckoutHandler(checkoutUC *usecase.CheckoutUsecase, cartUC *usecase.CartUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, cartUC: cartUC}
}

// 配送先はフォームでもJSONでも受ける
type CheckoutRequest struct {
	Address string `json:"address" form:"address"`
	City    string `json:"city" form:"city"`
	State   string `json:"state" form:"state"`
	Pincode string `json:"pincode" form:"pincode"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.review)
	g.POST("", h.checkout)
}

// 確定前のレビュー（カート内容と合計）
func (h *CheckoutHandler) review(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkoutUC.Checkout(c.Request().Context(), userID, usecase.ShippingInput{
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
