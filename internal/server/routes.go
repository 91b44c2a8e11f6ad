package server

import (
	"wildsafari/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// 認証
	h.Auth.RegisterRoutes(e)

	// 公開カタログ
	h.Catalog.RegisterRoutes(e)

	// 要ログイン
	h.Cart.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)

	// 管理者のみ
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.AdminCatalog.RegisterRoutes(e, cfg)
	h.AdminUser.RegisterRoutes(e, cfg)
}
