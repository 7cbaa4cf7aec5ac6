package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"license-compliance-system/internal/metrics"
	"license-compliance-system/internal/middleware"
	"license-compliance-system/internal/model"
)

// SetupRoutes 注册全部路由，collector 为 nil 时不暴露 /metrics
func SetupRoutes(app *fiber.App, collector *metrics.Collector) {
	if collector != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/v1")

	// 认证路由
	auth := api.Group("/auth")
	auth.Post("/login", HandleUserLogin)
	auth.Post("/register", middleware.Auth(), middleware.RequireRoles(model.RoleITAdmin), HandleUserRegister)
	auth.Get("/me", middleware.Auth(), HandleUserInfo)

	// 合规路由
	comp := api.Group("/compliance", middleware.Auth())
	comp.Get("/report", HandleComplianceReport)
	comp.Post("/report/sync", middleware.RequireRoles(model.RoleITAdmin), HandleReportSync)
	comp.Get("/alerts", HandleGetAlerts)
	comp.Put("/alerts/:id/resolve", middleware.RequireRoles(model.RoleITAdmin, model.RoleAuditor), HandleResolveAlert)
	comp.Get("/renewals", HandleGetRenewals)
	comp.Post("/renewals", middleware.RequireRoles(model.RoleITAdmin, model.RoleFinance), HandleCreateRenewal)

	// 库存路由
	inv := api.Group("/inventory", middleware.Auth())
	inv.Get("/licenses", HandleGetLicenses)
	inv.Post("/licenses", middleware.RequireRoles(model.RoleITAdmin), HandleCreateLicense)
	inv.Delete("/licenses/:id", middleware.RequireRoles(model.RoleITAdmin), HandleDeleteLicense)
	inv.Get("/devices", HandleGetDevices)
	inv.Post("/devices", middleware.RequireRoles(model.RoleITAdmin), HandleOnboardDevice)

	api.Get("/logs", middleware.Auth(), middleware.RequireRoles(model.RoleITAdmin, model.RoleAuditor), HandleGetLogs)
}
