package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"license-compliance-system/internal/compliance"
	"license-compliance-system/internal/repository"
	"license-compliance-system/internal/service"
)

var (
	engine    *compliance.Engine
	store     *repository.GormStore
	sheetSync *service.SheetSyncService
	validate  = validator.New()
	now       = time.Now
)

// Init 注入合规引擎、存储与报表同步服务
func Init(e *compliance.Engine, s *repository.GormStore, sync *service.SheetSyncService) {
	engine = e
	store = s
	sheetSync = sync
}

// ErrorHandler 未被处理的错误统一返回 500
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// parseAndValidate 解析请求体并按 validate 标签校验，失败时已写出 400 响应
func parseAndValidate(c *fiber.Ctx, input interface{}) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, err
		}
		fields := make([]fiber.Map, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fiber.Map{
				"field":   fe.Namespace(),
				"message": fe.Tag(),
			})
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "输入数据校验失败",
			"errors": fields,
		})
	}
	return true, nil
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// logOperation 写操作日志失败不影响主流程
func logOperation(c *fiber.Ctx, action, target, targetID string, details interface{}) {
	if err := service.LogOperation(c.UserContext(), currentUserID(c), action, target, targetID, details); err != nil {
		slog.WarnContext(c.UserContext(), "write operation log failed", "action", action, "target", target, "error", err)
	}
}
