package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"license-compliance-system/internal/model"
	"license-compliance-system/internal/repository"
)

const alertLimit = 50

// HandleComplianceReport 实时计算合规报表，不缓存
func HandleComplianceReport(c *fiber.Ctx) error {
	rows, err := engine.GenerateReport(c.UserContext())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "generate compliance report failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "生成合规报表失败",
		})
	}
	if rows == nil {
		rows = []model.ComplianceReportRow{}
	}
	return c.JSON(rows)
}

// HandleReportSync 生成报表并发布到 Google Sheet
func HandleReportSync(c *fiber.Ctx) error {
	if sheetSync == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "未启用 Google Sheet 同步",
		})
	}

	rows, err := engine.GenerateReport(c.UserContext())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "generate compliance report failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "生成合规报表失败",
		})
	}

	if err := sheetSync.SyncReport(c.UserContext(), rows, now()); err != nil {
		slog.ErrorContext(c.UserContext(), "sync compliance report failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "同步到 Google Sheet 失败",
		})
	}

	logOperation(c, "sync", "report", "", fiber.Map{"rows": len(rows)})
	return c.JSON(fiber.Map{
		"message": "报表同步成功",
		"rows":    len(rows),
	})
}

// HandleGetAlerts 返回最近的合规告警
func HandleGetAlerts(c *fiber.Ctx) error {
	events, err := store.ListRecentEvents(c.UserContext(), alertLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取告警失败",
		})
	}
	return c.JSON(events)
}

func HandleResolveAlert(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的告警 ID",
		})
	}

	input := new(model.ResolveEventInput)
	if ok, err := parseAndValidate(c, input); !ok {
		return err
	}

	resolvedBy := strconv.FormatUint(uint64(currentUserID(c)), 10)
	event, err := store.ResolveEvent(c.UserContext(), uint(id), resolvedBy, input.Notes, now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "告警不存在",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "更新告警失败",
		})
	}

	logOperation(c, "resolve", "event", c.Params("id"), input)
	return c.JSON(event)
}

func HandleGetRenewals(c *fiber.Ctx) error {
	tasks, err := store.ListRenewals(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取续费任务失败",
		})
	}
	return c.JSON(tasks)
}

func HandleCreateRenewal(c *fiber.Ctx) error {
	input := new(model.RenewalTaskInput)
	if ok, err := parseAndValidate(c, input); !ok {
		return err
	}

	task := &model.RenewalTask{
		LicenseID:      input.LicenseID,
		Status:         input.Status,
		AssignedTo:     input.AssignedTo,
		DueDate:        input.DueDate,
		CostEstimate:   input.CostEstimate,
		QuoteReference: input.QuoteReference,
		CreatedAt:      now(),
	}
	if err := store.CreateRenewal(c.UserContext(), task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "创建续费任务失败",
		})
	}

	logOperation(c, "create", "renewal", strconv.FormatUint(uint64(task.ID), 10), input)
	return c.Status(fiber.StatusCreated).JSON(task)
}
