package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"license-compliance-system/internal/model"
	"license-compliance-system/internal/repository"
)

func HandleGetLicenses(c *fiber.Ctx) error {
	licenses, err := store.ListLicenses(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取许可证数据失败",
		})
	}
	return c.JSON(licenses)
}

// HandleCreateLicense 必填字段缺失在这里拒绝，不会进入合规引擎
func HandleCreateLicense(c *fiber.Ctx) error {
	input := new(model.LicenseInput)
	if ok, err := parseAndValidate(c, input); !ok {
		return err
	}

	license := &model.SoftwareLicense{
		ProductName:       input.ProductName,
		Vendor:            input.Vendor,
		LicenseType:       input.LicenseType,
		TotalEntitlements: input.TotalEntitlements,
		Cost:              input.Cost,
		ExpiryDate:        input.ExpiryDate,
		PurchaseDate:      now(),
	}
	if input.PurchaseDate != nil {
		license.PurchaseDate = *input.PurchaseDate
	}

	if err := store.CreateLicense(c.UserContext(), license); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "创建许可证失败",
		})
	}

	logOperation(c, "create", "license", strconv.FormatUint(uint64(license.ID), 10), input)
	return c.Status(fiber.StatusCreated).JSON(license)
}

func HandleDeleteLicense(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的许可证 ID",
		})
	}

	if err := store.DeleteLicense(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "许可证不存在",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "删除许可证失败",
		})
	}

	logOperation(c, "delete", "license", c.Params("id"), nil)
	return c.SendStatus(fiber.StatusNoContent)
}

func HandleGetDevices(c *fiber.Ctx) error {
	devices, err := store.ListDevicesWithInstallations(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取设备数据失败",
		})
	}
	return c.JSON(devices)
}

// HandleOnboardDevice 设备入网，安装记录随设备一起提交
func HandleOnboardDevice(c *fiber.Ctx) error {
	input := new(model.DeviceInput)
	if ok, err := parseAndValidate(c, input); !ok {
		return err
	}

	checkIn := now()
	device := &model.Device{
		Hostname:    input.Hostname,
		OwnerUserID: input.OwnerUserID,
		DeviceType:  input.DeviceType,
		OS:          input.OS,
		LastCheckIn: checkIn,
	}
	for _, inst := range input.Installations {
		installed := model.InstalledSoftware{
			ProductName: inst.ProductName,
			Version:     inst.Version,
			InstallDate: checkIn,
		}
		if inst.InstallDate != nil {
			installed.InstallDate = *inst.InstallDate
		}
		device.Installations = append(device.Installations, installed)
	}

	if err := store.CreateDevice(c.UserContext(), device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "设备入网失败",
		})
	}

	logOperation(c, "create", "device", strconv.FormatUint(uint64(device.ID), 10), fiber.Map{
		"hostname":      device.Hostname,
		"installations": len(device.Installations),
	})
	return c.Status(fiber.StatusCreated).JSON(device)
}
