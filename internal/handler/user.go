package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"license-compliance-system/internal/database"
	"license-compliance-system/internal/model"
	"license-compliance-system/internal/util"
)

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof='IT Admin' Finance Auditor user"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleUserRegister 由 IT 管理员创建账户并指定角色
func HandleUserRegister(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if ok, err := parseAndValidate(c, input); !ok {
		return err
	}

	// 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "密码加密失败",
		})
	}

	user := &model.User{
		Username: input.Username,
		Password: string(hashedPassword),
		Role:     input.Role,
		Status:   "active",
	}

	result := database.DB.WithContext(c.UserContext()).Create(user)
	if result.Error != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "用户创建失败",
		})
	}

	logOperation(c, "create", "user", user.Username, fiber.Map{"role": user.Role})
	return c.Status(fiber.StatusCreated).JSON(user)
}

func HandleUserLogin(c *fiber.Ctx) error {
	input := new(LoginInput)
	if ok, err := parseAndValidate(c, input); !ok {
		return err
	}

	db := database.DB.WithContext(c.UserContext())

	var user model.User
	result := db.Where("username = ?", input.Username).First(&user)
	if result.Error != nil || user.Status != "active" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "用户名或密码错误",
		})
	}

	loginLog := &model.LoginLog{
		UserID:    user.ID,
		Username:  user.Username,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Status:    "success",
		CreatedAt: time.Now(),
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		loginLog.Status = "failed"
		db.Create(loginLog)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "用户名或密码错误",
		})
	}

	// 记录登录日志
	db.Create(loginLog)
	// 更新用户最后登录时间
	db.Model(&user).Update("last_login", time.Now())

	// 生成JWT令牌
	token, err := util.GenerateToken(user.ID, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "令牌生成失败",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func HandleUserInfo(c *fiber.Ctx) error {
	var user model.User
	result := database.DB.WithContext(c.UserContext()).First(&user, currentUserID(c))
	if result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "用户不存在",
		})
	}
	return c.JSON(user)
}
