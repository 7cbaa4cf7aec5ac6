package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"license-compliance-system/internal/config"
	"license-compliance-system/internal/model"
)

var DB *gorm.DB

// Models 需要自动迁移的全部模型
var Models = []interface{}{
	&model.User{},
	&model.SoftwareLicense{},
	&model.Device{},
	&model.InstalledSoftware{},
	&model.ComplianceEvent{},
	&model.RenewalTask{},
	&model.OperationLog{},
	&model.LoginLog{},
}

// InitDB 打开数据目录下的 sqlite 数据库，迁移并初始化默认管理员
func InitDB(cfg config.DatabaseConfig, auth config.AuthConfig) error {
	// 创建数据目录
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("创建数据目录失败: %w", err)
	}

	db, err := Open(filepath.Join(cfg.DataDir, cfg.FileName), cfg.LogQueries)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}
	if err := SeedAdmin(db, auth.DefaultAdminPassword); err != nil {
		return err
	}

	DB = db
	return nil
}

func Open(dsn string, logQueries bool) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if logQueries {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}

// SeedAdmin 不存在管理员账户时创建 admin
func SeedAdmin(db *gorm.DB, password string) error {
	var adminCount int64
	if err := db.Model(&model.User{}).Where("username = ?", "admin").Count(&adminCount).Error; err != nil {
		return fmt.Errorf("查询管理员账户失败: %w", err)
	}
	if adminCount > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}

	admin := &model.User{
		Username:  "admin",
		Password:  string(hashedPassword),
		Role:      model.RoleITAdmin,
		Status:    "active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("创建管理员账户失败: %w", err)
	}

	slog.Info("已创建默认管理员账户", "username", admin.Username)
	return nil
}
