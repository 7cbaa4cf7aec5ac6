package database

import (
	"fmt"
	"sync/atomic"
)

var testDBSeq atomic.Int64

// InitTestDB 每次调用使用独立的内存数据库，避免测试之间共享数据
func InitTestDB() {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := Open(dsn, false)
	if err != nil {
		panic("failed to connect test database")
	}

	// 自动迁移测试数据库
	if err := Migrate(db); err != nil {
		panic("failed to migrate test database")
	}
	DB = db
}

func CleanTestDB() {
	sqlDB, err := DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
