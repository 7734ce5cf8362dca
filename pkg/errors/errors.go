package errors

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// 存储层约束错误，Repository 统一转换后向上返回
var (
	// ErrDuplicateKey 唯一约束冲突：记录已存在
	ErrDuplicateKey = errors.New("记录已存在")
	// ErrInvalidReference 外键约束冲突：引用的记录不存在
	ErrInvalidReference = errors.New("引用的记录不存在")
)

// Translate 将 SQLite 约束错误转换为上述哨兵错误
// 非约束类错误原样返回；nil 返回 nil
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrDuplicateKey
	case sqlite3.ErrConstraintForeignKey:
		return ErrInvalidReference
	default:
		return err
	}
}
