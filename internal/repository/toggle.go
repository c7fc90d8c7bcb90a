package repository

import (
	"Inkpost/internal/pkg/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleRemoved ToggleAction = "removed"
)

// ToggleResult 一次切换的结果，OwnerID 为目标内容的作者
type ToggleResult struct {
	Action  ToggleAction
	OwnerID uint64
	PostID  uint64
}

// toggleRelation 在调用方事务内执行：先按条件删除，删到即为取消；
// 否则插入，唯一约束冲突 (并发插入已完成) 同样视为 added
func toggleRelation(tx *gorm.DB, row any, query string, args ...any) (ToggleAction, error) {
	res := tx.Where(query, args...).Delete(row)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected > 0 {
		return ToggleRemoved, nil
	}

	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
	if err != nil && !database.IsDuplicateError(err) {
		return "", err
	}
	return ToggleAdded, nil
}

type idCount struct {
	ID  uint64
	Cnt int64
}

func toCountMap(rows []idCount) map[uint64]int64 {
	m := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Cnt
	}
	return m
}
