// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

// Commentable 可评论对象及其能力
type Commentable struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	TenantID int64  `gorm:"uniqueIndex:uniq_tenant_biz_biz_id"`
	Biz      string `gorm:"type:varchar(128);uniqueIndex:uniq_tenant_biz_biz_id"`
	BizID    int64  `gorm:"uniqueIndex:uniq_tenant_biz_biz_id"`
	// 0 表示没有作者
	AuthorID        int64 `gorm:"not null;default:0"`
	AllowsAlignment bool  `gorm:"not null;default:false"`
	AllowsVotes     bool  `gorm:"not null;default:false"`
	Utime           int64
	Ctime           int64
}

func (Commentable) TableName() string {
	return "commentables"
}

//go:generate mockgen -source=./commentable.go -package=daomocks -destination=./mocks/commentable.mock.go CommentableDAO
type CommentableDAO interface {
	Upsert(ctx context.Context, c Commentable) error
	Find(ctx context.Context, tenantID int64, biz string, bizID int64) (Commentable, error)
}

type commentableDAO struct {
	db *egorm.Component
}

func NewCommentableGORMDAO(db *egorm.Component) CommentableDAO {
	return &commentableDAO{db: db}
}

func (d *commentableDAO) Upsert(ctx context.Context, c Commentable) error {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"author_id":        c.AuthorID,
			"allows_alignment": c.AllowsAlignment,
			"allows_votes":     c.AllowsVotes,
			"utime":            now,
		}),
	}).Create(&c).Error
}

func (d *commentableDAO) Find(ctx context.Context, tenantID int64, biz string, bizID int64) (Commentable, error) {
	var c Commentable
	err := d.db.WithContext(ctx).
		Where("tenant_id = ? AND biz = ? AND biz_id = ?", tenantID, biz, bizID).
		First(&c).Error
	return c, err
}
