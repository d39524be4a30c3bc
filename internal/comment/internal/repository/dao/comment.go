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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInvalidParentID = errors.New("父评论ID非法")
	ErrRecordNotFound  = gorm.ErrRecordNotFound
)

// Comment 表示针对某一资源的评论
type Comment struct {
	ID       int64 `gorm:"primaryKey,autoIncrement;comment:'评论自增ID'"`
	TenantID int64 `gorm:"not null;index:idx_tenant_biz_biz_id,priority:1;comment:'租户ID'"`

	Uid int64 `gorm:"not null;index;comment:'实际评论的人'"`
	// 以用户组名义评论时的用户组ID，0 表示以个人名义
	GroupID int64 `gorm:"not null;default:0;comment:'署名用户组'"`

	// 评论的对象
	Biz   string `gorm:"type:varchar(256);not null;index:idx_tenant_biz_biz_id,priority:2;comment:'业务名称'"`
	BizID int64  `gorm:"type:bigint;not null;index:idx_tenant_biz_biz_id,priority:3;comment:'业务内唯一ID'"`

	Content   string `gorm:"type:text;not null;comment:'评论的具体内容'"`
	Alignment string `gorm:"type:varchar(16);not null;default:'';comment:'立场 favor/against/neutral，空表示未设置'"`

	// 这两个字段都可以为 NULL。如果是 NULL 就代表它自身就是一个根评论
	AncestorID sql.Null[int64] `gorm:"type:bigint;index:idx_ancestor_id;comment:'始祖评论ID，NULL表示对业务资源的直接评论'"`
	ParentID   sql.Null[int64] `gorm:"type:bigint;index:idx_parent_id;comment:'父评论ID，NULL表示对业务资源的直接评论'"`

	Utime int64
	Ctime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 创建直接评论（始祖评论），子评论及孙子评论
	Create(ctx context.Context, comment Comment) (Comment, error)
	// FindByBiz 查找某一业务资源下的所有评论，包含所有层级，按照ID升序
	FindByBiz(ctx context.Context, tenantID int64, biz string, bizID int64) ([]Comment, error)
	// CountByBiz 统计某一业务资源下所有评论的数量
	CountByBiz(ctx context.Context, tenantID int64, biz string, bizID int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Comment, error)
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (Comment, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ancestorID int64
		// 当前评论非根评论（始祖评论）
		if c.ParentID.Valid {
			var parent Comment
			if err := tx.First(&parent, "id = ?", c.ParentID.V).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParentID, err)
			}
			// 父评论必须属于同一个评论对象
			if parent.TenantID != c.TenantID || parent.Biz != c.Biz || parent.BizID != c.BizID {
				return fmt.Errorf("%w: 父评论 %d 不属于 %s:%d", ErrInvalidParentID, parent.ID, c.Biz, c.BizID)
			}
			// 如果父评论是根评论（始祖评论），那始祖评论ID就是父评论ID，否则与父评论的始祖评论ID相同
			if !parent.ParentID.Valid {
				ancestorID = parent.ID
			} else {
				ancestorID = parent.AncestorID.V
			}
		}
		c.AncestorID = sql.Null[int64]{V: ancestorID, Valid: ancestorID != 0}
		return tx.Create(&c).Error
	})
	return c, err
}

func (g *commentDAO) FindByBiz(ctx context.Context, tenantID int64, biz string, bizID int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("tenant_id = ? AND biz = ? AND biz_id = ?", tenantID, biz, bizID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountByBiz(ctx context.Context, tenantID int64, biz string, bizID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("tenant_id = ? AND biz = ? AND biz_id = ?", tenantID, biz, bizID).
		Count(&count).Error
	return count, err
}

func (g *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}
