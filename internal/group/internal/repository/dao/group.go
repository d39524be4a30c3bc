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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type UserGroup struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	TenantID int64  `gorm:"uniqueIndex:uniq_tenant_name"`
	Name     string `gorm:"type:varchar(256);uniqueIndex:uniq_tenant_name"`
	Verified bool   `gorm:"not null;default:false"`
	Ctime    int64
	Utime    int64
}

func (UserGroup) TableName() string {
	return "user_groups"
}

// Membership 用户和用户组的关系
type Membership struct {
	ID      int64 `gorm:"primaryKey,autoIncrement"`
	GroupID int64 `gorm:"uniqueIndex:uniq_group_uid"`
	Uid     int64 `gorm:"uniqueIndex:uniq_group_uid;index"`
	Ctime   int64
}

func (Membership) TableName() string {
	return "user_group_memberships"
}

type GroupDAO interface {
	Save(ctx context.Context, g UserGroup) (int64, error)
	UpdateVerified(ctx context.Context, id int64, verified bool) error
	FindByID(ctx context.Context, id int64) (UserGroup, error)
	FindByIDs(ctx context.Context, ids []int64) ([]UserGroup, error)
	// FindVerifiedByUid 某个用户所在的全部认证用户组
	FindVerifiedByUid(ctx context.Context, tenantID, uid int64) ([]UserGroup, error)

	AddMember(ctx context.Context, m Membership) error
	RemoveMember(ctx context.Context, groupID, uid int64) error
	// CountVerifiedMembership 用户是否是认证用户组的成员，返回 0 或者 1
	CountVerifiedMembership(ctx context.Context, uid, groupID int64) (int64, error)
}

type GORMGroupDAO struct {
	db *egorm.Component
}

func NewGORMGroupDAO(db *egorm.Component) GroupDAO {
	return &GORMGroupDAO{db: db}
}

func (d *GORMGroupDAO) Save(ctx context.Context, g UserGroup) (int64, error) {
	now := time.Now().UnixMilli()
	g.Ctime, g.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":  g.Name,
			"utime": now,
		}),
	}).Create(&g).Error
	return g.ID, err
}

func (d *GORMGroupDAO) UpdateVerified(ctx context.Context, id int64, verified bool) error {
	res := d.db.WithContext(ctx).Model(&UserGroup{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verified": verified,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *GORMGroupDAO) FindByID(ctx context.Context, id int64) (UserGroup, error) {
	var g UserGroup
	err := d.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return g, err
}

func (d *GORMGroupDAO) FindByIDs(ctx context.Context, ids []int64) ([]UserGroup, error) {
	var res []UserGroup
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Find(&res, "id IN ?", ids).Error
	return res, err
}

func (d *GORMGroupDAO) FindVerifiedByUid(ctx context.Context, tenantID, uid int64) ([]UserGroup, error) {
	var res []UserGroup
	err := d.db.WithContext(ctx).
		Joins("JOIN user_group_memberships m ON m.group_id = user_groups.id").
		Where("m.uid = ? AND user_groups.tenant_id = ? AND user_groups.verified = ?", uid, tenantID, true).
		Order("user_groups.id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMGroupDAO) AddMember(ctx context.Context, m Membership) error {
	m.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&m).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			// 已经是成员了
			return nil
		}
	}
	return err
}

func (d *GORMGroupDAO) RemoveMember(ctx context.Context, groupID, uid int64) error {
	return d.db.WithContext(ctx).
		Where("group_id = ? AND uid = ?", groupID, uid).
		Delete(&Membership{}).Error
}

func (d *GORMGroupDAO) CountVerifiedMembership(ctx context.Context, uid, groupID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Membership{}).
		Joins("JOIN user_groups g ON g.id = user_group_memberships.group_id").
		Where("user_group_memberships.uid = ? AND user_group_memberships.group_id = ? AND g.verified = ?",
			uid, groupID, true).
		Count(&cnt).Error
	return cnt, err
}
