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

var ErrDataNotFound = gorm.ErrRecordNotFound

var ErrUserDuplicate = errors.New("用户已经存在")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	// Upsert 用户不存在的时候创建，存在的时候只更新非 0 字段
	Upsert(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Upsert(ctx context.Context, u User) error {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	updates := map[string]any{"utime": now}
	if u.Nickname != "" {
		updates["nickname"] = u.Nickname
	}
	if u.Avatar != "" {
		updates["avatar"] = u.Avatar
	}
	if u.Email != "" {
		updates["email"] = u.Email
	}
	return ud.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(updates),
	}).Create(&u).Error
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

type User struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Nickname string
	Avatar   string
	Email    string `gorm:"type:varchar(256);index"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
