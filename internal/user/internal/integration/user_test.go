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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	testioc "github.com/ecodeclub/agora/internal/test/ioc"
	"github.com/ecodeclub/agora/internal/user"
	"github.com/ecodeclub/agora/internal/user/internal/integration/startup"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	db    *egorm.Component
	cache ecache.Cache
	svc   user.UserService
}

func (s *UserServiceTestSuite) SetupSuite() {
	s.svc = startup.InitModule().Svc
	s.db = testioc.InitDB()
	s.cache = testioc.InitCache()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `users`").Error)
}

func (s *UserServiceTestSuite) cacheKey(id int64) string {
	return fmt.Sprintf("user:info:%d", id)
}

func (s *UserServiceTestSuite) TestProfile() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	id, err := s.svc.Save(ctx, user.User{
		Nickname: "Alice",
		Avatar:   "alice.jpg",
		Email:    "alice@example.com",
	})
	s.NoError(err)
	s.True(id > 0)

	u, err := s.svc.Profile(ctx, id)
	s.NoError(err)
	s.Equal(user.User{Id: id, Nickname: "Alice", Avatar: "alice.jpg", Email: "alice@example.com"}, u)
	// 查询之后写入缓存
	s.False(s.cache.Get(ctx, s.cacheKey(id)).KeyNotFound())

	// 只更新非 0 字段，并且删除缓存
	_, err = s.svc.Save(ctx, user.User{Id: id, Nickname: "Alice Liu"})
	s.NoError(err)
	s.True(s.cache.Get(ctx, s.cacheKey(id)).KeyNotFound())

	u, err = s.svc.Profile(ctx, id)
	s.NoError(err)
	s.Equal("Alice Liu", u.Nickname)
	s.Equal("alice.jpg", u.Avatar)

	_, err = s.svc.Profile(ctx, id+1000)
	s.ErrorIs(err, user.ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestBatchProfile() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	ids := make([]int64, 0, 3)
	for i := 0; i < 3; i++ {
		id, err := s.svc.Save(ctx, user.User{Nickname: fmt.Sprintf("user-%d", i)})
		s.NoError(err)
		ids = append(ids, id)
	}

	// 不存在的用户直接忽略
	us, err := s.svc.BatchProfile(ctx, append(ids, 99999))
	s.NoError(err)
	s.Len(us, 3)

	us, err = s.svc.BatchProfile(ctx, nil)
	s.NoError(err)
	s.Len(us, 0)
}

func (s *UserServiceTestSuite) TestSave_FirstTimeWithUid() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// 登录之后第一次保存资料，记录还不存在
	const uid = int64(4321)
	id, err := s.svc.Save(ctx, user.User{Id: uid, Nickname: "Bob", Email: "bob@example.com"})
	s.NoError(err)
	s.Equal(uid, id)

	u, err := s.svc.Profile(ctx, uid)
	s.NoError(err)
	s.Equal(user.User{Id: uid, Nickname: "Bob", Email: "bob@example.com"}, u)

	// 空字段不会覆盖
	_, err = s.svc.Save(ctx, user.User{Id: uid, Avatar: "bob.jpg"})
	s.NoError(err)
	u, err = s.svc.Profile(ctx, uid)
	s.NoError(err)
	s.Equal(user.User{Id: uid, Nickname: "Bob", Avatar: "bob.jpg", Email: "bob@example.com"}, u)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
