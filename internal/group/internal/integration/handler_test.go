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
	"net/http"
	"testing"

	"github.com/ecodeclub/agora/internal/group"
	"github.com/ecodeclub/agora/internal/group/internal/errs"
	"github.com/ecodeclub/agora/internal/group/internal/integration/startup"
	"github.com/ecodeclub/agora/internal/group/internal/repository/dao"
	"github.com/ecodeclub/agora/internal/group/internal/web"
	"github.com/ecodeclub/agora/internal/test"
	testioc "github.com/ecodeclub/agora/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(123)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    group.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.AdminHdl.PrivateRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	m.Hdl.MemberRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `user_groups`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `user_group_memberships`").Error)
}

func (s *HandlerTestSuite) post(path string, body any) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestSave() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.SaveReq
		wantCode int
		after    func(t *testing.T)
	}{
		{
			name: "新建",
			req:  web.SaveReq{TenantID: 1, Name: "辩论协会"},
			after: func(t *testing.T) {
				var g dao.UserGroup
				err := s.db.Where("tenant_id = ? AND name = ?", 1, "辩论协会").First(&g).Error
				require.NoError(t, err)
				assert.False(t, g.Verified)
				assert.True(t, g.Ctime > 0)
			},
		},
		{
			name: "更新名称",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.UserGroup{ID: 2, TenantID: 1, Name: "旧名字", Ctime: 1, Utime: 1}).Error
				require.NoError(t, err)
			},
			req: web.SaveReq{ID: 2, TenantID: 1, Name: "新名字"},
			after: func(t *testing.T) {
				var g dao.UserGroup
				require.NoError(t, s.db.First(&g, 2).Error)
				assert.Equal(t, "新名字", g.Name)
				assert.True(t, g.Utime > 1)
			},
		},
		{
			name:     "名称为空",
			req:      web.SaveReq{TenantID: 1, Name: " "},
			wantCode: errs.NameEmpty.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			if tc.before != nil {
				tc.before(t)
			}
			res := s.post("/group/save", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.after != nil {
				tc.after(t)
			}
		})
	}
}

func (s *HandlerTestSuite) TestMembership() {
	ctx := context.Background()
	gid, err := s.svc.Save(ctx, group.UserGroup{TenantID: 1, Name: "校队"})
	s.NoError(err)
	otherTenant, err := s.svc.Save(ctx, group.UserGroup{TenantID: 2, Name: "校队"})
	s.NoError(err)

	s.Equal(0, s.post("/group/member/add", web.MemberReq{GroupID: gid, Uid: uid}).Code)
	// 重复添加
	s.Equal(0, s.post("/group/member/add", web.MemberReq{GroupID: gid, Uid: uid}).Code)
	s.Equal(0, s.post("/group/member/add", web.MemberReq{GroupID: otherTenant, Uid: uid}).Code)
	s.Equal(errs.GroupNotFound.Code, s.post("/group/member/add", web.MemberReq{GroupID: 9999, Uid: uid}).Code)

	// 未认证
	ok, err := s.svc.IsVerifiedMember(ctx, uid, gid)
	s.NoError(err)
	s.False(ok)
	s.Len(s.mine(1), 0)

	s.Equal(0, s.post("/group/verify", web.VerifyReq{ID: gid, Verified: true}).Code)
	s.Equal(0, s.post("/group/verify", web.VerifyReq{ID: otherTenant, Verified: true}).Code)
	s.Equal(errs.GroupNotFound.Code, s.post("/group/verify", web.VerifyReq{ID: 9999, Verified: true}).Code)
	ok, err = s.svc.IsVerifiedMember(ctx, uid, gid)
	s.NoError(err)
	s.True(ok)

	groups := s.mine(1)
	s.Len(groups, 1)
	s.Equal(gid, groups[0].ID)
	s.Equal("校队", groups[0].Name)
	s.True(groups[0].Verified)

	s.Equal(0, s.post("/group/member/remove", web.MemberReq{GroupID: gid, Uid: uid}).Code)
	ok, err = s.svc.IsVerifiedMember(ctx, uid, gid)
	s.NoError(err)
	s.False(ok)
	s.Len(s.mine(1), 0)
	s.Len(s.mine(2), 1)
}

func (s *HandlerTestSuite) mine(tenantID int64) []web.UserGroup {
	req, err := http.NewRequest(http.MethodPost, "/group/mine", iox.NewJSONReader(web.MineReq{TenantID: tenantID}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[[]web.UserGroup]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func TestGroupHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
