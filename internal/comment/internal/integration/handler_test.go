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
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/agora/internal/comment"
	"github.com/ecodeclub/agora/internal/comment/internal/errs"
	"github.com/ecodeclub/agora/internal/comment/internal/integration/startup"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/agora/internal/comment/internal/web"
	"github.com/ecodeclub/agora/internal/group"
	"github.com/ecodeclub/agora/internal/test"
	testioc "github.com/ecodeclub/agora/internal/test/ioc"
	"github.com/ecodeclub/agora/internal/user"
	usermocks "github.com/ecodeclub/agora/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	tenantID = int64(1)
	biz      = "debate"

	// 评论对象的作者
	ownerUID = int64(12345)
	aliceUID = int64(12346)
	bobUID   = int64(12347)

	uidHeader = "X-Test-Uid"
)

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	db          *egorm.Component
	dao         dao.CommentDAO
	groupModule *group.Module
	consumer    mq.Consumer
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.dao = dao.NewCommentGORMDAO(s.db)

	q := testioc.InitMQ()
	consumer, err := q.Consumer(comment.NotificationTopic, "comment_e2e")
	require.NoError(s.T(), err)
	s.consumer = consumer

	gm, err := group.InitModule(s.db)
	require.NoError(s.T(), err)
	s.groupModule = gm

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	users := map[int64]user.User{
		ownerUID: {Id: ownerUID, Nickname: "辩题作者", Avatar: "owner.jpg"},
		aliceUID: {Id: aliceUID, Nickname: "Alice", Avatar: "alice.jpg"},
		bobUID:   {Id: bobUID, Nickname: "Bob", Avatar: "bob.jpg"},
	}
	userSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (user.User, error) {
			return users[id], nil
		}).AnyTimes()
	userSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) ([]user.User, error) {
			res := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if u, ok := users[id]; ok {
					res = append(res, u)
				}
			}
			return res, nil
		}).AnyTimes()

	m, err := startup.InitModule(&user.Module{Svc: userSvc}, s.groupModule)
	require.NoError(s.T(), err)

	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	m.AdminHdl.PrivateRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		uid := ownerUID
		if val := ctx.GetHeader(uidHeader); val != "" {
			uid, _ = strconv.ParseInt(val, 10, 64)
		}
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.MemberRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"comments", "comment_votes", "commentables",
		"user_groups", "user_group_memberships"} {
		s.NoError(s.db.Exec("TRUNCATE TABLE `" + table + "`").Error)
	}
}

func (s *HandlerTestSuite) register(bizID int64, allowsAlignment, allowsVotes bool) {
	req, err := http.NewRequest(http.MethodPost,
		"/comment/commentable/register", iox.NewJSONReader(web.RegisterRequest{
			TenantID:        tenantID,
			Biz:             biz,
			BizID:           bizID,
			AuthorID:        ownerUID,
			AllowsAlignment: allowsAlignment,
			AllowsVotes:     allowsVotes,
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) create(uid int64, r web.CreateRequest) test.Result[web.Comment] {
	req, err := http.NewRequest(http.MethodPost,
		"/comment/create", iox.NewJSONReader(r))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(uidHeader, strconv.FormatInt(uid, 10))
	recorder := test.NewJSONResponseRecorder[web.Comment]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) mustCreate(uid int64, r web.CreateRequest) web.Comment {
	res := s.create(uid, r)
	require.Equal(s.T(), 0, res.Code, res.Msg)
	return res.Data
}

func (s *HandlerTestSuite) vote(uid, commentID int64, weight int) test.Result[web.Votes] {
	req, err := http.NewRequest(http.MethodPost,
		"/comment/vote", iox.NewJSONReader(web.VoteRequest{
			TenantID:  tenantID,
			CommentID: commentID,
			Weight:    weight,
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(uidHeader, strconv.FormatInt(uid, 10))
	recorder := test.NewJSONResponseRecorder[web.Votes]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) list(bizID int64, order string) web.CommentList {
	req, err := http.NewRequest(http.MethodPost,
		"/comment/list", iox.NewJSONReader(web.ListRequest{
			TenantID: tenantID,
			Biz:      biz,
			BizID:    bizID,
			Order:    order,
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Equal(s.T(), 0, res.Code, res.Msg)
	return res.Data
}

func (s *HandlerTestSuite) TestCreate() {
	s.register(1, true, true)

	testCases := []struct {
		name     string
		uid      int64
		req      web.CreateRequest
		wantCode int
		after    func(t *testing.T, c web.Comment)
	}{
		{
			name: "直接评论",
			uid:  aliceUID,
			req: web.CreateRequest{
				TenantID:  tenantID,
				Biz:       biz,
				BizID:     1,
				Content:   "  我支持正方  ",
				Alignment: "favor",
			},
			after: func(t *testing.T, c web.Comment) {
				assert.True(t, c.ID > 0)
				assert.Equal(t, "我支持正方", c.Content)
				assert.Equal(t, "favor", c.Alignment)
				assert.Equal(t, "Alice", c.Author.Name)

				found, err := s.dao.FindByID(context.Background(), c.ID)
				require.NoError(t, err)
				assert.Equal(t, aliceUID, found.Uid)
				assert.Equal(t, "favor", found.Alignment)
				assert.False(t, found.ParentID.Valid)
			},
		},
		{
			name: "内容为空",
			uid:  aliceUID,
			req: web.CreateRequest{
				TenantID: tenantID,
				Biz:      biz,
				BizID:    1,
				Content:  "   ",
			},
			wantCode: errs.ValidationError.Code,
		},
		{
			name: "未知立场",
			uid:  aliceUID,
			req: web.CreateRequest{
				TenantID:  tenantID,
				Biz:       biz,
				BizID:     1,
				Content:   "随便说说",
				Alignment: "maybe",
			},
			wantCode: errs.ValidationError.Code,
		},
		{
			name: "父评论不存在",
			uid:  aliceUID,
			req: web.CreateRequest{
				TenantID: tenantID,
				Biz:      biz,
				BizID:    1,
				ParentID: 987654,
				Content:  "回复一个不存在的评论",
			},
			wantCode: errs.ValidationError.Code,
		},
		{
			name: "不是认证用户组的成员",
			uid:  aliceUID,
			req: web.CreateRequest{
				TenantID: tenantID,
				Biz:      biz,
				BizID:    1,
				Content:  "冒充用户组",
				GroupID:  987654,
			},
			wantCode: errs.AuthorizationError.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := s.create(tc.uid, tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.after != nil {
				tc.after(t, res.Data)
			}
		})
	}
}

func (s *HandlerTestSuite) TestCreate_AlignmentDisabled() {
	s.register(2, false, true)
	res := s.create(aliceUID, web.CreateRequest{
		TenantID:  tenantID,
		Biz:       biz,
		BizID:     2,
		Content:   "表明立场",
		Alignment: "against",
	})
	s.Equal(errs.AuthorizationError.Code, res.Code)

	// 不表明立场是可以的
	c := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID,
		Biz:      biz,
		BizID:    2,
		Content:  "不表明立场",
	})
	s.Equal("", c.Alignment)
}

func (s *HandlerTestSuite) TestCreate_ReplyOtherCommentable() {
	s.register(3, true, true)
	s.register(4, true, true)
	root := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 3, Content: "评论 3",
	})
	res := s.create(bobUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 4, ParentID: root.ID, Content: "跨对象回复",
	})
	s.Equal(errs.ValidationError.Code, res.Code)
}

func (s *HandlerTestSuite) TestCreate_GroupAuthor() {
	s.register(5, true, true)
	ctx := context.Background()
	gid, err := s.groupModule.Svc.Save(ctx, group.UserGroup{TenantID: tenantID, Name: "辩论协会"})
	s.NoError(err)
	s.NoError(s.groupModule.Svc.AddMember(ctx, gid, aliceUID))

	// 未认证的用户组不能署名
	res := s.create(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 5, Content: "协会立场", GroupID: gid,
	})
	s.Equal(errs.AuthorizationError.Code, res.Code)

	s.NoError(s.groupModule.Svc.Verify(ctx, gid, true))
	c := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 5, Content: "协会立场", GroupID: gid,
	})
	s.Equal(gid, c.Author.GroupID)
	s.Equal("辩论协会", c.Author.Name)

	// 不是成员
	res = s.create(bobUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 5, Content: "我也想代表协会", GroupID: gid,
	})
	s.Equal(errs.AuthorizationError.Code, res.Code)

	list := s.list(5, "recent")
	s.Len(list.List, 1)
	s.Equal("辩论协会", list.List[0].Author.Name)
	s.Equal(aliceUID, list.List[0].Author.User.ID)
}

func (s *HandlerTestSuite) TestList() {
	s.register(6, true, true)
	first := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 6, Content: "第一条",
	})
	time.Sleep(2 * time.Millisecond)
	second := s.mustCreate(bobUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 6, Content: "第二条",
	})
	time.Sleep(2 * time.Millisecond)
	reply := s.mustCreate(bobUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 6, ParentID: first.ID, Content: "回复第一条",
	})
	s.Equal(first.ID, reply.AncestorID)

	// first 得一票，second 得两票
	s.Equal(0, s.vote(ownerUID, first.ID, 1).Code)
	s.Equal(0, s.vote(ownerUID, second.ID, 1).Code)
	s.Equal(0, s.vote(aliceUID, second.ID, 1).Code)

	recent := s.list(6, "recent")
	s.Equal(int64(3), recent.Total)
	s.Len(recent.List, 2)
	// 按照评论时间，先评论的在前面
	s.Equal(first.ID, recent.List[0].ID)
	s.Equal(second.ID, recent.List[1].ID)
	s.Len(recent.List[0].Replies, 1)
	s.Equal(reply.ID, recent.List[0].Replies[0].ID)

	best := s.list(6, "best")
	s.Len(best.List, 2)
	s.Equal(second.ID, best.List[0].ID)
	s.Equal(int64(2), best.List[0].Votes.Score)
	s.Equal(first.ID, best.List[1].ID)

	// 没有评论
	empty := s.list(7, "best")
	s.Equal(int64(0), empty.Total)
	s.Len(empty.List, 0)

	s.Equal(int64(3), s.post("/comment/count", web.BizRequest{TenantID: tenantID, Biz: biz, BizID: 6}).Data)
	s.Equal(int64(0), s.post("/comment/count", web.BizRequest{TenantID: tenantID, Biz: biz, BizID: 7}).Data)
}

func (s *HandlerTestSuite) TestCommentableDetail() {
	s.register(11, true, false)
	res := s.postCommentable(web.BizRequest{TenantID: tenantID, Biz: biz, BizID: 11})
	s.Equal(web.Commentable{
		TenantID:        tenantID,
		Biz:             biz,
		BizID:           11,
		AuthorID:        ownerUID,
		AllowsAlignment: true,
	}, res)

	// 重新登记会覆盖能力
	s.register(11, false, true)
	res = s.postCommentable(web.BizRequest{TenantID: tenantID, Biz: biz, BizID: 11})
	s.False(res.AllowsAlignment)
	s.True(res.AllowsVotes)

	// 没有登记过
	res = s.postCommentable(web.BizRequest{TenantID: tenantID, Biz: biz, BizID: 12})
	s.Equal(web.Commentable{TenantID: tenantID, Biz: biz, BizID: 12}, res)
}

func (s *HandlerTestSuite) post(path string, body any) test.Result[int64] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) postCommentable(body web.BizRequest) web.Commentable {
	req, err := http.NewRequest(http.MethodPost, "/comment/commentable/detail", iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Commentable]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestVote() {
	s.register(8, true, true)
	s.register(9, true, false)
	c := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 8, Content: "可以投票",
	})

	res := s.vote(bobUID, c.ID, 1)
	s.Equal(0, res.Code)
	s.Equal(web.Votes{Up: 1, Score: 1, MyWeight: 1}, res.Data)

	// 重复投票覆盖原来的票
	res = s.vote(bobUID, c.ID, -1)
	s.Equal(0, res.Code)
	s.Equal(web.Votes{Down: 1, Score: -1, MyWeight: -1}, res.Data)

	res = s.vote(ownerUID, c.ID, -1)
	s.Equal(web.Votes{Down: 2, Score: -2, MyWeight: -1}, res.Data)

	var cnt int64
	s.NoError(s.db.Model(&dao.CommentVote{}).Where("comment_id = ?", c.ID).Count(&cnt).Error)
	s.Equal(int64(2), cnt)

	// 非法的票
	s.Equal(errs.ValidationError.Code, s.vote(bobUID, c.ID, 2).Code)
	// 评论不存在
	s.Equal(errs.CommentNotFound.Code, s.vote(bobUID, 987654, 1).Code)

	// 未开启投票
	disabled := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 9, Content: "不能投票",
	})
	s.Equal(errs.AuthorizationError.Code, s.vote(bobUID, disabled.ID, 1).Code)
}

func (s *HandlerTestSuite) TestNotification() {
	s.register(10, true, true)
	root := s.mustCreate(aliceUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 10, Content: "通知辩题作者",
	})
	evt := s.waitEvent(root.ID)
	s.Equal(ownerUID, evt.Recipient)
	s.Equal("new_comment", evt.Kind)
	s.Equal("Alice", evt.AuthorName)

	reply := s.mustCreate(bobUID, web.CreateRequest{
		TenantID: tenantID, Biz: biz, BizID: 10, ParentID: root.ID, Content: "通知 Alice",
	})
	evt = s.waitEvent(reply.ID)
	s.Equal(aliceUID, evt.Recipient)
	s.Equal("new_reply", evt.Kind)
	s.Equal(root.ID, evt.ParentID)
}

// waitEvent 跳过其它用例留下来的消息
func (s *HandlerTestSuite) waitEvent(commentID int64) comment.NotificationEvent {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for {
		msg, err := s.consumer.Consume(ctx)
		require.NoError(s.T(), err, fmt.Sprintf("没有收到评论 %d 的通知", commentID))
		var evt comment.NotificationEvent
		require.NoError(s.T(), json.Unmarshal(msg.Value, &evt))
		if evt.CommentID == commentID {
			return evt
		}
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
