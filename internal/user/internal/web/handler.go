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

package web

import (
	"errors"

	"github.com/ecodeclub/agora/internal/user/internal/domain"
	"github.com/ecodeclub/agora/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	u, err := h.userSvc.Profile(ctx, uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		// 还没有保存过资料
		u = domain.User{Id: uid}
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:        u.Id,
			Nickname:  u.Nickname,
			Avatar:    u.Avatar,
			Email:     u.Email,
			IsCreator: sess.Claims().Get("creator").StringOrDefault("") == "true",
		},
	}, nil
}

// Edit 用户编辑资料，空字段不会覆盖原来的值
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	_, err := h.userSvc.Save(ctx, domain.User{
		Id:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Email:    req.Email,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
