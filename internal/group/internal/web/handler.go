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
	"github.com/ecodeclub/agora/internal/group/internal/domain"
	"github.com/ecodeclub/agora/internal/group/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	g := server.Group("/group")
	// 当前用户可以用来署名的用户组，也就是“以……的名义评论”的候选项
	g.POST("/mine", ginx.BS[MineReq](h.Mine))
}

func (h *Handler) Mine(ctx *ginx.Context, req MineReq, sess session.Session) (ginx.Result, error) {
	groups, err := h.svc.VerifiedGroupsOf(ctx.Request.Context(), req.TenantID, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(groups, func(_ int, src domain.UserGroup) UserGroup {
			return newUserGroup(src)
		}),
	}, nil
}
