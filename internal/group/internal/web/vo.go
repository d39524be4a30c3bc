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

import "github.com/ecodeclub/agora/internal/group/internal/domain"

type UserGroup struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenantID"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	Utime    int64  `json:"utime"`
}

func newUserGroup(g domain.UserGroup) UserGroup {
	return UserGroup{
		ID:       g.ID,
		TenantID: g.TenantID,
		Name:     g.Name,
		Verified: g.Verified,
		Utime:    g.Utime,
	}
}

type MineReq struct {
	TenantID int64 `json:"tenantID"`
}

type SaveReq struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenantID"`
	Name     string `json:"name"`
}

type VerifyReq struct {
	ID       int64 `json:"id"`
	Verified bool  `json:"verified"`
}

type MemberReq struct {
	GroupID int64 `json:"groupID"`
	Uid     int64 `json:"uid"`
}
