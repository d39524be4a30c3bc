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

package group

import (
	"github.com/ecodeclub/agora/internal/group/internal/domain"
	"github.com/ecodeclub/agora/internal/group/internal/service"
	"github.com/ecodeclub/agora/internal/group/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type Service = service.Service
type UserGroup = domain.UserGroup
type Handler = web.Handler
type AdminHandler = web.AdminHandler

var ErrGroupNotFound = service.ErrGroupNotFound
