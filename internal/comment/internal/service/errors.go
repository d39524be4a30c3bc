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

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 参数不合法
	ErrValidation = errors.New("参数不合法")
	// ErrAuthorization 没有权限执行该操作
	ErrAuthorization = errors.New("没有权限")

	ErrEmptyContent     = fmt.Errorf("%w: 评论内容不能为空", ErrValidation)
	ErrInvalidAlignment = fmt.Errorf("%w: 未知的立场", ErrValidation)
	ErrInvalidParent    = fmt.Errorf("%w: 父评论不存在或者不属于同一个评论对象", ErrValidation)
	ErrInvalidWeight    = fmt.Errorf("%w: 投票只能是 1 或者 -1", ErrValidation)

	ErrAlignmentDisabled = fmt.Errorf("%w: 评论对象未开启立场", ErrAuthorization)
	ErrVotesDisabled     = fmt.Errorf("%w: 评论对象未开启投票", ErrAuthorization)
	ErrNotVerifiedMember = fmt.Errorf("%w: 不是认证用户组的成员", ErrAuthorization)

	ErrCommentNotFound = errors.New("评论不存在")
)
