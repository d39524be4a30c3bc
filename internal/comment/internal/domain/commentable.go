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

package domain

// Commentable 可以被评论的对象，例如辩论、提案
// 能力在注册的时候就确定下来，评论模块只看这里的标记位
type Commentable struct {
	TenantID int64
	Biz      string
	BizID    int64
	// 作者，0 表示该对象没有作者
	AuthorID int64
	// 评论是否可以表明立场
	AllowsAlignment bool
	// 评论是否可以投票
	AllowsVotes bool
}

func (c Commentable) HasAuthor() bool {
	return c.AuthorID > 0
}
