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

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// Author 署名，GroupID 不为 0 表示以用户组的名义
type Author struct {
	User    User   `json:"user"`
	GroupID int64  `json:"groupID,omitempty"`
	Name    string `json:"name"`
}

type Votes struct {
	Up       int64 `json:"up"`
	Down     int64 `json:"down"`
	Score    int64 `json:"score"`
	MyWeight int   `json:"myWeight"`
}

type Comment struct {
	ID int64 `json:"id"`
	// 回复某个评论
	ParentID   int64 `json:"parentID"`
	AncestorID int64 `json:"ancestorID"`

	// 评论的具体内容
	Content   string `json:"content"`
	Alignment string `json:"alignment,omitempty"`

	// 评论的人
	Author Author `json:"author"`

	// 针对什么东西的评论
	// 注意，即便是回复某个评论，那么这两个字段依旧有值
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Ctime int64  `json:"ctime"`

	Votes   Votes     `json:"votes"`
	Replies []Comment `json:"replies,omitempty"`
}

type CreateRequest struct {
	TenantID int64  `json:"tenantID"`
	Biz      string `json:"biz"`
	BizID    int64  `json:"bizID"`
	ParentID int64  `json:"parentID"`
	Content  string `json:"content"`
	// favor, against, neutral，不传表示不表明立场
	Alignment string `json:"alignment"`
	// 以用户组的名义评论
	GroupID int64 `json:"groupID"`
}

type ListRequest struct {
	TenantID int64  `json:"tenantID"`
	Biz      string `json:"biz"`
	BizID    int64  `json:"bizID"`
	// recent 或者 best，默认 recent
	Order string `json:"order"`
}

type CommentList struct {
	List  []Comment `json:"list"`
	Total int64     `json:"total"`
}

type VoteRequest struct {
	TenantID  int64 `json:"tenantID"`
	CommentID int64 `json:"commentID"`
	// 1 赞成，-1 反对
	Weight int `json:"weight"`
}

type RegisterRequest struct {
	TenantID        int64  `json:"tenantID"`
	Biz             string `json:"biz"`
	BizID           int64  `json:"bizID"`
	AuthorID        int64  `json:"authorID"`
	AllowsAlignment bool   `json:"allowsAlignment"`
	AllowsVotes     bool   `json:"allowsVotes"`
}

// BizRequest 定位一个评论对象
type BizRequest struct {
	TenantID int64  `json:"tenantID"`
	Biz      string `json:"biz"`
	BizID    int64  `json:"bizID"`
}

type Commentable struct {
	TenantID        int64  `json:"tenantID"`
	Biz             string `json:"biz"`
	BizID           int64  `json:"bizID"`
	AuthorID        int64  `json:"authorID"`
	AllowsAlignment bool   `json:"allowsAlignment"`
	AllowsVotes     bool   `json:"allowsVotes"`
}
