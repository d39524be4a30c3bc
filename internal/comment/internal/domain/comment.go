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

type User struct {
	ID       int64
	NickName string
	Avatar   string
}

// Author 评论的署名
// GroupID 不为 0 的时候表示以用户组的名义发表，此时展示的是用户组名称，
// 但是 User 依旧是实际操作的人。
type Author struct {
	User    User
	GroupID int64
	Name    string
}

// IsGroup 是否以用户组的名义发表
func (a Author) IsGroup() bool {
	return a.GroupID > 0
}

// DisplayName 展示用的名字
func (a Author) DisplayName() string {
	if a.IsGroup() {
		return a.Name
	}
	return a.User.NickName
}

type Comment struct {
	ID       int64
	TenantID int64
	// 评论的人
	Author Author
	// 评论的对象
	Biz   string
	BizID int64

	// 当前评论要回复的父评论ID，0 表示直接评论
	ParentID int64
	// 始祖评论ID，0 表示自身就是始祖评论
	AncestorID int64

	// 评论的具体内容
	Content string
	// 立场，只有在评论对象允许的时候才可以设置
	Alignment Alignment

	// 评论本身不允许修改，所以这个就是评论时间
	Ctime int64

	// 投票汇总，不存储在评论上
	Votes VoteSummary

	// 回复，按照同样的排序规则组装成树
	Replies []Comment
}

// IsReply 是否是针对某个评论的回复
func (c Comment) IsReply() bool {
	return c.ParentID > 0
}

type Alignment string

const (
	AlignmentUnset   Alignment = ""
	AlignmentFavor   Alignment = "favor"
	AlignmentAgainst Alignment = "against"
	AlignmentNeutral Alignment = "neutral"
)

func (a Alignment) Valid() bool {
	switch a {
	case AlignmentUnset, AlignmentFavor, AlignmentAgainst, AlignmentNeutral:
		return true
	default:
		return false
	}
}

func (a Alignment) String() string {
	return string(a)
}
