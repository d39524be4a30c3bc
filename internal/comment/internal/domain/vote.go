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

const (
	WeightUp   = 1
	WeightDown = -1
)

type Vote struct {
	CommentID int64
	Uid       int64
	Weight    int
}

// VoteSummary 某条评论的投票汇总
type VoteSummary struct {
	Up    int64
	Down  int64
	Score int64
	// 当前查看者自己的投票，0 表示没有投过
	MyWeight int
}
