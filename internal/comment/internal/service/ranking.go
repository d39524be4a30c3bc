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
	"cmp"
	"slices"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
)

// Rank 把评论组装成树，并且每一层的兄弟评论都按照 order 排序。
// 父评论不在 comments 里面的回复会被当成根评论，避免丢失。
func Rank(comments []domain.Comment, order domain.Order) []domain.Comment {
	compare := compareFunc(order)
	exists := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		exists[c.ID] = struct{}{}
	}
	roots := make([]domain.Comment, 0, len(comments))
	children := make(map[int64][]domain.Comment, len(comments))
	for _, c := range comments {
		c.Replies = nil
		if _, ok := exists[c.ParentID]; ok && c.ParentID != c.ID {
			children[c.ParentID] = append(children[c.ParentID], c)
			continue
		}
		roots = append(roots, c)
	}
	return assemble(roots, children, compare)
}

func assemble(nodes []domain.Comment,
	children map[int64][]domain.Comment,
	compare func(a, b domain.Comment) int) []domain.Comment {
	slices.SortStableFunc(nodes, compare)
	for i := range nodes {
		if replies, ok := children[nodes[i].ID]; ok {
			nodes[i].Replies = assemble(replies, children, compare)
		}
	}
	return nodes
}

func compareFunc(order domain.Order) func(a, b domain.Comment) int {
	if order == domain.OrderBest {
		return compareBest
	}
	return compareRecent
}

// compareRecent 先评论的在前面，时间相同按照 ID
func compareRecent(a, b domain.Comment) int {
	if r := cmp.Compare(a.Ctime, b.Ctime); r != 0 {
		return r
	}
	return cmp.Compare(a.ID, b.ID)
}

// compareBest 得分高的在前面，得分相同退化为 compareRecent
func compareBest(a, b domain.Comment) int {
	if r := cmp.Compare(b.Votes.Score, a.Votes.Score); r != 0 {
		return r
	}
	return compareRecent(a, b)
}
