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

type Order uint8

const (
	// OrderRecent 按照评论时间，先评论的在前面
	OrderRecent Order = iota
	// OrderBest 按照得分，得分高的在前面
	OrderBest
)

func ParseOrder(s string) Order {
	if s == "best" {
		return OrderBest
	}
	return OrderRecent
}

func (o Order) String() string {
	if o == OrderBest {
		return "best"
	}
	return "recent"
}
