// Copyright 2026 The Lintelligent Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package nilchecks

type Item struct {
	ID int
}

func lookup(items map[string]*Item, key string) *Item { // want `Function 'lookup' returns nilable type '\*Item'`
	return items[key]
}

func describe(i *Item) string {
	if i == nil { // want `Explicit nil comparison on nilable value`
		return "none"
	}

	return "item"
}

func count(i *Item) int {
	if i != nil { // want `Explicit nil comparison on nilable value`
		return 1
	}

	return 0
}

func ensure(i *Item) int {
	if i == nil { // want `Nil fallback assignment`
		i = &Item{}
	}

	return i.ID
}

func compare(a, b *Item) bool {
	return a == b // not a nil comparison
}

func check(err error) bool {
	return err != nil // interfaces are not pointer-shaped
}

func insideFlagged(items []*Item) *Item { // want `Function 'insideFlagged' returns nilable type '\*Item'`
	for _, i := range items {
		if i != nil { // quiet: the function is already reported
			return i
		}
	}

	return nil
}
