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

package drydamp

import "fmt"

func duplicated(x int) {
	{
		v := x * 2
		s := fmt.Sprint(v)
		fmt.Println(s)
	}

	{ // want `Block of 3 statements duplicates the block at line \d+`
		v := x * 2
		s := fmt.Sprint(v)
		fmt.Println(s)
	}
}

func almostDuplicated(x int) {
	{
		v := x * 3
		s := fmt.Sprint(v)
		fmt.Println(s)
	}

	{
		v := x * 4
		s := fmt.Sprint(v)
		fmt.Println(s)
	}
}

func tooShort(x int) {
	{
		fmt.Println(x)
		fmt.Println(x)
	}

	{
		fmt.Println(x)
		fmt.Println(x)
	}
}

func gate(a, b, c, d, e bool) bool {
	if a && b && c && d && e { // want `Condition combines 4 logical operators \(limit 3\)`
		return true
	}

	return a && b && c && d
}

func loop(a, b, c, d, e bool) int {
	n := 0

	for a && (b || c) && (d || e) { // want `Condition combines 4 logical operators \(limit 3\)`
		n++
		a = false
	}

	return n
}

func withinLimit(a, b, c, d bool) bool {
	if a && b && c && d {
		return true
	}

	return false
}
