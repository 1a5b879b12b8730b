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

package nesting

func deep(a, b, c, d int) int {
	if a > 0 {
		if b > 0 {
			if c > 0 {
				if d > 0 { // want `Conditional is nested 4 levels deep \(limit 3\)`
					return d
				}
			}
		}
	}

	return 0
}

func elseIfChain(v int) int {
	if v > 100 {
		return 3
	} else if v > 10 {
		if v > 50 {
			if v > 75 {
				return 2
			}
		}

		return 1
	}

	return 0
}

func bracedElse(a, b, c int) int {
	if a > 0 {
		return 1
	} else {
		if b > 0 {
			if c > 0 {
				if a+b+c > 10 { // want `Conditional is nested 4 levels deep \(limit 3\)`
					return 2
				}
			}
		}
	}

	return 0
}

func switches(v int, s string) string {
	switch {
	case v > 0:
		if v > 10 {
			if v > 20 {
				switch s { // want `Conditional is nested 4 levels deep \(limit 3\)`
				case "a":
					return "big a"
				}
			}
		}
	}

	return ""
}

func suppressed(a, b, c, d int) int {
	if a > 0 {
		if b > 0 {
			if c > 0 {
				if d > 0 { //nolint:lintelligent
					return d
				}
			}
		}
	}

	return 0
}
