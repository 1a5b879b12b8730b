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

package niloption

import option "test/option"

func find(id string) option.Option[string] {
	if id == "" {
		return option.None[string]()
	}

	return option.Some(id)
}

func stream(ids []string) <-chan *User { // want `Function 'stream' returns nilable type '<-chan \*User'`
	out := make(chan *User)

	go func() {
		defer close(out)

		for _, id := range ids {
			if u, ok := cache[id]; ok {
				out <- &u
			} else {
				out <- nil
			}
		}
	}()

	return out
}

func head(users []*User) *User { // want `Function 'head' returns nilable type '\*User'`
	if len(users) == 0 {
		return nil
	}

	return users[0]
}

func named(id string) (u *User, ok bool) {
	v, ok := cache[id]
	if !ok {
		return nil, false
	}

	return &v, true
}
