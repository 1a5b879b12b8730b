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

package emptyhandler

import (
	"errors"
	"fmt"
)

var errBroken = errors.New("broken")

func work() error { return errBroken }

func ignoresError() {
	if err := work(); err != nil { // want "Empty error handler discards the error"
	}

	fmt.Println("done")
}

func handlesError() {
	if err := work(); err != nil {
		fmt.Println(err)
	}
}

func suppressesPanic() {
	defer func() {
		recover() // want "Deferred recover silently swallows panics"
	}()

	fmt.Println("working")
}

func discardsRecover() {
	defer func() {
		_ = recover() // want "Deferred recover silently swallows panics"
	}()
}

func usesRecover() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("recovered:", r)
		}
	}()
}

func suppressed() {
	if err := work(); err != nil { //nolint:lintelligent
	}
}

func notAnError(p *int) {
	if p != nil { // pointer check, not an error handler
	}
}
