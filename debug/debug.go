/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package debug

import (
	"sync/atomic"

	"github.com/cloudwego/dce/internal/deadcode"
)

// A Stats records statistics about the optimizer.
type Stats struct {
	Runs  RunStats
	Rules map[string]int
}

// A RunStats records how many times the optimizer ran, and how many passes
// it took to reach a fixpoint.
type RunStats struct {
	Runs    int
	Passes  int
	Changed int
}

// GetStats returns statistics of the optimizer since the process started.
func GetStats() Stats {
	return Stats{
		Runs: RunStats{
			Runs:    int(atomic.LoadUint64(&deadcode.RunCount)),
			Passes:  int(atomic.LoadUint64(&deadcode.PassCount)),
			Changed: int(atomic.LoadUint64(&deadcode.ChangedCount)),
		},
		Rules: deadcode.RuleHits(),
	}
}
