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

package opts

import (
    `io`
    `os`
)

type Options struct {
    MaxPasses int
    Workers   int
    Trace     io.Writer
}

// CanRun reports whether pass number n (counting from 1) may run.
func (self *Options) CanRun(n int) bool {
    return self.MaxPasses == 0 || n <= self.MaxPasses
}

func GetDefaultOptions() Options {
    ret := Options {
        MaxPasses : MaxPasses,
        Workers   : Workers,
    }

    /* trace to stderr if asked */
    if Trace {
        ret.Trace = os.Stderr
    }
    return ret
}
