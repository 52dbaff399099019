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
    `strconv`

    `github.com/xyproto/env/v2`
)

const (
    _DefaultMaxPasses = 0 // no limit, run until the fixpoint
    _DefaultWorkers   = 4 // parallel method optimizations
)

var (
    MaxPasses = parseOrDefault("DCE_MAX_PASSES", _DefaultMaxPasses, 0)
    Workers   = parseOrDefault("DCE_WORKERS", _DefaultWorkers, 1)
    Trace     = env.Bool("DCE_TRACE")
)

func parseOrDefault(key string, def int, min int) int {
    if str := env.Str(key); str == "" {
        return def
    } else if val, err := strconv.ParseUint(str, 0, 31); err != nil {
        panic("dce: invalid value for " + key)
    } else if ret := int(val); ret < min {
        panic("dce: value too small for " + key)
    } else {
        return ret
    }
}
