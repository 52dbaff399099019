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

package dce

import (
    `fmt`
    `io`

    `github.com/cloudwego/dce/internal/opts`
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithMaxPasses limits the number of passes a single optimization runs.
//
// The optimizer normally stops by itself once a pass makes no change, this
// option is a safety net against rewrite cycles. When the limit is reached
// the optimization stops early, and the result is still correct but may not
// be fully optimized.
//
// Set this option to "0" disables this limit, which is the default.
func WithMaxPasses(n int) Option {
    if n < 0 {
        panic(fmt.Sprintf("dce: invalid max passes: %d", n))
    } else {
        return func(o *opts.Options) { o.MaxPasses = n }
    }
}

// WithWorkers sets the number of methods OptimizeMethods optimizes at the
// same time.
//
// The default value of this option is "4".
func WithWorkers(n int) Option {
    if n < 1 {
        panic(fmt.Sprintf("dce: invalid worker count: %d", n))
    } else {
        return func(o *opts.Options) { o.Workers = n }
    }
}

// WithTrace writes one line to w for every rule firing, and one line at the
// end of every pass. A nil writer disables tracing.
func WithTrace(w io.Writer) Option {
    return func(o *opts.Options) { o.Trace = w }
}

// SetMaxPasses sets the default pass limit for all optimizations from now
// on.
//
// This value can also be configured with the `DCE_MAX_PASSES` environment
// variable.
//
// Returns the old opts.MaxPasses value.
func SetMaxPasses(n int) int {
    if n < 0 {
        panic(fmt.Sprintf("dce: invalid max passes: %d", n))
    }
    n, opts.MaxPasses = opts.MaxPasses, n
    return n
}

// SetWorkers sets the default worker count of OptimizeMethods from now on.
//
// This value can also be configured with the `DCE_WORKERS` environment
// variable.
//
// Returns the old opts.Workers value.
func SetWorkers(n int) int {
    if n < 1 {
        panic(fmt.Sprintf("dce: invalid worker count: %d", n))
    }
    n, opts.Workers = opts.Workers, n
    return n
}
