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

package deadcode

import (
    `fmt`
    `sync/atomic`

    `github.com/cloudwego/dce/ast`
    `github.com/cloudwego/dce/internal/opts`
)

// Exec runs dead code elimination over node until a pass makes no change,
// with an oracle snapshot taken from the program. It returns the new root
// (which differs from node only when node itself got replaced) and whether
// anything changed.
func Exec(prog *ast.Program, node ast.Node, o opts.Options) (ast.Node, bool) {
    return Run(prog, Snapshot(prog), node, o)
}

// Snapshot returns the oracle of the program, or takes a new one if the
// program does not provide it.
func Snapshot(prog *ast.Program) ast.TypeOracle {
    if prog.Oracle != nil {
        return prog.Oracle
    } else {
        return ast.NewOracle(prog)
    }
}

// Run is Exec with an explicit oracle. It is safe to call concurrently on
// disjoint subtrees of the same program.
func Run(prog *ast.Program, oracle ast.TypeOracle, node ast.Node, o opts.Options) (ast.Node, bool) {
    changed := false
    atomic.AddUint64(&RunCount, 1)

    /* run until fixpoint, or until the pass limit */
    for pass := 1; o.CanRun(pass); pass++ {
        vis := newVisitor(prog, oracle, o.Trace, pass)
        vis.walker = ast.NewWalker(vis)
        node = vis.walker.Accept(node)
        atomic.AddUint64(&PassCount, 1)

        /* trace the pass result */
        if o.Trace != nil {
            fmt.Fprintf(o.Trace, "pass %d: changed = %v\n", pass, vis.walker.DidChange())
        }

        /* stop if nothing changed */
        if !vis.walker.DidChange() {
            break
        }

        /* this pass changed something */
        changed = true
        atomic.AddUint64(&ChangedCount, 1)
    }

    /* all done */
    return node, changed
}
