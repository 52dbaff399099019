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

// Package dce removes dead code from a typed Java-like IR. It folds
// constants, prunes unreachable statements and simplifies control flow,
// repeating until the tree reaches a fixpoint.
package dce

import (
    `fmt`
    `io`
    `sync`

    `github.com/bytedance/gopkg/util/gopool`
    `github.com/oleiade/lane`

    `github.com/cloudwego/dce/ast`
    `github.com/cloudwego/dce/internal/deadcode`
    `github.com/cloudwego/dce/internal/opts`
)

func makeOptions(options []Option) opts.Options {
    ret := opts.GetDefaultOptions()
    for _, fn := range options {
        fn(&ret)
    }
    return ret
}

// Optimize removes dead code from the whole program, and reports whether
// anything changed.
func Optimize(prog *ast.Program, options ...Option) bool {
    _, ok := deadcode.Exec(prog, prog, makeOptions(options))
    return ok
}

// OptimizeNode removes dead code from a single class, method or block of
// the program. The node is modified in place.
//
// Invariant violations found during optimization panic with an
// *InternalError, as does a node that is not a class, method or block.
func OptimizeNode(prog *ast.Program, node ast.Node, options ...Option) bool {
    switch node.(type) {
        case *ast.Program   : break
        case *ast.ClassType : break
        case *ast.Method    : break
        case *ast.Block     : break
        default             : panic(ast.NewInternalError(node, "not a container node"))
    }

    /* the root of a container never gets replaced */
    _, ok := deadcode.Exec(prog, node, makeOptions(options))
    return ok
}

// OptimizeMethods optimizes each method with a pool of workers, methods are
// disjoint subtrees so they can be processed in parallel. The program facts
// are taken once, before any method is touched.
//
// Unlike OptimizeNode, internal errors are returned rather than raised. The
// first one is returned after every worker finished.
func OptimizeMethods(prog *ast.Program, methods []*ast.Method, options ...Option) (changed bool, err error) {
    var mu sync.Mutex
    var wg sync.WaitGroup

    /* snapshot the program facts */
    opt := makeOptions(options)
    oracle := deadcode.Snapshot(prog)

    /* serialize the trace output */
    if opt.Trace != nil {
        opt.Trace = &_SyncWriter{w: opt.Trace}
    }

    /* queue every distinct method */
    q := lane.NewQueue()
    dd := make(map[*ast.Method]struct{}, len(methods))
    for _, m := range methods {
        if _, ok := dd[m]; !ok {
            dd[m] = struct{}{}
            q.Enqueue(m)
        }
    }

    /* optimize them in parallel */
    pool := gopool.NewPool("dce", int32(opt.Workers), gopool.NewConfig())
    for !q.Empty() {
        m := q.Dequeue().(*ast.Method)
        wg.Add(1)
        pool.Go(func() {
            defer wg.Done()
            defer func() {
                if v := recover(); v != nil {
                    mu.Lock()
                    err = firstError(err, v)
                    mu.Unlock()
                }
            }()

            /* optimize the method */
            if _, ok := deadcode.Run(prog, oracle, m, opt); ok {
                mu.Lock()
                changed = true
                mu.Unlock()
            }
        })
    }

    /* wait for all the workers */
    wg.Wait()
    return
}

func firstError(err error, v interface{}) error {
    if err != nil {
        return err
    }
    switch e := v.(type) {
        case *ast.InternalError : return e
        case error              : return &ast.InternalError{Node: "<unknown>", Reason: e.Error()}
        default                 : return &ast.InternalError{Node: "<unknown>", Reason: fmt.Sprint(v)}
    }
}

type _SyncWriter struct {
    mu sync.Mutex
    w  io.Writer
}

func (self *_SyncWriter) Write(p []byte) (int, error) {
    self.mu.Lock()
    defer self.mu.Unlock()
    return self.w.Write(p)
}
