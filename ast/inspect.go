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

package ast

import (
    `github.com/oleiade/lane`
)

// Children returns the direct children of n in evaluation order. Absent
// optional children are omitted.
func Children(n Node) []Node {
    var ret []Node
    add := func(c Node) {
        if c != nil {
            ret = append(ret, c)
        }
    }

    /* expand every node kind */
    switch v := n.(type) {
        case *Program: {
            for _, c := range v.Classes {
                ret = append(ret, c)
            }
        }

        case *ClassType: {
            for _, m := range v.Methods {
                ret = append(ret, m)
            }
        }

        case *Method: {
            if v.Body != nil {
                ret = append(ret, v.Body)
            }
        }

        case *Block: {
            for _, s := range v.Stmts {
                add(s)
            }
        }

        case *TryStmt: {
            ret = append(ret, v.Body)
            for _, c := range v.Catches {
                ret = append(ret, c.Arg, c.Body)
            }
            if v.Finally != nil {
                ret = append(ret, v.Finally)
            }
        }

        case *ForStmt: {
            for _, s := range v.Init {
                add(s)
            }
            add(v.Test)
            for _, s := range v.Incr {
                add(s)
            }
            add(v.Body)
        }

        case *MethodCall: {
            add(v.Instance)
            for _, e := range v.Args {
                add(e)
            }
        }

        case *MultiExpr: {
            for _, e := range v.Exprs {
                add(e)
            }
        }

        case *SwitchStmt   : add(v.X); ret = append(ret, v.Body)
        case *FieldRef     : add(v.Instance)
        case *BinaryExpr   : add(v.Lhs); add(v.Rhs)
        case *PrefixExpr   : add(v.Arg)
        case *PostfixExpr  : add(v.Arg)
        case *Conditional  : add(v.Test); add(v.Then); add(v.Else)
        case *ExprStmt     : add(v.X)
        case *DeclStmt     : add(v.Var); add(v.Init)
        case *IfStmt       : add(v.Test); add(v.Then); add(v.Else)
        case *WhileStmt    : add(v.Test); add(v.Body)
        case *DoStmt       : add(v.Body); add(v.Test)
        case *CaseStmt     : add(v.X)
        case *ReturnStmt   : add(v.X)
        case *ThrowStmt    : add(v.X)
        case Literal       : break
        case *LocalRef     : break
        case *ParamRef     : break
        case *BreakStmt    : break
        case *ContinueStmt : break
        default            : panic(NewInternalError(n, "unknown node kind"))
    }
    return ret
}

// Inspect walks the tree rooted at n in pre-order without modifying it. If fn
// returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
    st := lane.NewStack()
    st.Push(n)

    /* iterative pre-order, children are pushed in reverse */
    for !st.Empty() {
        p := st.Pop().(Node)
        if !fn(p) {
            continue
        }

        /* schedule the children */
        cc := Children(p)
        for i := len(cc) - 1; i >= 0; i-- {
            st.Push(cc[i])
        }
    }
}
