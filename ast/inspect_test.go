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
    `testing`

    `github.com/stretchr/testify/require`
)

func TestInspect_PreOrder(t *testing.T) {
    a := &ParamRef{Var: &Param{Ident: "a", Of: Int}}
    b := &ParamRef{Var: &Param{Ident: "b", Of: Int}}
    c := &ParamRef{Var: &Param{Ident: "c", Of: Int}}
    mul := &BinaryExpr{Op: OpMul, Lhs: b, Rhs: c, Of: Int}
    add := &BinaryExpr{Op: OpAdd, Lhs: a, Rhs: mul, Of: Int}
    var order []Node
    Inspect(add, func(n Node) bool {
        order = append(order, n)
        return true
    })
    require.Equal(t, []Node { add, a, mul, b, c }, order)

    /* skipping the children */
    order = order[:0]
    Inspect(add, func(n Node) bool {
        order = append(order, n)
        return n != mul
    })
    require.Equal(t, []Node { add, a, mul }, order)
}

func TestInspect_Children(t *testing.T) {
    p := NewProgram()
    e := &LocalRef{Var: &Local{Ident: "e", Of: p.TypeObject()}}
    body := &Block{}
    handler := &Block{}
    try := &TryStmt{Body: body, Catches: []*Catch {{ Arg: e, Body: handler }}}
    require.Equal(t, []Node { body, e, handler }, Children(try))
    require.Empty(t, Children(&ReturnStmt{}))
    require.Len(t, Children(&ForStmt{Body: &Block{}}), 1)
    require.Len(t, Children(p), 2)

    /* unknown kinds are rejected */
    err := catchInternal(func() { Children(new(_Bogus)) })
    require.NotNil(t, err)
    require.Equal(t, "unknown node kind", err.Reason)
}
