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

type _FuncVisitor struct {
    leave  func(n Node, ctx *Context)
    leaves map[Node]int
}

func (self *_FuncVisitor) Enter(Node, *Context) bool {
    return true
}

func (self *_FuncVisitor) Leave(n Node, ctx *Context) {
    if self.leaves != nil {
        self.leaves[n]++
    }
    if self.leave != nil {
        self.leave(n, ctx)
    }
}

func catchInternal(fn func()) (ret *InternalError) {
    defer func() {
        if v := recover(); v != nil {
            ret = v.(*InternalError)
        }
    }()
    fn()
    return nil
}

func walk(root Node, fn func(n Node, ctx *Context)) (*Walker, Node) {
    w := NewWalker(&_FuncVisitor{leave: fn})
    return w, w.Accept(root)
}

func TestWalker_ReplaceTypeMismatch(t *testing.T) {
    p := NewProgram()
    root := &Block{Stmts: []Stmt { &ReturnStmt{X: p.LiteralInt(1)} }}
    err := catchInternal(func() {
        walk(root, func(n Node, ctx *Context) {
            if _, ok := n.(*IntLit); ok {
                ctx.Replace(p.LiteralBool(true))
            }
        })
    })
    require.NotNil(t, err)
    require.Equal(t, "1", err.Node)
    require.Contains(t, err.Reason, "does not fit a slot of type int")
}

func TestWalker_ReplaceCategoryMismatch(t *testing.T) {
    p := NewProgram()
    x := &ExprStmt{X: p.LiteralInt(1)}
    err := catchInternal(func() {
        walk(&Block{Stmts: []Stmt { x }}, func(n Node, ctx *Context) {
            if n == x {
                ctx.Replace(p.LiteralInt(2))
            }
        })
    })
    require.NotNil(t, err)
    require.Contains(t, err.Reason, "does not fit a statement slot")
}

func TestWalker_RemoveMandatory(t *testing.T) {
    p := NewProgram()
    body := &ExprStmt{X: p.LiteralInt(1)}
    loop := &WhileStmt{Test: &ParamRef{Var: &Param{Ident: "p", Of: Boolean}}, Body: body}
    err := catchInternal(func() {
        walk(&Block{Stmts: []Stmt { loop }}, func(n Node, ctx *Context) {
            if n == body {
                require.False(t, ctx.CanRemove())
                ctx.Remove()
            }
        })
    })
    require.NotNil(t, err)
    require.Contains(t, err.Reason, "non-removable statement slot")
}

func TestWalker_MultipleMutations(t *testing.T) {
    p := NewProgram()
    x := &ExprStmt{X: p.LiteralInt(1)}
    err := catchInternal(func() {
        walk(&Block{Stmts: []Stmt { x }}, func(n Node, ctx *Context) {
            if n == x {
                ctx.Remove()
                ctx.Replace(new(Block))
            }
        })
    })
    require.NotNil(t, err)
    require.Equal(t, "multiple mutations requested", err.Reason)
    err = catchInternal(func() {
        walk(&Block{Stmts: []Stmt { x }}, func(n Node, ctx *Context) {
            if n == x {
                ctx.Replace(nil)
            }
        })
    })
    require.NotNil(t, err)
    require.Equal(t, "replacing with nil", err.Reason)
}

func TestWalker_ReplaceWithSelf(t *testing.T) {
    p := NewProgram()
    w, _ := walk(&Block{Stmts: []Stmt { &ReturnStmt{X: p.LiteralInt(1)} }}, func(n Node, ctx *Context) {
        ctx.Replace(n)
    })
    require.False(t, w.DidChange())
}

func TestWalker_RemoveFromList(t *testing.T) {
    p := NewProgram()
    drop := &ExprStmt{X: p.LiteralInt(1)}
    keep := &ReturnStmt{X: p.LiteralInt(2)}
    root := &Block{Stmts: []Stmt { drop, keep }}
    w, ret := walk(root, func(n Node, ctx *Context) {
        if n == drop {
            require.True(t, ctx.CanRemove())
            ctx.Remove()
        }
    })
    require.True(t, w.DidChange())
    require.Equal(t, root, ret)
    require.Equal(t, []Stmt { keep }, root.Stmts)
}

func TestWalker_RevisitReplacement(t *testing.T) {
    p := NewProgram()
    x := &ParamRef{Var: &Param{Ident: "x", Of: Int}}
    neg := &PrefixExpr{Op: OpNeg, Arg: p.LiteralInt(3)}
    root := &Block{Stmts: []Stmt { &ReturnStmt{X: x} }}
    v := &_FuncVisitor{leaves: make(map[Node]int)}
    v.leave = func(n Node, ctx *Context) {
        if n == x {
            require.Equal(t, Int, ctx.Required())
            require.Equal(t, x, ctx.Node())
            ctx.Replace(neg)
        }
    }
    w := NewWalker(v)
    w.Accept(root)
    require.True(t, w.DidChange())
    require.Equal(t, 1, v.leaves[neg])
    require.Equal(t, 1, v.leaves[neg.Arg])
    require.Equal(t, "{\n  return -3;\n}", Source(root))
}

func TestWalker_SeenReplacementNotRevisited(t *testing.T) {
    p := NewProgram()
    lhs := &ParamRef{Var: &Param{Ident: "x", Of: Int}}
    add := &BinaryExpr{Op: OpAdd, Lhs: lhs, Rhs: p.LiteralInt(0), Of: Int}
    root := &Block{Stmts: []Stmt { &ReturnStmt{X: add} }}
    v := &_FuncVisitor{leaves: make(map[Node]int)}
    v.leave = func(n Node, ctx *Context) {
        if n == add {
            ctx.Replace(lhs)
        }
    }
    NewWalker(v).Accept(root)
    require.Equal(t, 1, v.leaves[lhs])
    require.Equal(t, "{\n  return x;\n}", Source(root))
}

func TestWalker_AssignableExpr(t *testing.T) {
    p := NewProgram()
    require.True(t, AssignableExpr(p.LiteralInt(100), Byte))
    require.False(t, AssignableExpr(p.LiteralInt(200), Byte))
    require.True(t, AssignableExpr(p.LiteralInt(-32768), Short))
    require.False(t, AssignableExpr(p.LiteralInt(-1), Char))
    require.True(t, AssignableExpr(p.LiteralInt(65535), Char))
    require.False(t, AssignableExpr(p.LiteralLong(1), Int))
    require.True(t, AssignableExpr(p.LiteralInt(1), Long))
    require.True(t, AssignableExpr(p.LiteralNull(), p.TypeString()))
}
