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
    `fmt`
)

// Visitor receives the callbacks of a Walker. Enter is called before the
// children are walked, returning false skips them. Leave is always called,
// and is where the context is expected to be mutated.
type Visitor interface {
    Enter(n Node, ctx *Context) bool
    Leave(n Node, ctx *Context)
}

type _SlotKind uint8

const (
    _S_expr _SlotKind = iota
    _S_ref
    _S_stmt
    _S_block
    _S_fixed
)

func (self _SlotKind) String() string {
    switch self {
        case _S_expr  : return "expression"
        case _S_ref   : return "variable reference"
        case _S_stmt  : return "statement"
        case _S_block : return "block"
        case _S_fixed : return "fixed"
        default       : return fmt.Sprintf("_SlotKind(%d)", self)
    }
}

type _Slot struct {
    kind      _SlotKind
    typ       Type
    removable bool
}

// Context describes the slot a node is being visited in, and records the
// mutation requested for it. At most one mutation may be requested, it is
// applied by the parent after Leave returns.
type Context struct {
    _Slot
    node    Node
    repl    Node
    removed bool
}

// Node returns the node occupying the slot.
func (self *Context) Node() Node {
    return self.node
}

// Required returns the static type the slot requires, nil if any type will
// do (or the slot does not hold an expression).
func (self *Context) Required() Type {
    return self.typ
}

// CanRemove reports whether the node may be deleted from the slot outright.
func (self *Context) CanRemove() bool {
    return self.removable
}

// Replace requests the slot to be filled by n instead. Replacing a node with
// itself does nothing. It panics if n does not fit the slot.
func (self *Context) Replace(n Node) {
    if n == nil {
        panic(NewInternalError(self.node, "replacing with nil"))
    } else if n == self.node {
        return
    } else if self.repl != nil || self.removed {
        panic(NewInternalError(self.node, "multiple mutations requested"))
    } else if err := self.check(n); err != "" {
        panic(NewInternalError(self.node, err))
    } else {
        self.repl = n
    }
}

// Remove requests the node to be deleted. It panics if the slot is not
// removable.
func (self *Context) Remove() {
    if !self.removable {
        panic(NewInternalError(self.node, "removing from a non-removable " + self.kind.String() + " slot"))
    } else if self.repl != nil || self.removed {
        panic(NewInternalError(self.node, "multiple mutations requested"))
    } else {
        self.removed = true
    }
}

func (self *Context) check(n Node) string {
    switch self.kind {
        case _S_expr: {
            if e, ok := n.(Expr); !ok {
                return fmt.Sprintf("%T does not fit an expression slot", n)
            } else if !AssignableExpr(e, self.typ) {
                return fmt.Sprintf("type %s does not fit a slot of type %s", e.Type(), self.typ)
            } else {
                return ""
            }
        }

        case _S_ref: {
            if _, ok := n.(VarRef); !ok {
                return fmt.Sprintf("%T does not fit a variable reference slot", n)
            } else {
                return ""
            }
        }

        case _S_stmt: {
            if _, ok := n.(Stmt); !ok {
                return fmt.Sprintf("%T does not fit a statement slot", n)
            } else {
                return ""
            }
        }

        case _S_block: {
            if _, ok := n.(*Block); !ok {
                return fmt.Sprintf("%T does not fit a block slot", n)
            } else {
                return ""
            }
        }

        default: {
            return "node cannot be replaced"
        }
    }
}

// AssignableExpr is Assignable with the constant narrowing of int literals
// into byte, short and char slots.
func AssignableExpr(e Expr, to Type) bool {
    if Assignable(e.Type(), to) {
        return true
    }

    /* only int constants may be narrowed */
    v, ok := e.(*IntLit)
    if !ok {
        return false
    }

    /* must be representable in the target type */
    switch to.Kind() {
        case K_byte  : return v.v >= -128 && v.v <= 127
        case K_short : return v.v >= -32768 && v.v <= 32767
        case K_char  : return v.v >= 0 && v.v <= 65535
        default      : return false
    }
}

// Walker drives a Visitor over a tree, applying the mutations it requests.
// A node that replaces another one is walked in the same slot if the walker
// has not seen it yet, so rules chain within a single walk.
type Walker struct {
    v       Visitor
    seen    map[Node]struct{}
    changed bool
}

func NewWalker(v Visitor) *Walker {
    return &Walker {
        v    : v,
        seen : make(map[Node]struct{}),
    }
}

// DidChange reports whether any mutation happened during the walk.
func (self *Walker) DidChange() bool {
    return self.changed
}

// MadeChanges records a change the visitor made in place, such as editing
// the statement list of the block being left.
func (self *Walker) MadeChanges() {
    self.changed = true
}

// Accept walks the tree rooted at n and returns the new root, which is nil
// only if the visitor removed a root that was given as removable.
func (self *Walker) Accept(n Node) Node {
    switch v := n.(type) {
        case *Block : return self.visit(v, _Slot{kind: _S_block})
        case Stmt   : return self.visit(v, _Slot{kind: _S_stmt})
        case Expr   : return self.visit(v, _Slot{kind: _S_expr, typ: v.Type()})
        default     : return self.visit(n, _Slot{kind: _S_fixed})
    }
}

func (self *Walker) isSeen(n Node) bool {
    _, ok := self.seen[n]
    return ok
}

func (self *Walker) visit(n Node, slot _Slot) Node {
    for {
        ctx := &Context{_Slot: slot, node: n}
        self.seen[n] = struct{}{}

        /* walk the children unless told otherwise */
        if self.v.Enter(n, ctx) {
            self.children(n)
        }

        /* post-order callback */
        self.v.Leave(n, ctx)

        /* apply the requested mutation */
        if ctx.removed {
            self.changed = true
            return nil
        } else if ctx.repl == nil {
            return n
        }

        /* walk the replacement in the same slot if it is new */
        self.changed = true
        n = ctx.repl
        if self.isSeen(n) {
            return n
        }
    }
}

func (self *Walker) expr(e Expr) Expr {
    if e == nil || self.isSeen(e) {
        return e
    } else {
        return self.visit(e, _Slot{kind: _S_expr, typ: e.Type()}).(Expr)
    }
}

func (self *Walker) value(e Expr, typ Type) Expr {
    if e == nil || self.isSeen(e) {
        return e
    } else {
        return self.visit(e, _Slot{kind: _S_expr, typ: typ}).(Expr)
    }
}

func (self *Walker) ref(e VarRef) VarRef {
    if self.isSeen(e) {
        return e
    } else {
        return self.visit(e, _Slot{kind: _S_ref}).(VarRef)
    }
}

func (self *Walker) target(e Expr, assign bool) Expr {
    if r, ok := e.(VarRef); ok && assign {
        return self.ref(r)
    } else {
        return self.expr(e)
    }
}

func (self *Walker) stmt(s Stmt, removable bool) Stmt {
    if s == nil || self.isSeen(s) {
        return s
    } else if r := self.visit(s, _Slot{kind: _S_stmt, removable: removable}); r == nil {
        return nil
    } else {
        return r.(Stmt)
    }
}

func (self *Walker) block(b *Block, removable bool) *Block {
    if b == nil || self.isSeen(b) {
        return b
    } else if r := self.visit(b, _Slot{kind: _S_block, removable: removable}); r == nil {
        return nil
    } else {
        return r.(*Block)
    }
}

func (self *Walker) stmts(ss []Stmt) []Stmt {
    ret := ss[:0]
    for _, s := range ss {
        if r := self.stmt(s, true); r != nil {
            ret = append(ret, r)
        }
    }
    return ret
}

func (self *Walker) children(n Node) {
    switch v := n.(type) {
        case *Program: {
            for _, c := range v.Classes {
                if !self.isSeen(c) {
                    self.visit(c, _Slot{kind: _S_fixed})
                }
            }
        }

        case *ClassType: {
            for _, m := range v.Methods {
                if !self.isSeen(m) {
                    self.visit(m, _Slot{kind: _S_fixed})
                }
            }
        }

        case *Method: {
            v.Body = self.block(v.Body, false)
        }

        case *FieldRef: {
            v.Instance = self.expr(v.Instance)
        }

        case *BinaryExpr: {
            v.Lhs = self.target(v.Lhs, v.Op.IsAssignment())
            v.Rhs = self.expr(v.Rhs)
        }

        case *PrefixExpr: {
            v.Arg = self.target(v.Arg, v.Op.IsModifying())
        }

        case *PostfixExpr: {
            v.Arg = self.target(v.Arg, v.Op.IsModifying())
        }

        case *Conditional: {
            v.Test = self.expr(v.Test)
            v.Then = self.expr(v.Then)
            v.Else = self.expr(v.Else)
        }

        case *MethodCall: {
            v.Instance = self.expr(v.Instance)
            for i, x := range v.Args {
                v.Args[i] = self.expr(x)
            }
        }

        case *MultiExpr: {
            for i, x := range v.Exprs {
                if i == len(v.Exprs) - 1 {
                    v.Exprs[i] = self.expr(x)
                } else {
                    v.Exprs[i] = self.value(x, nil)
                }
            }
        }

        case *Block: {
            v.Stmts = self.stmts(v.Stmts)
        }

        case *ExprStmt: {
            v.X = self.value(v.X, nil)
        }

        case *DeclStmt: {
            v.Var = self.ref(v.Var)
            v.Init = self.value(v.Init, v.Var.Type())
        }

        case *IfStmt: {
            v.Test = self.expr(v.Test)
            v.Then = self.stmt(v.Then, true)
            v.Else = self.stmt(v.Else, true)
        }

        case *WhileStmt: {
            v.Test = self.expr(v.Test)
            v.Body = self.stmt(v.Body, false)
        }

        case *DoStmt: {
            v.Body = self.stmt(v.Body, false)
            v.Test = self.expr(v.Test)
        }

        case *ForStmt: {
            v.Init = self.stmts(v.Init)
            v.Test = self.expr(v.Test)
            v.Incr = self.stmts(v.Incr)
            v.Body = self.stmt(v.Body, false)
        }

        case *SwitchStmt: {
            v.X = self.expr(v.X)
            v.Body = self.block(v.Body, false)
        }

        case *TryStmt: {
            v.Body = self.block(v.Body, false)
            for _, c := range v.Catches {
                c.Body = self.block(c.Body, false)
            }
            v.Finally = self.block(v.Finally, true)
        }

        case *CaseStmt     : v.X = self.expr(v.X)
        case *ReturnStmt   : v.X = self.expr(v.X)
        case *ThrowStmt    : v.X = self.expr(v.X)
        case Literal       : break
        case *LocalRef     : break
        case *ParamRef     : break
        case *BreakStmt    : break
        case *ContinueStmt : break
        default            : panic(NewInternalError(n, "unknown node kind"))
    }
}
