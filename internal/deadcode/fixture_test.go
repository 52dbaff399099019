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
    `strings`
    `testing`

    `github.com/davecgh/go-spew/spew`
    `github.com/stretchr/testify/require`

    `github.com/cloudwego/dce/ast`
    `github.com/cloudwego/dce/internal/opts`
)

type fixture struct {
    t     *testing.T
    prog  *ast.Program
    entry *ast.ClassType
    b     *ast.Field
    b1    *ast.Field
    i     *ast.Field
    l     *ast.Field
    f     *ast.Field
    k     *ast.Field
    test  *ast.Method
    other *ast.Method
}

// newFixture declares:
//
//     class EntryPoint {
//         static boolean b, b1;
//         static int i;
//         static long l;
//         static float f;
//         static final int K = 7;
//         static boolean test();
//         static void other();
//     }
//
func newFixture(t *testing.T) *fixture {
    p := ast.NewProgram()
    c := p.NewClass("EntryPoint", p.TypeObject())
    ret := &fixture {
        t     : t,
        prog  : p,
        entry : c,
        b     : p.AddField(c, "b", ast.Boolean, true),
        b1    : p.AddField(c, "b1", ast.Boolean, true),
        i     : p.AddField(c, "i", ast.Int, true),
        l     : p.AddField(c, "l", ast.Long, true),
        f     : p.AddField(c, "f", ast.Float, true),
        k     : p.AddField(c, "K", ast.Int, true),
        test  : p.AddMethod(c, "test", true, ast.Boolean),
        other : p.AddMethod(c, "other", true, ast.Void),
    }
    ret.k.Final = true
    ret.k.Const = p.LiteralInt(7)
    return ret
}

func (self *fixture) method(rt ast.Type, stmts ...ast.Stmt) *ast.Method {
    m := self.prog.AddMethod(self.entry, "onModuleLoad", true, rt)
    m.Body.Stmts = stmts
    return m
}

// optimize runs the optimizer over a fresh method, checks the result, then
// checks that a second run finds nothing to do.
func (self *fixture) optimize(expect string, rt ast.Type, stmts ...ast.Stmt) *ast.Method {
    m := self.method(rt, stmts...)
    before := ast.Source(m.Body)
    _, changed := Exec(self.prog, m, opts.Options{})
    after := ast.Source(m.Body)
    require.Equal(self.t, expect, after, "before:\n%s", before)
    require.Equal(self.t, before != after, changed, "changed flag mismatch:\n%s", after)
    _, changed = Exec(self.prog, m, opts.Options{})
    require.False(self.t, changed, "second run is not a fixpoint:\n%s", spew.Sdump(m.Body))
    require.Equal(self.t, after, ast.Source(m.Body))
    return m
}

// unchanged runs the optimizer and requires it to leave the method alone.
func (self *fixture) unchanged(rt ast.Type, stmts ...ast.Stmt) {
    m := self.method(rt, stmts...)
    before := ast.Source(m.Body)
    _, changed := Exec(self.prog, m, opts.Options{})
    require.False(self.t, changed, "unexpected change:\n%s", ast.Source(m.Body))
    require.Equal(self.t, before, ast.Source(m.Body))
}

// body formats the source of a block from its lines, nested lines carry
// their own extra indentation.
func body(lines ...string) string {
    if len(lines) == 0 {
        return "{\n}"
    } else {
        return "{\n  " + strings.Join(lines, "\n  ") + "\n}"
    }
}

/** Tree Constructors **/

func (self *fixture) sf(f *ast.Field) *ast.FieldRef {
    return &ast.FieldRef{Var: f}
}

func (self *fixture) call(m *ast.Method, args ...ast.Expr) *ast.MethodCall {
    return &ast.MethodCall{Target: m, Args: args}
}

func (self *fixture) litb(v bool)    ast.Expr { return self.prog.LiteralBool(v) }
func (self *fixture) liti(v int32)   ast.Expr { return self.prog.LiteralInt(v) }
func (self *fixture) litl(v int64)   ast.Expr { return self.prog.LiteralLong(v) }
func (self *fixture) lits(v string)  ast.Expr { return self.prog.LiteralString(v) }
func (self *fixture) litc(v uint16)  ast.Expr { return self.prog.LiteralChar(v) }
func (self *fixture) litf(v float32) ast.Expr { return self.prog.LiteralFloat(v) }

func param(name string, t ast.Type) *ast.ParamRef {
    return &ast.ParamRef{Var: &ast.Param{Ident: name, Of: t}}
}

func bin(op ast.BinaryOp, lhs ast.Expr, rhs ast.Expr, t ast.Type) *ast.BinaryExpr {
    return &ast.BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs, Of: t}
}

func asg(op ast.BinaryOp, lhs ast.Expr, rhs ast.Expr) *ast.BinaryExpr {
    return &ast.BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs, Of: lhs.Type()}
}

func cond(test ast.Expr, then ast.Expr, elze ast.Expr, t ast.Type) *ast.Conditional {
    return &ast.Conditional{Test: test, Then: then, Else: elze, Of: t}
}

func pre(op ast.UnaryOp, x ast.Expr) *ast.PrefixExpr {
    return &ast.PrefixExpr{Op: op, Arg: x}
}

func post(op ast.UnaryOp, x ast.Expr) *ast.PostfixExpr {
    return &ast.PostfixExpr{Op: op, Arg: x}
}

func multi(exprs ...ast.Expr) *ast.MultiExpr {
    return &ast.MultiExpr{Exprs: exprs}
}

func block(stmts ...ast.Stmt) *ast.Block {
    return &ast.Block{Stmts: stmts}
}

func stmt(x ast.Expr) *ast.ExprStmt {
    return ast.MakeStatement(x)
}

func ret(x ast.Expr) *ast.ReturnStmt {
    return &ast.ReturnStmt{X: x}
}

func brk() *ast.BreakStmt {
    return new(ast.BreakStmt)
}

func label(x ast.Expr) *ast.CaseStmt {
    return &ast.CaseStmt{X: x}
}

func switchOf(x ast.Expr, stmts ...ast.Stmt) *ast.SwitchStmt {
    return &ast.SwitchStmt{X: x, Body: block(stmts...)}
}
