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
    `testing`

    `github.com/cloudwego/dce/ast`
)

func TestVisitor_ConditionalOptimizations(t *testing.T) {
    fx := newFixture(t)
    b, b1 := fx.sf(fx.b), fx.sf(fx.b1)
    fx.optimize(body("return 3;"), ast.Int, ret(cond(fx.litb(true), fx.liti(3), fx.liti(4), ast.Int)))
    fx.optimize(body("return 4;"), ast.Int, ret(cond(fx.litb(false), fx.liti(3), fx.liti(4), ast.Int)))
    fx.optimize(body("return EntryPoint.b || EntryPoint.b1;"), ast.Boolean, ret(cond(b, fx.litb(true), b1, ast.Boolean)))
    b, b1 = fx.sf(fx.b), fx.sf(fx.b1)
    fx.optimize(body("return !EntryPoint.b && EntryPoint.b1;"), ast.Boolean, ret(cond(b, fx.litb(false), b1, ast.Boolean)))
    b, b1 = fx.sf(fx.b), fx.sf(fx.b1)
    fx.optimize(body("return !EntryPoint.b || EntryPoint.b1;"), ast.Boolean, ret(cond(b, b1, fx.litb(true), ast.Boolean)))
    b, b1 = fx.sf(fx.b), fx.sf(fx.b1)
    fx.optimize(body("return EntryPoint.b && EntryPoint.b1;"), ast.Boolean, ret(cond(b, b1, fx.litb(false), ast.Boolean)))
}

func TestVisitor_ConditionalNotBoolean(t *testing.T) {
    fx := newFixture(t)
    x := param("x", ast.Int)
    fx.unchanged(ast.Int, ret(cond(fx.sf(fx.b), x, fx.liti(1), ast.Int)))
}

func TestVisitor_IfOptimizations(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return 1;"), ast.Int,
        &ast.IfStmt{Test: fx.litb(true), Then: ret(fx.liti(1))},
        ret(fx.liti(0)),
    )
    fx.optimize(body("return 0;"), ast.Int,
        &ast.IfStmt{Test: fx.litb(false), Then: ret(fx.liti(1))},
        ret(fx.liti(0)),
    )
    fx.optimize(body("EntryPoint.test();", "return 0;"), ast.Int,
        &ast.IfStmt{Test: fx.call(fx.test), Then: block(), Else: block()},
        ret(fx.liti(0)),
    )
    fx.optimize(body("return 0;"), ast.Int,
        &ast.IfStmt{Test: param("p", ast.Boolean), Then: block(), Else: block()},
        ret(fx.liti(0)),
    )
    fx.optimize(body(), ast.Void,
        &ast.IfStmt{Test: fx.litb(true), Then: block(), Else: stmt(fx.call(fx.other))},
    )
    fx.optimize(body("EntryPoint.test();"), ast.Void,
        &ast.IfStmt{Test: fx.litb(false), Then: stmt(fx.call(fx.other)), Else: stmt(fx.call(fx.test))},
    )
}

func TestVisitor_DoOptimizations(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body(), ast.Void,
        &ast.DoStmt{Body: block(), Test: fx.litb(false)},
    )
    fx.optimize(body("++EntryPoint.i;"), ast.Void,
        &ast.DoStmt{Body: block(stmt(post(ast.OpInc, fx.sf(fx.i)))), Test: fx.litb(false)},
    )
    fx.unchanged(ast.Void,
        &ast.DoStmt{Body: block(brk()), Test: fx.litb(false)},
    )
    fx.unchanged(ast.Void,
        &ast.DoStmt{Body: block(&ast.IfStmt{Test: fx.sf(fx.b), Then: &ast.ContinueStmt{}}), Test: fx.litb(false)},
    )
}

func TestVisitor_LoopOptimizations(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return;"), ast.Void,
        &ast.WhileStmt{Test: fx.litb(false), Body: stmt(fx.call(fx.other))},
        ret(nil),
    )
    fx.optimize(body("EntryPoint.i = 0;"), ast.Void,
        &ast.ForStmt {
            Init : []ast.Stmt { stmt(asg(ast.OpAsg, fx.sf(fx.i), fx.liti(0))) },
            Test : fx.litb(false),
            Incr : []ast.Stmt { stmt(post(ast.OpInc, fx.sf(fx.i))) },
            Body : stmt(fx.call(fx.other)),
        },
    )
    fx.optimize(body("while (EntryPoint.b) {\n  }"), ast.Void,
        &ast.WhileStmt{Test: fx.sf(fx.b), Body: stmt(param("x", ast.Int))},
    )
}

func TestVisitor_SubtractFromZero(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return -EntryPoint.i;"), ast.Int, ret(bin(ast.OpSub, fx.liti(0), fx.sf(fx.i), ast.Int)))
    fx.optimize(body("return -EntryPoint.l;"), ast.Long, ret(bin(ast.OpSub, fx.litl(0), fx.sf(fx.l), ast.Long)))
    fx.unchanged(ast.Float, ret(bin(ast.OpSub, fx.litf(0), fx.sf(fx.f), ast.Float)))
    fx.unchanged(ast.Int, ret(bin(ast.OpSub, fx.liti(1), fx.sf(fx.i), ast.Int)))
}

func TestVisitor_DivideToShift(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return x >> 2;"), ast.Int, ret(bin(ast.OpDiv, param("x", ast.Int), fx.liti(4), ast.Int)))
    fx.optimize(body("return y >> 1;"), ast.Long, ret(bin(ast.OpDiv, param("y", ast.Long), fx.litl(2), ast.Long)))
    fx.optimize(body("return x;"), ast.Int, ret(bin(ast.OpDiv, param("x", ast.Int), fx.liti(1), ast.Int)))
    fx.optimize(body("return -x;"), ast.Int, ret(bin(ast.OpDiv, param("x", ast.Int), fx.liti(-1), ast.Int)))
    fx.optimize(body("x >>= 3;"), ast.Void, stmt(asg(ast.OpAsgDiv, param("x", ast.Int), fx.liti(8))))
    fx.optimize(body(), ast.Void, stmt(asg(ast.OpAsgDiv, param("x", ast.Int), fx.liti(1))))
    fx.unchanged(ast.Int, ret(bin(ast.OpDiv, param("x", ast.Int), fx.liti(3), ast.Int)))
    fx.unchanged(ast.Int, ret(bin(ast.OpDiv, param("x", ast.Int), fx.liti(0), ast.Int)))
    fx.unchanged(ast.Void, stmt(asg(ast.OpAsgDiv, param("x", ast.Int), fx.liti(-1))))
    fx.unchanged(ast.Double, ret(bin(ast.OpDiv, param("d", ast.Double), fx.prog.LiteralDouble(2), ast.Double)))

    /* narrower dividends keep the promoted quotient */
    ts := fx.prog.TypeString()
    fx.unchanged(ts, ret(bin(ast.OpAdd, fx.lits(""), bin(ast.OpDiv, param("c", ast.Char), fx.liti(1), ast.Int), ts)))
    fx.unchanged(ast.Long, ret(bin(ast.OpDiv, param("x", ast.Int), fx.litl(1), ast.Long)))
    fx.optimize(body(), ast.Void, stmt(asg(ast.OpAsgDiv, param("c", ast.Char), fx.liti(1))))
    fx.optimize(body("return -c;"), ast.Int, ret(bin(ast.OpDiv, param("c", ast.Char), fx.liti(-1), ast.Int)))
}

func TestVisitor_ShortCircuit(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return false;"), ast.Boolean, ret(bin(ast.OpAnd, param("p", ast.Boolean), fx.litb(false), ast.Boolean)))
    fx.optimize(body("return p;"), ast.Boolean, ret(bin(ast.OpAnd, fx.litb(true), param("p", ast.Boolean), ast.Boolean)))
    fx.optimize(body("return false;"), ast.Boolean, ret(bin(ast.OpAnd, fx.litb(false), fx.call(fx.test), ast.Boolean)))
    fx.optimize(body("return p;"), ast.Boolean, ret(bin(ast.OpAnd, param("p", ast.Boolean), fx.litb(true), ast.Boolean)))
    fx.optimize(body("return p;"), ast.Boolean, ret(bin(ast.OpOr, fx.litb(false), param("p", ast.Boolean), ast.Boolean)))
    fx.optimize(body("return true;"), ast.Boolean, ret(bin(ast.OpOr, fx.litb(true), fx.call(fx.test), ast.Boolean)))
    fx.optimize(body("return true;"), ast.Boolean, ret(bin(ast.OpOr, param("p", ast.Boolean), fx.litb(true), ast.Boolean)))
    fx.unchanged(ast.Boolean, ret(bin(ast.OpAnd, fx.call(fx.test), fx.litb(false), ast.Boolean)))
    fx.unchanged(ast.Boolean, ret(bin(ast.OpOr, fx.call(fx.test), fx.litb(true), ast.Boolean)))
}

func TestVisitor_NullCompare(t *testing.T) {
    fx := newFixture(t)
    null := fx.prog.LiteralNull()
    fx.optimize(body("return true;"), ast.Boolean, ret(bin(ast.OpEq, null, null, ast.Boolean)))
    fx.optimize(body("return false;"), ast.Boolean, ret(bin(ast.OpNeq, null, null, ast.Boolean)))
}

func TestVisitor_ConcatFold(t *testing.T) {
    fx := newFixture(t)
    ts := fx.prog.TypeString()
    fx.optimize(body(`return "a1";`), ts, ret(bin(ast.OpAdd, fx.lits("a"), fx.liti(1), ts)))
    fx.optimize(body(`return "ab";`), ts, ret(bin(ast.OpAdd, fx.lits("a"), fx.litc('b'), ts)))
    fx.optimize(body(`return "x5";`), ts, ret(bin(ast.OpAdd, fx.lits("x"), fx.litl(5), ts)))
    fx.optimize(body(`return "true!";`), ts, ret(bin(ast.OpAdd, fx.litb(true), fx.lits("!"), ts)))
    fx.optimize(body(`return "abc";`), ts, ret(bin(ast.OpAdd, bin(ast.OpAdd, fx.lits("a"), fx.lits("b"), ts), fx.lits("c"), ts)))
    fx.unchanged(ts, ret(bin(ast.OpAdd, fx.lits("a"), param("x", ast.Int), ts)))

    /* half of a surrogate pair has no string form */
    fx.unchanged(ts, ret(bin(ast.OpAdd, fx.lits("a"), fx.litc(0xd83d), ts)))
    fx.unchanged(ts, ret(bin(ast.OpAdd, fx.litc(0xde00), fx.lits("a"), ts)))
}

func TestVisitor_NotFold(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return false;"), ast.Boolean, ret(pre(ast.OpNot, fx.litb(true))))
    fx.optimize(body("return p;"), ast.Boolean, ret(pre(ast.OpNot, pre(ast.OpNot, param("p", ast.Boolean)))))
    fx.optimize(body("return x != 1;"), ast.Boolean, ret(pre(ast.OpNot, bin(ast.OpEq, param("x", ast.Int), fx.liti(1), ast.Boolean))))
    fx.optimize(body("return x >= 1;"), ast.Boolean, ret(pre(ast.OpNot, bin(ast.OpLt, param("x", ast.Int), fx.liti(1), ast.Boolean))))
    fx.unchanged(ast.Boolean, ret(pre(ast.OpNot, bin(ast.OpAnd, param("p", ast.Boolean), param("q", ast.Boolean), ast.Boolean))))
}

func TestVisitor_PostfixToPrefix(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("--EntryPoint.i;"), ast.Void, stmt(post(ast.OpDec, fx.sf(fx.i))))
    fx.unchanged(ast.Int, ret(post(ast.OpInc, fx.sf(fx.i))))
}

func TestVisitor_ConstantVariables(t *testing.T) {
    fx := newFixture(t)
    y := &ast.Local{Ident: "y", Of: ast.Int, Const: fx.prog.LiteralInt(5)}
    fx.optimize(body("int y = 5;", "return 5;"), ast.Int,
        &ast.DeclStmt{Var: &ast.LocalRef{Var: y}, Init: fx.liti(5)},
        ret(&ast.LocalRef{Var: y}),
    )
    fx.optimize(body("return 7;"), ast.Int, ret(fx.sf(fx.k)))
    fx.optimize(body(), ast.Void, stmt(fx.sf(fx.k)))

    /* assignment targets are never folded */
    ref := func() *ast.LocalRef { return &ast.LocalRef{Var: y} }
    fx.unchanged(ast.Void, stmt(asg(ast.OpAsg, ref(), fx.liti(3))))
    fx.unchanged(ast.Void, stmt(asg(ast.OpAsgAdd, ref(), fx.liti(1))))
    fx.unchanged(ast.Void, stmt(pre(ast.OpInc, ref())))
    fx.optimize(body("y >>= 2;"), ast.Void, stmt(asg(ast.OpAsgDiv, ref(), fx.liti(4))))
    fx.optimize(body("--y;"), ast.Void, stmt(post(ast.OpDec, ref())))
    fx.optimize(body("y += 5;"), ast.Void, stmt(asg(ast.OpAsgAdd, ref(), ref())))
}

func TestVisitor_FieldFold(t *testing.T) {
    fx := newFixture(t)
    foo := fx.prog.NewClass("Foo", fx.prog.TypeObject())
    get := fx.prog.AddMethod(fx.entry, "getFoo", true, foo)
    v := fx.prog.AddField(foo, "v", ast.Int, false)
    v.Final = true
    v.Const = fx.prog.LiteralInt(3)
    fx.optimize(body("return (EntryPoint.getFoo(), 3);"), ast.Int, ret(&ast.FieldRef{Instance: fx.call(get), Var: v}))
    fx.optimize(body("EntryPoint.getFoo();"), ast.Void, stmt(&ast.FieldRef{Instance: fx.call(get), Var: v}))

    /* not assignable to the field type */
    w := fx.prog.AddField(foo, "w", ast.Int, false)
    w.Final = true
    w.Const = fx.prog.LiteralString("nope")
    fx.unchanged(ast.Int, ret(&ast.FieldRef{Instance: fx.call(get), Var: w}))
}

func TestVisitor_IgnoredFieldRead(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body(), ast.Void, stmt(fx.sf(fx.i)))

    /* reading a field of a class with a static initializer triggers it */
    other := fx.prog.NewClass("Other", fx.prog.TypeObject())
    y := fx.prog.AddField(other, "y", ast.Int, true)
    other.Clinit().Body.Stmts = []ast.Stmt { stmt(asg(ast.OpAsg, fx.sf(y), fx.liti(1))) }
    fx.optimize(body("Other.$clinit();"), ast.Void, stmt(fx.sf(y)))
    fx.unchanged(ast.Int, ret(fx.sf(y)))
}

func TestVisitor_ClinitElision(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body(), ast.Void, stmt(fx.prog.ClinitCall(fx.entry, ast.SourceInfo{})))

    /* a non-empty initializer must run */
    other := fx.prog.NewClass("Other", fx.prog.TypeObject())
    other.Clinit().Body.Stmts = []ast.Stmt { stmt(fx.call(fx.other)) }
    fx.unchanged(ast.Void, stmt(fx.prog.ClinitCall(other, ast.SourceInfo{})))

    /* initializing a class initializes its super class */
    sub := fx.prog.NewClass("Sub", other)
    fx.unchanged(ast.Void, stmt(fx.prog.ClinitCall(sub, ast.SourceInfo{})))
}

func TestVisitor_MultiFlatten(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("return (EntryPoint.test(), 7);"), ast.Int,
        ret(multi(param("x", ast.Int), fx.call(fx.test), fx.liti(7))),
    )
    fx.optimize(body("return (EntryPoint.test(), EntryPoint.other(), 1);"), ast.Int,
        ret(multi(multi(fx.call(fx.test), fx.call(fx.other)), fx.liti(1))),
    )
    fx.optimize(body("return 1;"), ast.Int,
        ret(multi(fx.liti(0), param("x", ast.Int), fx.liti(1))),
    )
    fx.optimize(body("EntryPoint.other();"), ast.Void,
        stmt(multi(fx.call(fx.other), param("x", ast.Int))),
    )
}

func TestVisitor_BlockFlatten(t *testing.T) {
    fx := newFixture(t)
    fx.optimize(body("EntryPoint.other();", "EntryPoint.test();"), ast.Void,
        block(stmt(fx.call(fx.other)), block(stmt(fx.call(fx.test)))),
    )

    /* blocks declaring locals keep their scope */
    y := &ast.Local{Ident: "y", Of: ast.Boolean}
    fx.unchanged(ast.Void,
        block(&ast.DeclStmt{Var: &ast.LocalRef{Var: y}, Init: fx.call(fx.test)}),
        stmt(fx.call(fx.other)),
    )
}

func TestVisitor_Unreachable(t *testing.T) {
    fx := newFixture(t)
    p := param("p", ast.Boolean)
    fx.optimize(body("return 1;"), ast.Int,
        ret(fx.liti(1)),
        stmt(fx.call(fx.other)),
        ret(fx.liti(2)),
    )
    fx.optimize(body("if (p) return 1; else return 2;"), ast.Int,
        &ast.IfStmt{Test: p, Then: ret(fx.liti(1)), Else: ret(fx.liti(2))},
        stmt(fx.call(fx.other)),
        ret(fx.liti(3)),
    )
    fx.optimize(body("throw null;"), ast.Void,
        &ast.ThrowStmt{X: fx.prog.LiteralNull()},
        stmt(fx.call(fx.other)),
    )
    fx.unchanged(ast.Int,
        &ast.IfStmt{Test: param("q", ast.Boolean), Then: ret(fx.liti(1))},
        ret(fx.liti(2)),
    )
}
