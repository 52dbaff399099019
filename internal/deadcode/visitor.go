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
    `io`
    `math/bits`
    `strings`

    `github.com/cloudwego/dce/ast`
)

const (
    _MaxTraceSource = 80
)

// Visitor performs a single dead code elimination pass.
type Visitor struct {
    prog     *ast.Program
    oracle   ast.TypeOracle
    walker   *ast.Walker
    class    *ast.ClassType
    trace    io.Writer
    pass     int
    lvalues  map[ast.Expr]struct{}
    ignoring map[ast.Expr]struct{}
    switches map[*ast.Block]struct{}
}

func newVisitor(prog *ast.Program, oracle ast.TypeOracle, trace io.Writer, pass int) *Visitor {
    return &Visitor {
        prog     : prog,
        oracle   : oracle,
        trace    : trace,
        pass     : pass,
        lvalues  : make(map[ast.Expr]struct{}),
        ignoring : make(map[ast.Expr]struct{}),
        switches : make(map[*ast.Block]struct{}),
    }
}

/** Rule Bookkeeping **/

func oneline(n ast.Node) string {
    if n == nil {
        return "<removed>"
    }

    /* collapse all the whitespaces */
    src := strings.Join(strings.Fields(ast.Source(n)), " ")
    if len(src) > _MaxTraceSource {
        src = src[:_MaxTraceSource - 3] + "..."
    }
    return src
}

func (self *Visitor) fire(r Rule, before ast.Node, after ast.Node) {
    r.hit()
    if self.trace != nil {
        fmt.Fprintf(self.trace, "pass %d: %s: %s => %s\n", self.pass, r, oneline(before), oneline(after))
    }
}

func (self *Visitor) replace(ctx *ast.Context, r Rule, n ast.Node) {
    self.fire(r, ctx.Node(), n)
    ctx.Replace(n)
}

// removeMe removes the statement, or empties it if the slot is mandatory.
func (self *Visitor) removeMe(ctx *ast.Context, r Rule) {
    if ctx.CanRemove() {
        self.fire(r, ctx.Node(), nil)
        ctx.Remove()
    } else {
        self.replace(ctx, r, &ast.Block{SourceInfo: ast.InfoOf(ctx.Node())})
    }
}

// modified records an in-place change to the node being left.
func (self *Visitor) modified(r Rule, n ast.Node) {
    self.fire(r, n, n)
    self.walker.MadeChanges()
}

func fits(ctx *ast.Context, e ast.Expr) bool {
    t := ctx.Required()
    return t == nil || ast.AssignableExpr(e, t)
}

func (self *Visitor) isLvalue(e ast.Expr) bool {
    _, ok := self.lvalues[e]
    return ok
}

func (self *Visitor) isIgnored(e ast.Expr) bool {
    _, ok := self.ignoring[e]
    return ok
}

/** Visitor Interface **/

func (self *Visitor) Enter(n ast.Node, _ *ast.Context) bool {
    switch v := n.(type) {
        case *ast.ClassType: {
            self.class = v
        }

        case *ast.Method: {
            self.class = v.Enclosing
        }

        case *ast.BinaryExpr: {
            if v.Op.IsAssignment() {
                self.lvalues[v.Lhs] = struct{}{}
            }
        }

        case *ast.PrefixExpr: {
            if v.Op.IsModifying() {
                self.lvalues[v.Arg] = struct{}{}
            }
        }

        case *ast.PostfixExpr: {
            if v.Op.IsModifying() {
                self.lvalues[v.Arg] = struct{}{}
            }
        }

        case *ast.DeclStmt: {
            self.lvalues[v.Var] = struct{}{}
        }

        case *ast.ExprStmt: {
            self.ignoring[v.X] = struct{}{}
        }

        case *ast.MultiExpr: {
            for i := 0; i < len(v.Exprs) - 1; i++ {
                self.ignoring[v.Exprs[i]] = struct{}{}
            }
        }

        case *ast.SwitchStmt: {
            self.switches[v.Body] = struct{}{}
        }
    }
    return true
}

func (self *Visitor) Leave(n ast.Node, ctx *ast.Context) {
    switch v := n.(type) {
        case *ast.ClassType    : self.class = nil
        case *ast.BinaryExpr   : self.leaveBinary(v, ctx)
        case *ast.Block        : self.leaveBlock(v, ctx)
        case *ast.Conditional  : self.leaveConditional(v, ctx)
        case *ast.DeclStmt     : delete(self.lvalues, v.Var)
        case *ast.DoStmt       : self.leaveDo(v, ctx)
        case *ast.ExprStmt     : self.leaveExprStmt(v, ctx)
        case *ast.FieldRef     : self.leaveFieldRef(v, ctx)
        case *ast.ForStmt      : self.leaveFor(v, ctx)
        case *ast.IfStmt       : self.leaveIf(v, ctx)
        case *ast.LocalRef     : self.leaveVarRef(v, ctx)
        case *ast.ParamRef     : self.leaveVarRef(v, ctx)
        case *ast.MethodCall   : self.leaveMethodCall(v, ctx)
        case *ast.MultiExpr    : self.leaveMulti(v, ctx)
        case *ast.PostfixExpr  : self.leavePostfix(v, ctx)
        case *ast.PrefixExpr   : self.leavePrefix(v, ctx)
        case *ast.SwitchStmt   : self.leaveSwitch(v, ctx)
        case *ast.TryStmt      : self.leaveTry(v, ctx)
        case *ast.WhileStmt    : self.leaveWhile(v, ctx)
    }
}

/** Expressions **/

func (self *Visitor) leaveBinary(x *ast.BinaryExpr, ctx *ast.Context) {
    lhs := x.Lhs
    rhs := x.Rhs

    /* the assignment target is no longer an lvalue */
    if x.Op.IsAssignment() {
        delete(self.lvalues, lhs)
    }

    /* apply rules by operator */
    switch x.Op {
        case ast.OpAnd: {
            self.shortCircuitAnd(lhs, rhs, ctx)
        }

        case ast.OpOr: {
            self.shortCircuitOr(lhs, rhs, ctx)
        }

        case ast.OpEq: {
            if lhs.Type() == ast.Null && rhs.Type() == ast.Null && !ast.HasSideEffects(x) {
                self.replace(ctx, R_NullCompare, self.prog.LiteralBool(true))
            }
        }

        case ast.OpNeq: {
            if lhs.Type() == ast.Null && rhs.Type() == ast.Null && !ast.HasSideEffects(x) {
                self.replace(ctx, R_NullCompare, self.prog.LiteralBool(false))
            }
        }

        case ast.OpAdd: {
            if x.Type() == self.prog.TypeString() {
                self.evalConcat(lhs, rhs, ctx)
            }
        }

        case ast.OpSub: {
            self.subFromZero(x, lhs, rhs, ctx)
        }

        case ast.OpDiv, ast.OpAsgDiv: {
            if !ast.IsFloating(x.Type()) {
                self.divToShift(x, lhs, rhs, ctx)
            }
        }
    }
}

// shortCircuitAnd simplifies logical and with a literal operand.
//
//     true && x  => x
//     false && x => false
//     x && true  => x
//     x && false => false, unless x has side effects
//
func (self *Visitor) shortCircuitAnd(lhs ast.Expr, rhs ast.Expr, ctx *ast.Context) {
    if b, ok := lhs.(*ast.BoolLit); ok {
        if b.Bool() {
            self.replace(ctx, R_ShortCircuitAnd, rhs)
        } else {
            self.replace(ctx, R_ShortCircuitAnd, lhs)
        }
    } else if b, ok := rhs.(*ast.BoolLit); ok {
        if b.Bool() {
            self.replace(ctx, R_ShortCircuitAnd, lhs)
        } else if !ast.HasSideEffects(lhs) {
            self.replace(ctx, R_ShortCircuitAnd, rhs)
        }
    }
}

// shortCircuitOr simplifies logical or with a literal operand.
//
//     true || x  => true
//     false || x => x
//     x || false => x
//     x || true  => true, unless x has side effects
//
func (self *Visitor) shortCircuitOr(lhs ast.Expr, rhs ast.Expr, ctx *ast.Context) {
    if b, ok := lhs.(*ast.BoolLit); ok {
        if b.Bool() {
            self.replace(ctx, R_ShortCircuitOr, lhs)
        } else {
            self.replace(ctx, R_ShortCircuitOr, rhs)
        }
    } else if b, ok := rhs.(*ast.BoolLit); ok {
        if !b.Bool() {
            self.replace(ctx, R_ShortCircuitOr, lhs)
        } else if !ast.HasSideEffects(lhs) {
            self.replace(ctx, R_ShortCircuitOr, rhs)
        }
    }
}

func (self *Visitor) evalConcat(lhs ast.Expr, rhs ast.Expr, ctx *ast.Context) {
    l, ok := lhs.(ast.Literal)
    if !ok || isSurrogate(l) {
        return
    }

    /* both sides must be literals */
    r, ok := rhs.(ast.Literal)
    if !ok || isSurrogate(r) {
        return
    }

    /* fold into a single string */
    self.replace(ctx, R_ConcatFold, self.prog.LiteralString(l.ValueString() + r.ValueString()))
}

func isSurrogate(v ast.Literal) bool {
    c, ok := v.(*ast.CharLit)
    return ok && c.IsSurrogate()
}

// subFromZero rewrites 0 - x into -x. Floating point subtractions are kept,
// 0.0 - 0.0 is positive zero while -0.0 is not.
func (self *Visitor) subFromZero(x *ast.BinaryExpr, lhs ast.Expr, rhs ast.Expr, ctx *ast.Context) {
    zero := false
    switch v := lhs.(type) {
        case *ast.IntLit  : zero = v.Int() == 0
        case *ast.LongLit : zero = v.Long() == 0
    }

    /* only integral results */
    if k := x.Type().Kind(); zero && (k == ast.K_int || k == ast.K_long) {
        self.replace(ctx, R_SubFromZero, &ast.PrefixExpr {
            SourceInfo : x.SourceInfo,
            Op         : ast.OpNeg,
            Arg        : rhs,
        })
    }
}

func (self *Visitor) divToShift(x *ast.BinaryExpr, lhs ast.Expr, rhs ast.Expr, ctx *ast.Context) {
    var divisor int64
    switch v := rhs.(type) {
        case *ast.IntLit  : divisor = int64(v.Int())
        case *ast.LongLit : divisor = v.Long()
        default           : return
    }

    /* x / 1 => x, unless x is narrower than the quotient */
    if divisor == 1 {
        if lhs.Type() == x.Type() {
            self.replace(ctx, R_DivToShift, lhs)
        }
        return
    }

    /* x / -1 => -x, but not for compound assignments */
    if divisor == -1 && !x.Op.IsAssignment() {
        self.replace(ctx, R_DivToShift, &ast.PrefixExpr {
            SourceInfo : x.SourceInfo,
            Op         : ast.OpNeg,
            Arg        : lhs,
        })
        return
    }

    /* not a power of two */
    if divisor <= 1 || divisor & (divisor - 1) != 0 {
        return
    }

    /* select the shift operator */
    op := ast.OpShr
    if x.Op.IsAssignment() {
        op = ast.OpAsgShr
    }

    /* x / 2^n => x >> n */
    self.replace(ctx, R_DivToShift, &ast.BinaryExpr {
        SourceInfo : x.SourceInfo,
        Op         : op,
        Lhs        : lhs,
        Rhs        : self.prog.LiteralInt(int32(bits.TrailingZeros64(uint64(divisor)))),
        Of         : x.Type(),
    })
}

func (self *Visitor) leaveConditional(x *ast.Conditional, ctx *ast.Context) {
    cond := x.Test
    then := x.Then
    elze := x.Else

    /* constant condition selects a branch */
    if b, ok := cond.(*ast.BoolLit); ok {
        if b.Bool() {
            self.replace(ctx, R_CondConstant, then)
        } else {
            self.replace(ctx, R_CondConstant, elze)
        }
        return
    }

    /* rewriting into logical operators needs a boolean result */
    if x.Type().Kind() != ast.K_boolean {
        return
    }

    /* cond ? true : e => cond || e, cond ? false : e => !cond && e */
    if b, ok := then.(*ast.BoolLit); ok {
        if b.Bool() {
            self.replace(ctx, R_CondToBoolean, self.logical(x, ast.OpOr, cond, elze))
        } else {
            self.replace(ctx, R_CondToBoolean, self.logical(x, ast.OpAnd, not(cond), elze))
        }
        return
    }

    /* cond ? e : true => !cond || e, cond ? e : false => cond && e */
    if b, ok := elze.(*ast.BoolLit); ok {
        if b.Bool() {
            self.replace(ctx, R_CondToBoolean, self.logical(x, ast.OpOr, not(cond), then))
        } else {
            self.replace(ctx, R_CondToBoolean, self.logical(x, ast.OpAnd, cond, then))
        }
    }
}

func (self *Visitor) logical(x *ast.Conditional, op ast.BinaryOp, lhs ast.Expr, rhs ast.Expr) *ast.BinaryExpr {
    return &ast.BinaryExpr {
        SourceInfo : x.SourceInfo,
        Op         : op,
        Lhs        : lhs,
        Rhs        : rhs,
        Of         : x.Type(),
    }
}

func not(x ast.Expr) *ast.PrefixExpr {
    return &ast.PrefixExpr {
        SourceInfo : ast.InfoOf(x),
        Op         : ast.OpNot,
        Arg        : x,
    }
}

func (self *Visitor) tryGetConstant(x ast.VarRef) ast.Literal {
    if self.isLvalue(x) {
        return nil
    } else {
        return x.Target().ConstInitializer()
    }
}

func (self *Visitor) leaveVarRef(x ast.VarRef, ctx *ast.Context) {
    if lit := self.tryGetConstant(x); lit != nil && fits(ctx, lit) {
        self.replace(ctx, R_ConstVarRead, lit)
    }
}

func (self *Visitor) leaveFieldRef(x *ast.FieldRef, ctx *ast.Context) {
    lit := self.tryGetConstant(x)
    if lit != nil && !ast.Assignable(lit.Type(), x.Type()) {
        lit = nil
    }

    /* neither a constant nor an ignored value */
    if lit == nil && !self.isIgnored(x) {
        return
    }

    /* the instance and the static initializer may still need to run */
    multi := &ast.MultiExpr{SourceInfo: x.SourceInfo}
    if x.Instance != nil {
        multi.Exprs = append(multi.Exprs, x.Instance)
    }
    if clinit := self.maybeCreateClinitCall(x); clinit != nil {
        multi.Exprs = append(multi.Exprs, clinit)
    }
    if lit != nil {
        multi.Exprs = append(multi.Exprs, lit)
    }

    /* the walker visits the new expression in place */
    self.replace(ctx, R_FieldFold, multi)
}

func (self *Visitor) maybeCreateClinitCall(x *ast.FieldRef) *ast.MethodCall {
    if f := x.Var; !f.Static || f.IsCompileTimeConstant() {
        return nil
    } else if !self.oracle.CheckClinit(self.class, f.Enclosing) {
        return nil
    } else {
        return self.prog.ClinitCall(f.Enclosing, x.SourceInfo)
    }
}

func (self *Visitor) leaveMethodCall(x *ast.MethodCall, ctx *ast.Context) {
    target := x.Target
    if target.Enclosing == self.prog.TypeString() {
        self.tryOptimizeStringCall(x, ctx, target)
    } else if self.prog.IsClinit(target) && !self.oracle.HasClinit(target.Enclosing) {
        self.replace(ctx, R_ClinitElide, self.prog.LiteralNull())
    }
}

// tryOptimizeStringCall replaces a String method call on literals with its
// result. Any failure leaves the call as it is.
func (self *Visitor) tryOptimizeStringCall(x *ast.MethodCall, ctx *ast.Context, method *ast.Method) {
    if method.Returns.Kind() == ast.K_void {
        return
    }

    /* one or more parameters were pruned */
    if len(method.OriginalParamTypes) != len(method.Params) {
        return
    }

    /* hash codes are runtime specific */
    if strings.HasSuffix(method.Ident, "hashCode") {
        return
    }

    /* static implementations take the receiver as the first argument */
    skip := 0
    recv := x.Instance
    if self.prog.IsStaticImpl(method) {
        if method = self.prog.StaticImplFor(method); len(x.Args) == 0 {
            return
        }
        skip = 1
        recv = x.Args[0]
    }

    /* instance methods need a literal receiver */
    inst, _ := translate(recv, "String").(*ast.StringLit)
    if inst == nil && !method.Static {
        return
    }

    /* the signature must be representable */
    sig, params, ok := signature(self.prog, method.Ident, method.OriginalParamTypes)
    if !ok || len(x.Args) != len(params) + skip {
        return
    }

    /* every argument must be a literal of the right kind */
    args := make([]ast.Literal, len(params))
    for i, p := range params {
        if args[i] = translate(x.Args[i + skip], p); args[i] == nil {
            return
        }
    }

    /* evaluate the call */
    lit, err := evalStringCall(self.prog, sig, method.Static, inst, args)
    if err != nil || !ast.AssignableExpr(lit, x.Type()) || !fits(ctx, lit) {
        return
    }

    /* replace with the result */
    self.replace(ctx, R_StringFold, lit)
}

func (self *Visitor) removable(x *ast.MultiExpr) int {
    if self.isIgnored(x) {
        return len(x.Exprs)
    } else {
        return len(x.Exprs) - 1
    }
}

func (self *Visitor) leaveMulti(x *ast.MultiExpr, ctx *ast.Context) {
    for i := 0; i < len(x.Exprs) - 1; i++ {
        delete(self.ignoring, x.Exprs[i])
    }

    /* drop effect-free children, and splice nested multi expressions */
    for i := 0; i < self.removable(x); i++ {
        e := x.Exprs[i]
        if !ast.HasSideEffects(e) {
            x.Exprs = append(x.Exprs[:i], x.Exprs[i + 1:]...)
            self.modified(R_MultiFlatten, x)
            i--
        } else if m, ok := e.(*ast.MultiExpr); ok {
            exprs := make([]ast.Expr, 0, len(x.Exprs) + len(m.Exprs) - 1)
            exprs = append(exprs, x.Exprs[:i]...)
            exprs = append(exprs, m.Exprs...)
            x.Exprs = append(exprs, x.Exprs[i + 1:]...)
            self.modified(R_MultiFlatten, x)
            i--
        }
    }

    /* a single expression does not need sequencing */
    if len(x.Exprs) == 1 {
        self.replace(ctx, R_MultiFlatten, x.Exprs[0])
    }
}

// leavePostfix turns i++ into ++i when the value is ignored.
func (self *Visitor) leavePostfix(x *ast.PostfixExpr, ctx *ast.Context) {
    if x.Op.IsModifying() {
        delete(self.lvalues, x.Arg)
    }
    if self.isIgnored(x) {
        self.replace(ctx, R_PostfixToPrefix, &ast.PrefixExpr {
            SourceInfo : x.SourceInfo,
            Op         : x.Op,
            Arg        : x.Arg,
        })
    }
}

var _InvertedOps = map[ast.BinaryOp]ast.BinaryOp {
    ast.OpEq  : ast.OpNeq,
    ast.OpNeq : ast.OpEq,
    ast.OpGt  : ast.OpLte,
    ast.OpLte : ast.OpGt,
    ast.OpGte : ast.OpLt,
    ast.OpLt  : ast.OpGte,
}

func (self *Visitor) leavePrefix(x *ast.PrefixExpr, ctx *ast.Context) {
    if x.Op.IsModifying() {
        delete(self.lvalues, x.Arg)
    }

    /* only logical not is simplified */
    if x.Op != ast.OpNot {
        return
    }

    /* !true => false, !(a == b) => a != b, !!a => a */
    switch arg := x.Arg.(type) {
        case *ast.BoolLit: {
            self.replace(ctx, R_NotFold, self.prog.LiteralBool(!arg.Bool()))
        }

        case *ast.BinaryExpr: {
            if op, ok := _InvertedOps[arg.Op]; ok {
                self.replace(ctx, R_NotFold, &ast.BinaryExpr {
                    SourceInfo : arg.SourceInfo,
                    Op         : op,
                    Lhs        : arg.Lhs,
                    Rhs        : arg.Rhs,
                    Of         : arg.Of,
                })
            }
        }

        case *ast.PrefixExpr: {
            if arg.Op == ast.OpNot {
                self.replace(ctx, R_NotFold, arg.Arg)
            }
        }
    }
}

/** Statements **/

// canPromoteBlock reports whether the block declares no local variables, so
// its statements can be spliced into the enclosing block.
func canPromoteBlock(b *ast.Block) bool {
    for _, s := range b.Stmts {
        if d, ok := s.(*ast.DeclStmt); ok {
            if _, ok = d.Var.(*ast.LocalRef); ok {
                return false
            }
        }
    }
    return true
}

func (self *Visitor) leaveBlock(x *ast.Block, ctx *ast.Context) {
    if _, ok := self.switches[x]; ok {
        return
    }

    /* flatten nested blocks and chop unreachable statements */
    for i := 0; i < len(x.Stmts); i++ {
        s := x.Stmts[i]

        /* promote the statements of a nested block */
        if b, ok := s.(*ast.Block); ok && canPromoteBlock(b) {
            stmts := make([]ast.Stmt, 0, len(x.Stmts) + len(b.Stmts) - 1)
            stmts = append(stmts, x.Stmts[:i]...)
            stmts = append(stmts, b.Stmts...)
            x.Stmts = append(stmts, x.Stmts[i + 1:]...)
            self.modified(R_BlockFlatten, x)
            i--
            continue
        }

        /* abrupt change of control flow */
        if ast.UnconditionalControlBreak(s) && i + 1 < len(x.Stmts) {
            x.Stmts = x.Stmts[:i + 1]
            self.modified(R_Unreachable, x)
        }
    }

    /* blocks without statements have no effect */
    if ctx.CanRemove() && len(x.Stmts) == 0 {
        self.fire(R_EmptyBlock, x, nil)
        ctx.Remove()
    }
}

// leaveDo turns do { B } while (false) into B, unless B breaks or continues.
func (self *Visitor) leaveDo(x *ast.DoStmt, ctx *ast.Context) {
    if ast.IsLiteralFalse(x.Test) && !ast.HasBreakContinue(x.Body) {
        self.replace(ctx, R_LoopFalse, x.Body)
    }
}

func (self *Visitor) leaveExprStmt(x *ast.ExprStmt, ctx *ast.Context) {
    delete(self.ignoring, x.X)
    if !ast.HasSideEffects(x.X) {
        self.removeMe(ctx, R_ExprStmtPrune)
    }
}

// leaveFor turns for (I; false; U) S into the initializers I.
func (self *Visitor) leaveFor(x *ast.ForStmt, ctx *ast.Context) {
    if ast.IsLiteralFalse(x.Test) {
        self.replace(ctx, R_LoopFalse, &ast.Block {
            SourceInfo : x.SourceInfo,
            Stmts      : x.Init,
        })
    }
}

func (self *Visitor) leaveIf(x *ast.IfStmt, ctx *ast.Context) {
    then := x.Then
    elze := x.Else

    /* constant condition */
    if b, ok := x.Test.(*ast.BoolLit); ok {
        if b.Bool() && !ast.IsEmpty(then) {
            self.replace(ctx, R_IfDeadBranch, then)
        } else if !b.Bool() && !ast.IsEmpty(elze) {
            self.replace(ctx, R_IfDeadBranch, elze)
        } else {
            self.removeMe(ctx, R_IfDeadBranch)
        }
        return
    }

    /* only the condition remains */
    if ast.IsEmpty(then) && ast.IsEmpty(elze) {
        self.replace(ctx, R_IfEmptyBranches, ast.MakeStatement(x.Test))
    }
}

func (self *Visitor) leaveWhile(x *ast.WhileStmt, ctx *ast.Context) {
    if ast.IsLiteralFalse(x.Test) {
        self.removeMe(ctx, R_LoopFalse)
    }
}

// leaveTry removes handlers that can never match, then collapses the try
// statement if nothing is left to protect.
func (self *Visitor) leaveTry(x *ast.TryStmt, ctx *ast.Context) {
    catches := x.Catches[:0]
    for _, c := range x.Catches {
        if t := c.Arg.Type(); t == ast.Null || !self.oracle.IsInstantiatedType(t) {
            self.fire(R_TryCatchPrune, c.Body, nil)
            self.walker.MadeChanges()
        } else {
            catches = append(catches, c)
        }
    }

    /* update the handlers */
    x.Catches = catches
    noTry := ast.IsEmpty(x.Body)
    noCatch := len(x.Catches) == 0
    noFinally := ast.IsEmpty(x.Finally)

    /* select the surviving part */
    switch {
        case noTry && noFinally   : self.removeMe(ctx, R_TryCollapse)
        case noTry                : self.replace(ctx, R_TryCollapse, x.Finally)
        case noCatch && noFinally : self.replace(ctx, R_TryCollapse, x.Body)
    }
}

/** Switch Statements **/

func (self *Visitor) leaveSwitch(x *ast.SwitchStmt, ctx *ast.Context) {
    delete(self.switches, x.Body)
    if hasNoDefaultCase(x) {
        self.removeEmptyCases(x)
    }
    self.removeDoubleBreaks(x)
    self.tryRemoveSwitch(x, ctx)
}

// hasNoDefaultCase reports whether the default label, if any, guards no
// code other than breaks.
func hasNoDefaultCase(x *ast.SwitchStmt) bool {
    inDefault := false
    for _, s := range x.Body.Stmts {
        if c, ok := s.(*ast.CaseStmt); ok {
            if c.X == nil {
                inDefault = true
            }
        } else if ast.IsUnconditionalBreak(s) {
            inDefault = false
        } else if inDefault {
            return false
        }
    }
    return true
}

// removeEmptyCases removes the case labels with no code between them and a
// break or the end of the switch.
func (self *Visitor) removeEmptyCases(x *ast.SwitchStmt) {
    var noop []ast.Stmt
    var maybe []ast.Stmt

    /* find all the no-op labels */
    for _, s := range x.Body.Stmts {
        if _, ok := s.(*ast.CaseStmt); ok {
            maybe = append(maybe, s)
        } else if ast.IsUnconditionalBreak(s) {
            noop = append(noop, maybe...)
            maybe = maybe[:0]
        } else {
            maybe = maybe[:0]
        }
    }

    /* labels at the end guard nothing either */
    noop = append(noop, maybe...)
    if len(noop) == 0 {
        return
    }

    /* build the removal set */
    drop := make(map[ast.Stmt]struct{}, len(noop))
    for _, s := range noop {
        drop[s] = struct{}{}
    }

    /* filter the body */
    stmts := make([]ast.Stmt, 0, len(x.Body.Stmts) - len(noop))
    for _, s := range x.Body.Stmts {
        if _, ok := drop[s]; !ok {
            stmts = append(stmts, s)
        }
    }

    /* update the body */
    x.Body.Stmts = stmts
    self.modified(R_SwitchDeadCase, x)
}

// removeDoubleBreaks removes breaks that directly follow another break (or
// the start of the body), and a break at the very end of the body.
func (self *Visitor) removeDoubleBreaks(x *ast.SwitchStmt) {
    body := x.Body
    last := true
    stmts := body.Stmts[:0]
    removed := false

    /* remove consecutive breaks */
    for _, s := range body.Stmts {
        brk := ast.IsUnconditionalBreak(s)
        if brk && last {
            removed = true
        } else {
            stmts = append(stmts, s)
        }
        last = brk
    }

    /* remove the trailing break */
    if last && len(stmts) != 0 {
        removed = true
        stmts = stmts[:len(stmts) - 1]
    }

    /* update the body */
    body.Stmts = stmts
    if removed {
        self.modified(R_SwitchDoubleBreak, x)
    }
}

type _Segment struct {
    label *ast.CaseStmt
    stmts []ast.Stmt
}

// segments splits the switch body at its labels. It fails if the body does
// not start with a label, or if a segment carries more than one label.
func segments(body *ast.Block) ([]_Segment, bool) {
    var ret []_Segment
    for _, s := range body.Stmts {
        if c, ok := s.(*ast.CaseStmt); !ok {
            if len(ret) == 0 {
                return nil, false
            }
            ret[len(ret) - 1].stmts = append(ret[len(ret) - 1].stmts, s)
        } else if len(ret) != 0 && len(ret[len(ret) - 1].stmts) == 0 {
            return nil, false
        } else {
            ret = append(ret, _Segment{label: c})
        }
    }
    return ret, true
}

func anyBreakContinue(ss []ast.Stmt) bool {
    for _, s := range ss {
        if ast.HasBreakContinue(s) {
            return true
        }
    }
    return false
}

func (self *Visitor) tryRemoveSwitch(x *ast.SwitchStmt, ctx *ast.Context) {
    if len(x.Body.Stmts) == 0 {
        self.replace(ctx, R_SwitchReduce, ast.MakeStatement(x.X))
        return
    }

    /* split into segments */
    segs, ok := segments(x.Body)
    if !ok {
        return
    }

    /* switch (e) { case c: A } => if (e == c) { A }, switch (e) { default: A } => { e; A } */
    if len(segs) == 1 && len(segs[0].stmts) != 0 && !anyBreakContinue(segs[0].stmts) {
        if segs[0].label.X == nil {
            self.replace(ctx, R_SwitchReduce, &ast.Block {
                SourceInfo : x.SourceInfo,
                Stmts      : append([]ast.Stmt { ast.MakeStatement(x.X) }, segs[0].stmts...),
            })
        } else if self.canCompare(x) {
            self.replace(ctx, R_SwitchReduce, &ast.IfStmt {
                SourceInfo : x.SourceInfo,
                Test       : self.compare(x, segs[0].label),
                Then       : &ast.Block{SourceInfo: x.SourceInfo, Stmts: segs[0].stmts},
            })
        }
        return
    }

    /* switch (e) { case c: A; break; default: B } => if (e == c) { A } else { B } */
    if len(segs) != 2 || segs[0].label.X == nil || segs[1].label.X != nil || !self.canCompare(x) {
        return
    }

    /* the first segment must end with its only break */
    a, b := segs[0].stmts, segs[1].stmts
    if !ast.IsUnconditionalBreak(a[len(a) - 1]) || anyBreakContinue(a[:len(a) - 1]) || anyBreakContinue(b) {
        return
    }

    /* build the if statement */
    self.replace(ctx, R_SwitchReduce, &ast.IfStmt {
        SourceInfo : x.SourceInfo,
        Test       : self.compare(x, segs[0].label),
        Then       : &ast.Block{SourceInfo: x.SourceInfo, Stmts: a[:len(a) - 1]},
        Else       : &ast.Block{SourceInfo: x.SourceInfo, Stmts: b},
    })
}

// canCompare reports whether the selector compares by value with ==.
func (self *Visitor) canCompare(x *ast.SwitchStmt) bool {
    _, ok := x.X.Type().(*ast.PrimitiveType)
    return ok
}

func (self *Visitor) compare(x *ast.SwitchStmt, label *ast.CaseStmt) *ast.BinaryExpr {
    return &ast.BinaryExpr {
        SourceInfo : x.SourceInfo,
        Op         : ast.OpEq,
        Lhs        : x.X,
        Rhs        : label.X,
        Of         : ast.Boolean,
    }
}
