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

// SourceInfo is the position a node was produced from. Optimizations carry
// it over to the nodes they create but never look at it.
type SourceInfo struct {
    File string
    Line int
}

// Node is any element of the IR. The set of node kinds is closed, every
// implementation lives in this package.
type Node interface {
    astnode()
}

type Expr interface {
    Node
    Type() Type
    expr()
}

type Stmt interface {
    Node
    stmt()
}

func (*Program)      astnode() {}
func (*ClassType)    astnode() {}
func (*Method)       astnode() {}
func (*BoolLit)      astnode() {}
func (*IntLit)       astnode() {}
func (*LongLit)      astnode() {}
func (*FloatLit)     astnode() {}
func (*DoubleLit)    astnode() {}
func (*CharLit)      astnode() {}
func (*StringLit)    astnode() {}
func (*NullLit)      astnode() {}
func (*LocalRef)     astnode() {}
func (*ParamRef)     astnode() {}
func (*FieldRef)     astnode() {}
func (*BinaryExpr)   astnode() {}
func (*PrefixExpr)   astnode() {}
func (*PostfixExpr)  astnode() {}
func (*Conditional)  astnode() {}
func (*MethodCall)   astnode() {}
func (*MultiExpr)    astnode() {}
func (*Block)        astnode() {}
func (*ExprStmt)     astnode() {}
func (*DeclStmt)     astnode() {}
func (*IfStmt)       astnode() {}
func (*WhileStmt)    astnode() {}
func (*DoStmt)       astnode() {}
func (*ForStmt)      astnode() {}
func (*SwitchStmt)   astnode() {}
func (*CaseStmt)     astnode() {}
func (*TryStmt)      astnode() {}
func (*BreakStmt)    astnode() {}
func (*ContinueStmt) astnode() {}
func (*ReturnStmt)   astnode() {}
func (*ThrowStmt)    astnode() {}

func (*BoolLit)      expr() {}
func (*IntLit)       expr() {}
func (*LongLit)      expr() {}
func (*FloatLit)     expr() {}
func (*DoubleLit)    expr() {}
func (*CharLit)      expr() {}
func (*StringLit)    expr() {}
func (*NullLit)      expr() {}
func (*LocalRef)     expr() {}
func (*ParamRef)     expr() {}
func (*FieldRef)     expr() {}
func (*BinaryExpr)   expr() {}
func (*PrefixExpr)   expr() {}
func (*PostfixExpr)  expr() {}
func (*Conditional)  expr() {}
func (*MethodCall)   expr() {}
func (*MultiExpr)    expr() {}

func (*Block)        stmt() {}
func (*ExprStmt)     stmt() {}
func (*DeclStmt)     stmt() {}
func (*IfStmt)       stmt() {}
func (*WhileStmt)    stmt() {}
func (*DoStmt)       stmt() {}
func (*ForStmt)      stmt() {}
func (*SwitchStmt)   stmt() {}
func (*CaseStmt)     stmt() {}
func (*TryStmt)      stmt() {}
func (*BreakStmt)    stmt() {}
func (*ContinueStmt) stmt() {}
func (*ReturnStmt)   stmt() {}
func (*ThrowStmt)    stmt() {}

/** Variables **/

// Variable is a declaration that references point at. Declarations are owned
// by their method or class, not by the references.
type Variable interface {
    Name() string
    Type() Type

    // ConstInitializer returns the literal every read of the variable
    // evaluates to, or nil when the variable is not a constant.
    ConstInitializer() Literal
}

type Local struct {
    Ident string
    Of    Type
    Const Literal
}

type Param struct {
    Ident string
    Of    Type
    Const Literal
}

type Field struct {
    Ident     string
    Of        Type
    Enclosing *ClassType
    Static    bool
    Final     bool
    Const     Literal
}

func (self *Local) Name()             string  { return self.Ident }
func (self *Local) Type()             Type    { return self.Of }
func (self *Local) ConstInitializer() Literal { return self.Const }
func (self *Param) Name()             string  { return self.Ident }
func (self *Param) Type()             Type    { return self.Of }
func (self *Param) ConstInitializer() Literal { return self.Const }
func (self *Field) Name()             string  { return self.Ident }
func (self *Field) Type()             Type    { return self.Of }

func (self *Field) ConstInitializer() Literal {
    if self.Final {
        return self.Const
    } else {
        return nil
    }
}

// IsCompileTimeConstant reports a static final field initialized with a
// literal, reading it never triggers the static initializer.
func (self *Field) IsCompileTimeConstant() bool {
    return self.Static && self.Final && self.Const != nil
}

/** Expressions **/

// VarRef is a read of, or a write to, a variable.
type VarRef interface {
    Expr
    Target() Variable
    varref()
}

func (*LocalRef) varref() {}
func (*ParamRef) varref() {}
func (*FieldRef) varref() {}

type LocalRef struct {
    SourceInfo
    Var *Local
}

type ParamRef struct {
    SourceInfo
    Var *Param
}

type FieldRef struct {
    SourceInfo
    Instance Expr
    Var      *Field
}

func (self *LocalRef) Target() Variable { return self.Var }
func (self *ParamRef) Target() Variable { return self.Var }
func (self *FieldRef) Target() Variable { return self.Var }
func (self *LocalRef) Type()   Type     { return self.Var.Of }
func (self *ParamRef) Type()   Type     { return self.Var.Of }
func (self *FieldRef) Type()   Type     { return self.Var.Of }

type BinaryExpr struct {
    SourceInfo
    Op  BinaryOp
    Lhs Expr
    Rhs Expr
    Of  Type
}

func (self *BinaryExpr) Type() Type {
    return self.Of
}

type PrefixExpr struct {
    SourceInfo
    Op  UnaryOp
    Arg Expr
}

func (self *PrefixExpr) Type() Type {
    return unaryType(self.Op, self.Arg)
}

type PostfixExpr struct {
    SourceInfo
    Op  UnaryOp
    Arg Expr
}

func (self *PostfixExpr) Type() Type {
    return unaryType(self.Op, self.Arg)
}

func unaryType(op UnaryOp, arg Expr) Type {
    switch op {
        case OpNot           : return Boolean
        case OpNeg, OpBitNot : return Promote(arg.Type())
        default              : return arg.Type()
    }
}

type Conditional struct {
    SourceInfo
    Test Expr
    Then Expr
    Else Expr
    Of   Type
}

func (self *Conditional) Type() Type {
    return self.Of
}

type MethodCall struct {
    SourceInfo
    Instance Expr
    Target   *Method
    Args     []Expr
}

func (self *MethodCall) Type() Type {
    return self.Target.Returns
}

// MultiExpr evaluates every expression in order, its value is the value of
// the last one. An empty MultiExpr is a void no-op.
type MultiExpr struct {
    SourceInfo
    Exprs []Expr
}

func (self *MultiExpr) Type() Type {
    if n := len(self.Exprs); n == 0 {
        return Void
    } else {
        return self.Exprs[n - 1].Type()
    }
}

/** Statements **/

type Block struct {
    SourceInfo
    Stmts []Stmt
}

type ExprStmt struct {
    SourceInfo
    X Expr
}

// DeclStmt declares a local (or initializes a field) with an optional
// initializer.
type DeclStmt struct {
    SourceInfo
    Var  VarRef
    Init Expr
}

// IfStmt branches are nullable, a nil branch does nothing.
type IfStmt struct {
    SourceInfo
    Test Expr
    Then Stmt
    Else Stmt
}

type WhileStmt struct {
    SourceInfo
    Test Expr
    Body Stmt
}

type DoStmt struct {
    SourceInfo
    Body Stmt
    Test Expr
}

// ForStmt with a nil Test loops forever.
type ForStmt struct {
    SourceInfo
    Init []Stmt
    Test Expr
    Incr []Stmt
    Body Stmt
}

// SwitchStmt keeps its case labels inline with the statements they guard,
// the way the source is written.
type SwitchStmt struct {
    SourceInfo
    X    Expr
    Body *Block
}

// CaseStmt is a case label, X is nil for the default label.
type CaseStmt struct {
    SourceInfo
    X Expr
}

type Catch struct {
    Arg  *LocalRef
    Body *Block
}

type TryStmt struct {
    SourceInfo
    Body    *Block
    Catches []*Catch
    Finally *Block
}

type BreakStmt struct {
    SourceInfo
    Label string
}

type ContinueStmt struct {
    SourceInfo
    Label string
}

type ReturnStmt struct {
    SourceInfo
    X Expr
}

type ThrowStmt struct {
    SourceInfo
    X Expr
}

// MakeStatement wraps an expression evaluated for its effects only.
func MakeStatement(x Expr) *ExprStmt {
    return &ExprStmt {
        X          : x,
        SourceInfo : InfoOf(x),
    }
}

// InfoOf returns the source position of n, the zero value if n carries none.
func InfoOf(n Node) SourceInfo {
    switch p := n.(type) {
        case *Method       : return p.SourceInfo
        case *ClassType    : return p.SourceInfo
        case *LocalRef     : return p.SourceInfo
        case *ParamRef     : return p.SourceInfo
        case *FieldRef     : return p.SourceInfo
        case *BinaryExpr   : return p.SourceInfo
        case *PrefixExpr   : return p.SourceInfo
        case *PostfixExpr  : return p.SourceInfo
        case *Conditional  : return p.SourceInfo
        case *MethodCall   : return p.SourceInfo
        case *MultiExpr    : return p.SourceInfo
        case *Block        : return p.SourceInfo
        case *ExprStmt     : return p.SourceInfo
        case *DeclStmt     : return p.SourceInfo
        case *IfStmt       : return p.SourceInfo
        case *WhileStmt    : return p.SourceInfo
        case *DoStmt       : return p.SourceInfo
        case *ForStmt      : return p.SourceInfo
        case *SwitchStmt   : return p.SourceInfo
        case *CaseStmt     : return p.SourceInfo
        case *TryStmt      : return p.SourceInfo
        case *BreakStmt    : return p.SourceInfo
        case *ContinueStmt : return p.SourceInfo
        case *ReturnStmt   : return p.SourceInfo
        case *ThrowStmt    : return p.SourceInfo
        default            : return SourceInfo{}
    }
}
