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
    `strconv`
    `strings`
    `unicode/utf16`
)

const (
    _P_cond    = 2
    _P_prefix  = 14
    _P_postfix = 15
    _P_primary = 16
)

// Source renders n as Java-like source text. Blocks are indented with two
// spaces and never end with a newline.
func Source(n Node) string {
    p := new(_Printer)
    p.node(n)
    return p.buf.String()
}

type _Printer struct {
    buf strings.Builder
    ind int
}

func (self *_Printer) str(s string) {
    self.buf.WriteString(s)
}

func (self *_Printer) newline() {
    self.buf.WriteByte('\n')
    self.buf.WriteString(strings.Repeat("  ", self.ind))
}

func (self *_Printer) node(n Node) {
    switch v := n.(type) {
        case nil        : self.str("<nil>")
        case *Program   : self.program(v)
        case *ClassType : self.class(v)
        case *Method    : self.method(v)
        case Stmt       : self.stmt(v)
        case Expr       : self.expr(v, 0)
        default         : self.str(fmt.Sprintf("<%T>", n))
    }
}

func (self *_Printer) program(v *Program) {
    for i, c := range v.Classes {
        if i != 0 {
            self.str("\n\n")
        }
        self.class(c)
    }
}

func (self *_Printer) class(v *ClassType) {
    self.str("class " + v.Name)
    if v.Super != nil {
        self.str(" extends " + v.Super.Name)
    }

    /* class body */
    self.str(" {")
    self.ind++
    for _, f := range v.Fields {
        self.newline()
        if f.Static {
            self.str("static ")
        }
        if f.Final {
            self.str("final ")
        }
        self.str(f.Of.String() + " " + f.Ident)
        if f.Const != nil {
            self.str(" = ")
            self.expr(f.Const, 0)
        }
        self.str(";")
    }
    for _, m := range v.Methods {
        self.newline()
        self.method(m)
    }
    self.ind--
    self.newline()
    self.str("}")
}

func (self *_Printer) method(v *Method) {
    if v.Static {
        self.str("static ")
    }

    /* signature */
    self.str(v.Returns.String() + " " + v.Ident + "(")
    for i, p := range v.Params {
        if i != 0 {
            self.str(", ")
        }
        self.str(p.Of.String() + " " + p.Ident)
    }

    /* body */
    self.str(") ")
    self.stmt(v.Body)
}

func (self *_Printer) block(v *Block) {
    self.str("{")
    self.ind++
    for _, s := range v.Stmts {
        self.newline()
        self.stmt(s)
    }
    self.ind--
    self.newline()
    self.str("}")
}

func (self *_Printer) stmt(s Stmt) {
    switch v := s.(type) {
        case *Block: {
            if v == nil {
                self.str("<nil>")
            } else {
                self.block(v)
            }
        }

        case *ExprStmt: {
            self.expr(v.X, 0)
            self.str(";")
        }

        case *DeclStmt: {
            self.decl(v)
            self.str(";")
        }

        case *IfStmt: {
            self.str("if (")
            self.expr(v.Test, 0)
            self.str(") ")
            self.branch(v.Then)
            if v.Else != nil {
                self.str(" else ")
                self.stmt(v.Else)
            }
        }

        case *WhileStmt: {
            self.str("while (")
            self.expr(v.Test, 0)
            self.str(") ")
            self.stmt(v.Body)
        }

        case *DoStmt: {
            self.str("do ")
            self.stmt(v.Body)
            self.str(" while (")
            self.expr(v.Test, 0)
            self.str(");")
        }

        case *ForStmt: {
            self.str("for (")
            self.header(v.Init)
            self.str(";")
            if v.Test != nil {
                self.str(" ")
                self.expr(v.Test, 0)
            }
            self.str(";")
            if len(v.Incr) != 0 {
                self.str(" ")
                self.header(v.Incr)
            }
            self.str(") ")
            self.stmt(v.Body)
        }

        case *SwitchStmt: {
            self.str("switch (")
            self.expr(v.X, 0)
            self.str(") ")
            self.block(v.Body)
        }

        case *CaseStmt: {
            if v.X == nil {
                self.str("default:")
            } else {
                self.str("case ")
                self.expr(v.X, 0)
                self.str(":")
            }
        }

        case *TryStmt: {
            self.str("try ")
            self.block(v.Body)
            for _, c := range v.Catches {
                self.str(" catch (" + c.Arg.Var.Of.String() + " " + c.Arg.Var.Ident + ") ")
                self.block(c.Body)
            }
            if v.Finally != nil {
                self.str(" finally ")
                self.block(v.Finally)
            }
        }

        case *BreakStmt    : self.jump("break", v.Label)
        case *ContinueStmt : self.jump("continue", v.Label)
        case *ReturnStmt   : self.value("return", v.X)
        case *ThrowStmt    : self.value("throw", v.X)
        default            : self.str(fmt.Sprintf("<%T>", s))
    }
}

func (self *_Printer) branch(s Stmt) {
    if s == nil {
        self.str(";")
    } else {
        self.stmt(s)
    }
}

func (self *_Printer) decl(v *DeclStmt) {
    if _, ok := v.Var.(*LocalRef); ok {
        self.str(v.Var.Type().String() + " ")
    }

    /* variable and initializer */
    self.expr(v.Var, 0)
    if v.Init != nil {
        self.str(" = ")
        self.expr(v.Init, 1)
    }
}

func (self *_Printer) header(ss []Stmt) {
    for i, s := range ss {
        if i != 0 {
            self.str(", ")
        }
        switch v := s.(type) {
            case *ExprStmt : self.expr(v.X, 0)
            case *DeclStmt : self.decl(v)
            default        : self.stmt(s)
        }
    }
}

func (self *_Printer) jump(kw string, label string) {
    if label == "" {
        self.str(kw + ";")
    } else {
        self.str(kw + " " + label + ";")
    }
}

func (self *_Printer) value(kw string, x Expr) {
    if x == nil {
        self.str(kw + ";")
    } else {
        self.str(kw + " ")
        self.expr(x, 0)
        self.str(";")
    }
}

func precedence(e Expr) int {
    switch v := e.(type) {
        case *BinaryExpr  : return v.Op.Precedence()
        case *Conditional : return _P_cond
        case *PrefixExpr  : return _P_prefix
        case *PostfixExpr : return _P_postfix
        default           : return _P_primary
    }
}

// expr prints e, parenthesized if it binds looser than min.
func (self *_Printer) expr(e Expr, min int) {
    if e == nil {
        self.str("<nil>")
        return
    }

    /* wrap with parentheses if needed */
    if precedence(e) < min {
        self.str("(")
        defer self.str(")")
    }

    /* print the expression itself */
    switch v := e.(type) {
        case *BinaryExpr: {
            p := v.Op.Precedence()
            if v.Op.IsAssignment() {
                self.expr(v.Lhs, p + 1)
                self.str(" " + v.Op.String() + " ")
                self.expr(v.Rhs, p)
            } else {
                self.expr(v.Lhs, p)
                self.str(" " + v.Op.String() + " ")
                self.expr(v.Rhs, p + 1)
            }
        }

        case *Conditional: {
            self.expr(v.Test, _P_cond + 1)
            self.str(" ? ")
            self.expr(v.Then, _P_cond)
            self.str(" : ")
            self.expr(v.Else, _P_cond)
        }

        case *PrefixExpr: {
            self.str(v.Op.String())
            if q, ok := v.Arg.(*PrefixExpr); ok && q.Op.String()[0] == v.Op.String()[0] {
                self.expr(v.Arg, _P_primary + 1)
            } else {
                self.expr(v.Arg, _P_prefix)
            }
        }

        case *PostfixExpr: {
            self.expr(v.Arg, _P_postfix)
            self.str(v.Op.String())
        }

        case *MultiExpr: {
            self.str("(")
            for i, x := range v.Exprs {
                if i != 0 {
                    self.str(", ")
                }
                self.expr(x, 1)
            }
            self.str(")")
        }

        case *MethodCall: {
            self.receiver(v.Instance, v.Target.Static, v.Target.Enclosing)
            self.str(v.Target.Ident + "(")
            for i, x := range v.Args {
                if i != 0 {
                    self.str(", ")
                }
                self.expr(x, 1)
            }
            self.str(")")
        }

        case *FieldRef: {
            self.receiver(v.Instance, v.Var.Static, v.Var.Enclosing)
            self.str(v.Var.Ident)
        }

        case *LocalRef : self.str(v.Var.Ident)
        case *ParamRef : self.str(v.Var.Ident)
        case Literal   : self.literal(v)
        default        : self.str(fmt.Sprintf("<%T>", e))
    }
}

func (self *_Printer) receiver(inst Expr, static bool, enclosing *ClassType) {
    if inst != nil {
        self.expr(inst, _P_primary)
        self.str(".")
    } else if static && enclosing != nil {
        self.str(enclosing.Name + ".")
    }
}

func (self *_Printer) literal(v Literal) {
    switch x := v.(type) {
        case *LongLit   : self.str(x.ValueString() + "L")
        case *FloatLit  : self.str(x.ValueString() + "f")
        case *CharLit   : self.str(quote(utf16.Decode([]uint16 { x.v }), '\''))
        case *StringLit : self.str(quote([]rune(x.v), '"'))
        default         : self.str(v.ValueString())
    }
}

func quote(s []rune, q rune) string {
    var sb strings.Builder
    sb.WriteRune(q)

    /* escape the quote, backslashes and control characters */
    for _, c := range s {
        switch {
            case c == q || c == '\\' : sb.WriteRune('\\'); sb.WriteRune(c)
            case c == '\n'           : sb.WriteString(`\n`)
            case c == '\t'           : sb.WriteString(`\t`)
            case c == '\r'           : sb.WriteString(`\r`)
            case c < 0x20            : sb.WriteString(`\u00` + strconv.FormatInt(int64(c) | 0x100, 16)[1:])
            default                  : sb.WriteRune(c)
        }
    }

    /* close the quote */
    sb.WriteRune(q)
    return sb.String()
}
