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

const (
    ClinitName = "$clinit"
)

// ClassType is both a type and the container of its members. Methods[0] is
// always the static initializer.
type ClassType struct {
    SourceInfo
    Name    string
    Super   *ClassType
    Fields  []*Field
    Methods []*Method
}

func (*ClassType) Kind() TypeKind {
    return K_class
}

func (self *ClassType) String() string {
    return self.Name
}

// IsSubclassOf reports whether self is other or one of its descendants.
func (self *ClassType) IsSubclassOf(other *ClassType) bool {
    for p := self; p != nil; p = p.Super {
        if p == other {
            return true
        }
    }
    return false
}

// Clinit returns the static initializer of the class.
func (self *ClassType) Clinit() *Method {
    return self.Methods[0]
}

func (self *ClassType) Method(name string) *Method {
    for _, m := range self.Methods {
        if m.Ident == name {
            return m
        }
    }
    return nil
}

func (self *ClassType) Field(name string) *Field {
    for _, f := range self.Fields {
        if f.Ident == name {
            return f
        }
    }
    return nil
}

type Method struct {
    SourceInfo
    Ident     string
    Enclosing *ClassType
    Static    bool
    Returns   Type
    Params    []*Param
    Body      *Block

    // OriginalParamTypes are the parameter types the method was declared
    // with, before any upstream pass pruned unused parameters.
    OriginalParamTypes []Type

    // SideEffectFree marks methods whose invocation is observable only
    // through the returned value.
    SideEffectFree bool

    // StaticImplOf is the instance method this static method was
    // devirtualized from, the receiver becomes the first parameter.
    StaticImplOf *Method
}

func (self *Method) String() string {
    if self.Enclosing == nil {
        return self.Ident
    } else {
        return self.Enclosing.Name + "." + self.Ident
    }
}

// Program is the root of the IR and the owner of every well-known type and
// shared literal.
type Program struct {
    Classes []*ClassType
    Oracle  TypeOracle // nil selects NewOracle(program) per run

    tobj    *ClassType
    tstr    *ClassType
    bools   [2]*BoolLit
    null    *NullLit
    classes map[string]*ClassType
}

// NewProgram creates an empty program with the java.lang.Object and
// java.lang.String classes predefined. The Oracle is left nil, optimizer
// runs snapshot a default one from the program when they start.
func NewProgram() *Program {
    ret := &Program {
        null    : new(NullLit),
        classes : make(map[string]*ClassType),
    }

    /* shared boolean literals */
    ret.bools[0] = &BoolLit{false}
    ret.bools[1] = &BoolLit{true}

    /* well-known classes */
    ret.tobj = ret.NewClass("java.lang.Object", nil)
    ret.tstr = ret.NewClass("java.lang.String", ret.tobj)
    return ret
}

func (self *Program) TypeObject() *ClassType { return self.tobj }
func (self *Program) TypeString() *ClassType { return self.tstr }
func (self *Program) TypeNull()   Type       { return Null }

// LookupType resolves a primitive name or a class name, returns nil if no
// such type exists.
func (self *Program) LookupType(name string) Type {
    if t, ok := _Primitives[name]; ok {
        return t
    } else if c, ok := self.classes[name]; ok {
        return c
    } else {
        return nil
    }
}

// NewClass declares a class with an empty static initializer.
func (self *Program) NewClass(name string, super *ClassType) *ClassType {
    if _, ok := self.classes[name]; ok {
        panic(fmt.Sprintf("duplicated class: %s", name))
    }

    /* create the class and its static initializer */
    ret := &ClassType{Name: name, Super: super}
    ret.Methods = []*Method {{
        Ident     : ClinitName,
        Enclosing : ret,
        Static    : true,
        Returns   : Void,
        Body      : new(Block),
    }}

    /* register the class */
    self.classes[name] = ret
    self.Classes = append(self.Classes, ret)
    return ret
}

// AddMethod declares a method in class c. The original parameter types are
// initialized from the parameters.
func (self *Program) AddMethod(c *ClassType, name string, static bool, ret Type, params ...*Param) *Method {
    m := &Method {
        Ident     : name,
        Enclosing : c,
        Static    : static,
        Returns   : ret,
        Params    : params,
        Body      : new(Block),
    }

    /* record the declared parameter types */
    for _, p := range params {
        m.OriginalParamTypes = append(m.OriginalParamTypes, p.Of)
    }

    /* add to the class */
    c.Methods = append(c.Methods, m)
    return m
}

func (self *Program) AddField(c *ClassType, name string, t Type, static bool) *Field {
    f := &Field{Ident: name, Of: t, Enclosing: c, Static: static}
    c.Fields = append(c.Fields, f)
    return f
}

func (self *Program) IsClinit(m *Method) bool {
    return m.Enclosing != nil && len(m.Enclosing.Methods) != 0 && m.Enclosing.Methods[0] == m
}

func (self *Program) IsStaticImpl(m *Method) bool {
    return m.StaticImplOf != nil
}

// StaticImplFor returns the instance method m is the static implementation
// of, or nil if m is not one.
func (self *Program) StaticImplFor(m *Method) *Method {
    return m.StaticImplOf
}

func (self *Program) LiteralBool(v bool) *BoolLit {
    if v {
        return self.bools[1]
    } else {
        return self.bools[0]
    }
}

func (self *Program) LiteralInt(v int32) *IntLit {
    return &IntLit{v}
}

func (self *Program) LiteralLong(v int64) *LongLit {
    return &LongLit{v}
}

func (self *Program) LiteralFloat(v float32) *FloatLit {
    return &FloatLit{v}
}

func (self *Program) LiteralDouble(v float64) *DoubleLit {
    return &DoubleLit{v}
}

func (self *Program) LiteralChar(v uint16) *CharLit {
    return &CharLit{v}
}

func (self *Program) LiteralString(v string) *StringLit {
    return &StringLit{v, self.tstr}
}

func (self *Program) LiteralNull() *NullLit {
    return self.null
}

// ClinitCall creates a call to the static initializer of class c.
func (self *Program) ClinitCall(c *ClassType, info SourceInfo) *MethodCall {
    return &MethodCall {
        SourceInfo : info,
        Target     : c.Clinit(),
    }
}
