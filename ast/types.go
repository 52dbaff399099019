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

type TypeKind uint8

const (
    K_void TypeKind = iota
    K_boolean
    K_byte
    K_char
    K_short
    K_int
    K_long
    K_float
    K_double
    K_null
    K_class
)

func (self TypeKind) String() string {
    switch self {
        case K_void    : return "void"
        case K_boolean : return "boolean"
        case K_byte    : return "byte"
        case K_char    : return "char"
        case K_short   : return "short"
        case K_int     : return "int"
        case K_long    : return "long"
        case K_float   : return "float"
        case K_double  : return "double"
        case K_null    : return "null"
        case K_class   : return "class"
        default        : return fmt.Sprintf("TypeKind(%d)", self)
    }
}

// Type is the static type of an expression. The set of implementations is
// closed: primitives, the null type and class types.
type Type interface {
    fmt.Stringer
    Kind() TypeKind
    gotype()
}

func (*PrimitiveType) gotype() {}
func (*NullType)      gotype() {}
func (*ClassType)     gotype() {}

type PrimitiveType struct {
    k TypeKind
}

func (self *PrimitiveType) Kind() TypeKind {
    return self.k
}

func (self *PrimitiveType) String() string {
    return self.k.String()
}

type NullType struct{}

func (*NullType) Kind() TypeKind { return K_null }
func (*NullType) String() string { return "null" }

var (
    Void    = &PrimitiveType{K_void}
    Boolean = &PrimitiveType{K_boolean}
    Byte    = &PrimitiveType{K_byte}
    Char    = &PrimitiveType{K_char}
    Short   = &PrimitiveType{K_short}
    Int     = &PrimitiveType{K_int}
    Long    = &PrimitiveType{K_long}
    Float   = &PrimitiveType{K_float}
    Double  = &PrimitiveType{K_double}
    Null    = &NullType{}
)

var _Primitives = map[string]Type {
    "void"    : Void,
    "boolean" : Boolean,
    "byte"    : Byte,
    "char"    : Char,
    "short"   : Short,
    "int"     : Int,
    "long"    : Long,
    "float"   : Float,
    "double"  : Double,
    "null"    : Null,
}

func IsIntegral(t Type) bool {
    switch t.Kind() {
        case K_byte, K_char, K_short, K_int, K_long : return true
        default                                     : return false
    }
}

func IsFloating(t Type) bool {
    k := t.Kind()
    return k == K_float || k == K_double
}

func IsNumeric(t Type) bool {
    return IsIntegral(t) || IsFloating(t)
}

func IsReference(t Type) bool {
    k := t.Kind()
    return k == K_class || k == K_null
}

/* widening primitive conversions, indexed by source kind */
var _Widening = map[TypeKind][]TypeKind {
    K_byte  : { K_short, K_int, K_long, K_float, K_double },
    K_short : { K_int, K_long, K_float, K_double },
    K_char  : { K_int, K_long, K_float, K_double },
    K_int   : { K_long, K_float, K_double },
    K_long  : { K_float, K_double },
    K_float : { K_double },
}

// Assignable reports whether a value of type from may occupy a slot that
// requires type to. A nil slot type accepts anything, and so does void since
// the value of a void slot is never read.
func Assignable(from Type, to Type) bool {
    if to == nil || to.Kind() == K_void || from == to {
        return true
    }

    /* null flows into any reference */
    if from.Kind() == K_null {
        return IsReference(to)
    }

    /* subclass to superclass */
    if fc, ok := from.(*ClassType); ok {
        if tc, ok := to.(*ClassType); ok {
            return fc.IsSubclassOf(tc)
        }
        return false
    }

    /* primitive widening */
    for _, k := range _Widening[from.Kind()] {
        if k == to.Kind() {
            return true
        }
    }
    return false
}

// Promote applies unary numeric promotion.
func Promote(t Type) Type {
    switch t.Kind() {
        case K_byte, K_short, K_char : return Int
        default                      : return t
    }
}

// PromoteBinary applies binary numeric promotion.
func PromoteBinary(a Type, b Type) Type {
    switch {
        case a.Kind() == K_double || b.Kind() == K_double : return Double
        case a.Kind() == K_float  || b.Kind() == K_float  : return Float
        case a.Kind() == K_long   || b.Kind() == K_long   : return Long
        default                                           : return Int
    }
}
