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
    `math`
    `strconv`
    `strings`
    `unicode/utf16`
)

// Literal is an immutable constant. Literal nodes may be referenced from any
// number of slots at once, so nothing ever writes to them after creation.
type Literal interface {
    Expr

    // Value returns the native scalar: bool, int32, int64, float32, float64,
    // uint16 (a UTF-16 code unit), string, or nil for the null literal.
    Value() interface{}

    // ValueString is the Java String.valueOf form of the value.
    ValueString() string
    literal()
}

func (*BoolLit)   literal() {}
func (*IntLit)    literal() {}
func (*LongLit)   literal() {}
func (*FloatLit)  literal() {}
func (*DoubleLit) literal() {}
func (*CharLit)   literal() {}
func (*StringLit) literal() {}
func (*NullLit)   literal() {}

type BoolLit   struct { v bool }
type IntLit    struct { v int32 }
type LongLit   struct { v int64 }
type FloatLit  struct { v float32 }
type DoubleLit struct { v float64 }
type CharLit   struct { v uint16 }
type NullLit   struct{}

type StringLit struct {
    v string
    t *ClassType
}

func (self *BoolLit)   Bool()   bool    { return self.v }
func (self *IntLit)    Int()    int32   { return self.v }
func (self *LongLit)   Long()   int64   { return self.v }
func (self *FloatLit)  Float()  float32 { return self.v }
func (self *DoubleLit) Double() float64 { return self.v }
func (self *CharLit)   Char()   uint16  { return self.v }
func (self *StringLit) Str()    string  { return self.v }

func (self *BoolLit)   Value() interface{} { return self.v }
func (self *IntLit)    Value() interface{} { return self.v }
func (self *LongLit)   Value() interface{} { return self.v }
func (self *FloatLit)  Value() interface{} { return self.v }
func (self *DoubleLit) Value() interface{} { return self.v }
func (self *CharLit)   Value() interface{} { return self.v }
func (self *StringLit) Value() interface{} { return self.v }
func (self *NullLit)   Value() interface{} { return nil }

func (*BoolLit)        Type() Type { return Boolean }
func (*IntLit)         Type() Type { return Int }
func (*LongLit)        Type() Type { return Long }
func (*FloatLit)       Type() Type { return Float }
func (*DoubleLit)      Type() Type { return Double }
func (*CharLit)        Type() Type { return Char }
func (self *StringLit) Type() Type { return self.t }
func (*NullLit)        Type() Type { return Null }

func (self *BoolLit) ValueString() string {
    return strconv.FormatBool(self.v)
}

func (self *IntLit) ValueString() string {
    return strconv.FormatInt(int64(self.v), 10)
}

func (self *LongLit) ValueString() string {
    return strconv.FormatInt(self.v, 10)
}

func (self *FloatLit) ValueString() string {
    return javaFloatString(float64(self.v), 32)
}

func (self *DoubleLit) ValueString() string {
    return javaFloatString(self.v, 64)
}

// IsSurrogate reports whether the char is half of a surrogate pair, which has
// no string form on its own.
func (self *CharLit) IsSurrogate() bool {
    return utf16.IsSurrogate(rune(self.v))
}

func (self *CharLit) ValueString() string {
    return string(utf16.Decode([]uint16 { self.v }))
}

func (self *StringLit) ValueString() string {
    return self.v
}

func (*NullLit) ValueString() string {
    return "null"
}

// IsLiteralTrue reports whether e is the boolean literal true.
func IsLiteralTrue(e Expr) bool {
    b, ok := e.(*BoolLit)
    return ok && b.v
}

// IsLiteralFalse reports whether e is the boolean literal false.
func IsLiteralFalse(e Expr) bool {
    b, ok := e.(*BoolLit)
    return ok && !b.v
}

// javaFloatString renders a floating point number the way Double.toString
// and Float.toString do: plain decimal within [1e-3, 1e7), otherwise
// computerized scientific notation, always with at least one fractional digit.
func javaFloatString(v float64, bits int) string {
    switch {
        case math.IsNaN(v)     : return "NaN"
        case math.IsInf(v, 1)  : return "Infinity"
        case math.IsInf(v, -1) : return "-Infinity"
    }

    /* signed zeros */
    if v == 0 {
        if math.Signbit(v) {
            return "-0.0"
        } else {
            return "0.0"
        }
    }

    /* plain decimal form */
    if av := math.Abs(v); av >= 1e-3 && av < 1e7 {
        s := strconv.FormatFloat(v, 'f', -1, bits)
        if !strings.ContainsRune(s, '.') {
            s += ".0"
        }
        return s
    }

    /* split the mantissa and the exponent */
    s := strconv.FormatFloat(v, 'E', -1, bits)
    p := strings.IndexByte(s, 'E')
    m, e := s[:p], s[p + 1:]

    /* mantissa always carries a fraction */
    if !strings.ContainsRune(m, '.') {
        m += ".0"
    }

    /* exponent has no plus sign and no leading zeros */
    neg := e[0] == '-'
    e = strings.TrimLeft(e[1:], "0")

    /* assemble the result */
    if neg {
        return m + "E-" + e
    } else {
        return m + "E" + e
    }
}
