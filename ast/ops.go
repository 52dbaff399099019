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

type BinaryOp uint8

const (
    OpAdd BinaryOp = iota
    OpSub
    OpMul
    OpDiv
    OpMod
    OpShl
    OpShr
    OpShru
    OpBitAnd
    OpBitOr
    OpBitXor
    OpAnd
    OpOr
    OpEq
    OpNeq
    OpLt
    OpLte
    OpGt
    OpGte
    OpAsg
    OpAsgAdd
    OpAsgSub
    OpAsgMul
    OpAsgDiv
    OpAsgMod
    OpAsgShl
    OpAsgShr
    OpAsgShru
    OpAsgBitAnd
    OpAsgBitOr
    OpAsgBitXor
)

var _BinaryOps = [...]struct {
    sym  string
    prec int
} {
    OpAdd       : { "+"    , 11 },
    OpSub       : { "-"    , 11 },
    OpMul       : { "*"    , 12 },
    OpDiv       : { "/"    , 12 },
    OpMod       : { "%"    , 12 },
    OpShl       : { "<<"   , 10 },
    OpShr       : { ">>"   , 10 },
    OpShru      : { ">>>"  , 10 },
    OpBitAnd    : { "&"    , 7  },
    OpBitOr     : { "|"    , 5  },
    OpBitXor    : { "^"    , 6  },
    OpAnd       : { "&&"   , 4  },
    OpOr        : { "||"   , 3  },
    OpEq        : { "=="   , 8  },
    OpNeq       : { "!="   , 8  },
    OpLt        : { "<"    , 9  },
    OpLte       : { "<="   , 9  },
    OpGt        : { ">"    , 9  },
    OpGte       : { ">="   , 9  },
    OpAsg       : { "="    , 1  },
    OpAsgAdd    : { "+="   , 1  },
    OpAsgSub    : { "-="   , 1  },
    OpAsgMul    : { "*="   , 1  },
    OpAsgDiv    : { "/="   , 1  },
    OpAsgMod    : { "%="   , 1  },
    OpAsgShl    : { "<<="  , 1  },
    OpAsgShr    : { ">>="  , 1  },
    OpAsgShru   : { ">>>=" , 1  },
    OpAsgBitAnd : { "&="   , 1  },
    OpAsgBitOr  : { "|="   , 1  },
    OpAsgBitXor : { "^="   , 1  },
}

func (self BinaryOp) String() string {
    if int(self) < len(_BinaryOps) {
        return _BinaryOps[self].sym
    } else {
        return fmt.Sprintf("BinaryOp(%d)", self)
    }
}

// Precedence follows the Java grammar, higher binds tighter.
func (self BinaryOp) Precedence() int {
    return _BinaryOps[self].prec
}

func (self BinaryOp) IsAssignment() bool {
    return self >= OpAsg
}

func (self BinaryOp) IsComparison() bool {
    return self >= OpEq && self <= OpGte
}

func (self BinaryOp) IsShift() bool {
    switch self {
        case OpShl, OpShr, OpShru, OpAsgShl, OpAsgShr, OpAsgShru : return true
        default                                                  : return false
    }
}

type UnaryOp uint8

const (
    OpInc UnaryOp = iota
    OpDec
    OpNeg
    OpNot
    OpBitNot
)

func (self UnaryOp) String() string {
    switch self {
        case OpInc    : return "++"
        case OpDec    : return "--"
        case OpNeg    : return "-"
        case OpNot    : return "!"
        case OpBitNot : return "~"
        default       : return fmt.Sprintf("UnaryOp(%d)", self)
    }
}

// IsModifying reports whether the operator writes back to its operand.
func (self UnaryOp) IsModifying() bool {
    return self == OpInc || self == OpDec
}
