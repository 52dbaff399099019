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

// HasSideEffects reports whether evaluating e may change any observable
// state other than producing its value. Reading a static field that is not
// a compile-time constant may run a static initializer, so it counts.
func HasSideEffects(e Expr) bool {
    switch v := e.(type) {
        case nil          : return false
        case Literal      : return false
        case *LocalRef    : return false
        case *ParamRef    : return false
        case *FieldRef    : return fieldHasSideEffects(v)
        case *BinaryExpr  : return v.Op.IsAssignment() || HasSideEffects(v.Lhs) || HasSideEffects(v.Rhs)
        case *PrefixExpr  : return v.Op.IsModifying() || HasSideEffects(v.Arg)
        case *PostfixExpr : return v.Op.IsModifying() || HasSideEffects(v.Arg)
        case *Conditional : return HasSideEffects(v.Test) || HasSideEffects(v.Then) || HasSideEffects(v.Else)
        case *MethodCall  : return callHasSideEffects(v)
        case *MultiExpr   : return anyHasSideEffects(v.Exprs)
        default           : panic(NewInternalError(e, "unknown expression kind"))
    }
}

func fieldHasSideEffects(v *FieldRef) bool {
    if v.Var.Static && !v.Var.IsCompileTimeConstant() {
        return true
    } else {
        return HasSideEffects(v.Instance)
    }
}

func callHasSideEffects(v *MethodCall) bool {
    if !v.Target.SideEffectFree {
        return true
    } else if HasSideEffects(v.Instance) {
        return true
    } else {
        return anyHasSideEffects(v.Args)
    }
}

func anyHasSideEffects(exprs []Expr) bool {
    for _, e := range exprs {
        if HasSideEffects(e) {
            return true
        }
    }
    return false
}
