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

// UnconditionalControlBreak reports whether control never falls through s to
// the statement physically after it.
func UnconditionalControlBreak(s Stmt) bool {
    switch v := s.(type) {
        case *BreakStmt    : return true
        case *ContinueStmt : return true
        case *ReturnStmt   : return true
        case *ThrowStmt    : return true
        case *Block        : return v != nil && blockBreaks(v)
        case *IfStmt       : return v.Then != nil && v.Else != nil && UnconditionalControlBreak(v.Then) && UnconditionalControlBreak(v.Else)
        case *TryStmt      : return tryBreaks(v)
        default            : return false
    }
}

func blockBreaks(v *Block) bool {
    for _, s := range v.Stmts {
        if UnconditionalControlBreak(s) {
            return true
        }
    }
    return false
}

func tryBreaks(v *TryStmt) bool {
    if v.Finally != nil && blockBreaks(v.Finally) {
        return true
    }

    /* the body and every handler must break */
    if !blockBreaks(v.Body) {
        return false
    }
    for _, c := range v.Catches {
        if !blockBreaks(c.Body) {
            return false
        }
    }
    return true
}

// IsEmpty reports whether s is absent or an empty block.
func IsEmpty(s Stmt) bool {
    switch v := s.(type) {
        case nil    : return true
        case *Block : return v == nil || len(v.Stmts) == 0
        default     : return false
    }
}

// HasBreakContinue reports whether n contains any break or continue
// statement, labeled or not, at any depth.
func HasBreakContinue(n Node) bool {
    found := false
    Inspect(n, func(p Node) bool {
        switch p.(type) {
            case *BreakStmt, *ContinueStmt : found = true
        }
        return !found
    })
    return found
}

// IsUnconditionalBreak reports whether s is an unlabeled break, or a block
// starting with one. A labeled break leaves an enclosing statement, not the
// switch it appears in.
func IsUnconditionalBreak(s Stmt) bool {
    switch v := s.(type) {
        case *BreakStmt : return v.Label == ""
        case *Block     : return len(v.Stmts) != 0 && IsUnconditionalBreak(v.Stmts[0])
        default         : return false
    }
}
