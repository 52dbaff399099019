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
    `sync/atomic`
)

type Rule uint8

const (
    R_ShortCircuitAnd Rule = iota
    R_ShortCircuitOr
    R_NullCompare
    R_ConcatFold
    R_DivToShift
    R_SubFromZero
    R_CondConstant
    R_CondToBoolean
    R_NotFold
    R_PostfixToPrefix
    R_IfDeadBranch
    R_IfEmptyBranches
    R_LoopFalse
    R_ConstVarRead
    R_FieldFold
    R_Unreachable
    R_BlockFlatten
    R_EmptyBlock
    R_ExprStmtPrune
    R_MultiFlatten
    R_SwitchReduce
    R_SwitchDeadCase
    R_SwitchDoubleBreak
    R_TryCatchPrune
    R_TryCollapse
    R_ClinitElide
    R_StringFold
    _R_count
)

var _RuleNames = [_R_count]string {
    R_ShortCircuitAnd   : "short-circuit-and",
    R_ShortCircuitOr    : "short-circuit-or",
    R_NullCompare       : "null-compare",
    R_ConcatFold        : "concat-fold",
    R_DivToShift        : "div-to-shift",
    R_SubFromZero       : "sub-from-zero",
    R_CondConstant      : "cond-constant",
    R_CondToBoolean     : "cond-to-boolean",
    R_NotFold           : "not-fold",
    R_PostfixToPrefix   : "postfix-to-prefix",
    R_IfDeadBranch      : "if-dead-branch",
    R_IfEmptyBranches   : "if-empty-branches",
    R_LoopFalse         : "loop-false",
    R_ConstVarRead      : "const-var-read",
    R_FieldFold         : "field-fold",
    R_Unreachable       : "unreachable",
    R_BlockFlatten      : "block-flatten",
    R_EmptyBlock        : "empty-block",
    R_ExprStmtPrune     : "expr-stmt-prune",
    R_MultiFlatten      : "multi-flatten",
    R_SwitchReduce      : "switch-reduce",
    R_SwitchDeadCase    : "switch-dead-case",
    R_SwitchDoubleBreak : "switch-double-break",
    R_TryCatchPrune     : "try-catch-prune",
    R_TryCollapse       : "try-collapse",
    R_ClinitElide       : "clinit-elide",
    R_StringFold        : "string-fold",
}

func (self Rule) String() string {
    if self < _R_count {
        return _RuleNames[self]
    } else {
        return fmt.Sprintf("Rule(%d)", self)
    }
}

var (
    RunCount     uint64
    PassCount    uint64
    ChangedCount uint64
    ruleHits     [_R_count]uint64
)

func (self Rule) hit() {
    atomic.AddUint64(&ruleHits[self], 1)
}

// RuleHits returns the number of times each rule fired since the process
// started, keyed by rule name.
func RuleHits() map[string]int {
    ret := make(map[string]int, _R_count)
    for i := Rule(0); i < _R_count; i++ {
        ret[i.String()] = int(atomic.LoadUint64(&ruleHits[i]))
    }
    return ret
}
