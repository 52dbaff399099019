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
    `errors`
    `fmt`
    `strings`
    `unicode/utf16`

    `github.com/cloudwego/dce/ast`
)

var (
    errNotFoldable = errors.New("not foldable")
    errOutOfRange  = errors.New("index out of range")
)

type _StringOp func(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error)

type _StringMethod struct {
    static bool
    eval   _StringOp
}

// _StringMethods enumerates the java.lang.String methods that can be
// evaluated at compile time, keyed by their signature. Receivers and string
// arguments are sequences of UTF-16 code units.
var _StringMethods = map[string]_StringMethod {
    "charAt(int)"                 : { false, strCharAt },
    "compareTo(String)"           : { false, strCompareTo },
    "compareToIgnoreCase(String)" : { false, strCompareToIgnoreCase },
    "concat(String)"              : { false, strConcat },
    "endsWith(String)"            : { false, strEndsWith },
    "equals(Object)"              : { false, strEquals },
    "equalsIgnoreCase(String)"    : { false, strEqualsIgnoreCase },
    "indexOf(int)"                : { false, strIndexOfChar },
    "indexOf(int,int)"            : { false, strIndexOfChar },
    "indexOf(String)"             : { false, strIndexOf },
    "indexOf(String,int)"         : { false, strIndexOf },
    "isEmpty()"                   : { false, strIsEmpty },
    "lastIndexOf(int)"            : { false, strLastIndexOfChar },
    "lastIndexOf(int,int)"        : { false, strLastIndexOfChar },
    "lastIndexOf(String)"         : { false, strLastIndexOf },
    "lastIndexOf(String,int)"     : { false, strLastIndexOf },
    "length()"                    : { false, strLength },
    "replace(char,char)"          : { false, strReplace },
    "startsWith(String)"          : { false, strStartsWith },
    "startsWith(String,int)"      : { false, strStartsWith },
    "substring(int)"              : { false, strSubstring },
    "substring(int,int)"          : { false, strSubstring },
    "toLowerCase()"               : { false, strToLowerCase },
    "toString()"                  : { false, strToString },
    "toUpperCase()"               : { false, strToUpperCase },
    "trim()"                      : { false, strTrim },
    "valueOf(boolean)"            : { true , strValueOf },
    "valueOf(char)"               : { true , strValueOf },
    "valueOf(double)"             : { true , strValueOf },
    "valueOf(int)"                : { true , strValueOf },
    "valueOf(long)"               : { true , strValueOf },
}

// signature formats the lookup key of a method along with the names of its
// parameter types, ok is false if one of them has no compile-time
// representation.
func signature(prog *ast.Program, name string, params []ast.Type) (sig string, names []string, ok bool) {
    names = make([]string, len(params))
    for i, t := range params {
        if names[i] = mapType(prog, t); names[i] == "" {
            return "", nil, false
        }
    }
    return name + "(" + strings.Join(names, ",") + ")", names, true
}

func mapType(prog *ast.Program, t ast.Type) string {
    switch t {
        case prog.TypeObject() : return "Object"
        case prog.TypeString() : return "String"
    }
    switch t.(type) {
        case *ast.PrimitiveType : return t.String()
        default                 : return ""
    }
}

// translate converts a literal argument to the representation a parameter of
// type param expects, returns nil if it cannot.
func translate(e ast.Expr, param string) ast.Literal {
    switch v := e.(type) {
        case *ast.BoolLit   : if param == "boolean" || param == "Object" { return v }
        case *ast.CharLit   : if param == "char"    || param == "Object" { return v }
        case *ast.DoubleLit : if param == "double"  || param == "Object" { return v }
        case *ast.FloatLit  : if param == "float"   || param == "Object" { return v }
        case *ast.IntLit    : if param == "int"     || param == "Object" { return v }
        case *ast.LongLit   : if param == "long"    || param == "Object" { return v }
        case *ast.StringLit : if param == "String"  || param == "Object" { return v }
    }
    return nil
}

func utf16of(s string) []uint16 {
    return utf16.Encode([]rune(s))
}

func stringof(v []uint16) string {
    return string(utf16.Decode(v))
}

func intArg(args []ast.Literal, i int) int {
    return int(args[i].(*ast.IntLit).Int())
}

func strArg(args []ast.Literal, i int) []uint16 {
    return utf16of(args[i].(*ast.StringLit).Str())
}

// wellFormed reports whether every surrogate in v is half of a pair. String
// literals hold text, an unpaired surrogate does not survive in one.
func wellFormed(v []uint16) bool {
    for i := 0; i < len(v); i++ {
        if c := rune(v[i]); !utf16.IsSurrogate(c) {
            continue
        } else if c >= 0xdc00 || i + 1 == len(v) || rune(v[i + 1]) < 0xdc00 || rune(v[i + 1]) >= 0xe000 {
            return false
        } else {
            i++
        }
    }
    return true
}

func mkstr(p *ast.Program, v []uint16) (ast.Literal, error) {
    if !wellFormed(v) {
        return nil, errNotFoldable
    } else {
        return p.LiteralString(stringof(v)), nil
    }
}

func mkint(p *ast.Program, v int) (ast.Literal, error) {
    return p.LiteralInt(int32(v)), nil
}

func mkbool(p *ast.Program, v bool) (ast.Literal, error) {
    return p.LiteralBool(v), nil
}

func strCharAt(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    if i := intArg(args, 0); i < 0 || i >= len(recv) {
        return nil, errOutOfRange
    } else {
        return p.LiteralChar(recv[i]), nil
    }
}

func strCompareTo(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    other := strArg(args, 0)
    for i := 0; i < len(recv) && i < len(other); i++ {
        if recv[i] != other[i] {
            return mkint(p, int(recv[i]) - int(other[i]))
        }
    }
    return mkint(p, len(recv) - len(other))
}

func strConcat(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    return mkstr(p, append(append([]uint16(nil), recv...), strArg(args, 0)...))
}

func strEndsWith(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    suffix := strArg(args, 0)
    return mkbool(p, regionMatches(recv, len(recv) - len(suffix), suffix))
}

func strStartsWith(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    off := 0
    if len(args) == 2 {
        off = intArg(args, 1)
    }
    return mkbool(p, regionMatches(recv, off, strArg(args, 0)))
}

func regionMatches(s []uint16, off int, sub []uint16) bool {
    if off < 0 || off > len(s) - len(sub) {
        return false
    }
    for i, c := range sub {
        if s[off + i] != c {
            return false
        }
    }
    return true
}

func strEquals(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    if v, ok := args[0].(*ast.StringLit); !ok {
        return mkbool(p, false)
    } else {
        return mkbool(p, stringof(recv) == v.Str())
    }
}

func strEqualsIgnoreCase(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    other := strArg(args, 0)
    if len(other) != len(recv) {
        return mkbool(p, false)
    }

    /* compare every code unit in both cases */
    for i, c := range recv {
        if !charEqualsIgnoreCase(c, other[i]) {
            return mkbool(p, false)
        }
    }
    return mkbool(p, true)
}

func asciiToUpper(c uint16) uint16 {
    if c >= 'a' && c <= 'z' {
        return c - 'a' + 'A'
    } else {
        return c
    }
}

func asciiToLower(c uint16) uint16 {
    if c >= 'A' && c <= 'Z' {
        return c - 'A' + 'a'
    } else {
        return c
    }
}

func strCompareToIgnoreCase(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    other := strArg(args, 0)
    if !isASCII(recv) || !isASCII(other) {
        return nil, errNotFoldable
    }

    /* compare the case folded code units */
    for i := 0; i < len(recv) && i < len(other); i++ {
        if a, b := asciiToLower(asciiToUpper(recv[i])), asciiToLower(asciiToUpper(other[i])); a != b {
            return mkint(p, int(a) - int(b))
        }
    }
    return mkint(p, len(recv) - len(other))
}

func charEqualsIgnoreCase(a uint16, b uint16) bool {
    if a == b {
        return true
    } else if utf16.IsSurrogate(rune(a)) || utf16.IsSurrogate(rune(b)) {
        return false
    }
    ua, ub := strings.ToUpper(string(rune(a))), strings.ToUpper(string(rune(b)))
    if ua == ub {
        return true
    }
    return strings.ToLower(ua) == strings.ToLower(ub)
}

func indexOfChar(s []uint16, ch int, from int) int {
    if from < 0 {
        from = 0
    }

    /* BMP characters are a single code unit */
    if ch >= 0 && ch < 0x10000 {
        for i := from; i < len(s); i++ {
            if int(s[i]) == ch {
                return i
            }
        }
        return -1
    }

    /* supplementary characters are a surrogate pair */
    if r1, r2 := utf16.EncodeRune(rune(ch)); r1 != 0xfffd {
        for i := from; i < len(s) - 1; i++ {
            if rune(s[i]) == r1 && rune(s[i + 1]) == r2 {
                return i
            }
        }
    }
    return -1
}

func strIndexOfChar(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    from := 0
    if len(args) == 2 {
        from = intArg(args, 1)
    }
    return mkint(p, indexOfChar(recv, intArg(args, 0), from))
}

func indexOf(s []uint16, sub []uint16, from int) int {
    if from >= len(s) {
        if len(sub) == 0 {
            return len(s)
        } else {
            return -1
        }
    }

    /* scan for the first match */
    if from < 0 {
        from = 0
    }
    for i := from; i <= len(s) - len(sub); i++ {
        if regionMatches(s, i, sub) {
            return i
        }
    }
    return -1
}

func strIndexOf(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    from := 0
    if len(args) == 2 {
        from = intArg(args, 1)
    }
    return mkint(p, indexOf(recv, strArg(args, 0), from))
}

func lastIndexOfChar(s []uint16, ch int, from int) int {
    if from < 0 {
        return -1
    }

    /* BMP characters are a single code unit */
    if ch >= 0 && ch < 0x10000 {
        for i := min(from, len(s) - 1); i >= 0; i-- {
            if int(s[i]) == ch {
                return i
            }
        }
        return -1
    }

    /* supplementary characters are a surrogate pair */
    if r1, r2 := utf16.EncodeRune(rune(ch)); r1 != 0xfffd {
        for i := min(from, len(s) - 2); i >= 0; i-- {
            if rune(s[i]) == r1 && rune(s[i + 1]) == r2 {
                return i
            }
        }
    }
    return -1
}

func strLastIndexOfChar(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    from := len(recv) - 1
    if len(args) == 2 {
        from = intArg(args, 1)
    }
    return mkint(p, lastIndexOfChar(recv, intArg(args, 0), from))
}

func lastIndexOf(s []uint16, sub []uint16, from int) int {
    if from = min(from, len(s) - len(sub)); from < 0 {
        return -1
    }

    /* scan backwards for the last match */
    for i := from; i >= 0; i-- {
        if regionMatches(s, i, sub) {
            return i
        }
    }
    return -1
}

func strLastIndexOf(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    from := len(recv)
    if len(args) == 2 {
        from = intArg(args, 1)
    }
    return mkint(p, lastIndexOf(recv, strArg(args, 0), from))
}

func strIsEmpty(p *ast.Program, recv []uint16, _ []ast.Literal) (ast.Literal, error) {
    return mkbool(p, len(recv) == 0)
}

func strLength(p *ast.Program, recv []uint16, _ []ast.Literal) (ast.Literal, error) {
    return mkint(p, len(recv))
}

func strReplace(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    from := args[0].(*ast.CharLit).Char()
    to := args[1].(*ast.CharLit).Char()
    ret := make([]uint16, len(recv))

    /* substitute every occurrence */
    for i, c := range recv {
        if c == from {
            ret[i] = to
        } else {
            ret[i] = c
        }
    }
    return mkstr(p, ret)
}

func strSubstring(p *ast.Program, recv []uint16, args []ast.Literal) (ast.Literal, error) {
    begin, end := intArg(args, 0), len(recv)
    if len(args) == 2 {
        end = intArg(args, 1)
    }
    if begin < 0 || end > len(recv) || begin > end {
        return nil, errOutOfRange
    } else {
        return mkstr(p, recv[begin:end])
    }
}

// isASCII reports whether every code unit is ASCII, case mapping outside of
// it depends on the locale of the runtime.
func isASCII(s []uint16) bool {
    for _, c := range s {
        if c >= 0x80 {
            return false
        }
    }
    return true
}

func strToLowerCase(p *ast.Program, recv []uint16, _ []ast.Literal) (ast.Literal, error) {
    if !isASCII(recv) {
        return nil, errNotFoldable
    } else {
        return p.LiteralString(strings.ToLower(stringof(recv))), nil
    }
}

func strToUpperCase(p *ast.Program, recv []uint16, _ []ast.Literal) (ast.Literal, error) {
    if !isASCII(recv) {
        return nil, errNotFoldable
    } else {
        return p.LiteralString(strings.ToUpper(stringof(recv))), nil
    }
}

func strToString(p *ast.Program, recv []uint16, _ []ast.Literal) (ast.Literal, error) {
    return mkstr(p, recv)
}

func strTrim(p *ast.Program, recv []uint16, _ []ast.Literal) (ast.Literal, error) {
    i, j := 0, len(recv)
    for i < j && recv[i] <= ' ' { i++ }
    for i < j && recv[j - 1] <= ' ' { j-- }
    return mkstr(p, recv[i:j])
}

func strValueOf(p *ast.Program, _ []uint16, args []ast.Literal) (ast.Literal, error) {
    if isSurrogate(args[0]) {
        return nil, errNotFoldable
    } else {
        return p.LiteralString(args[0].ValueString()), nil
    }
}

// evalStringCall evaluates method name of java.lang.String with the given
// receiver and literal arguments.
func evalStringCall(p *ast.Program, sig string, static bool, recv *ast.StringLit, args []ast.Literal) (ret ast.Literal, err error) {
    var ok bool
    var fn _StringMethod

    /* lookup the method */
    if fn, ok = _StringMethods[sig]; !ok {
        return nil, fmt.Errorf("%w: %s", errNotFoldable, sig)
    } else if fn.static != static {
        return nil, fmt.Errorf("%w: static mismatch: %s", errNotFoldable, sig)
    }

    /* instance methods need a receiver */
    var rv []uint16
    if !static {
        if recv == nil {
            return nil, errNotFoldable
        }
        rv = utf16of(recv.Str())
    }

    /* evaluators must never bring the optimizer down */
    defer func() {
        if v := recover(); v != nil {
            ret, err = nil, fmt.Errorf("%w: %v", errNotFoldable, v)
        }
    }()

    /* evaluate the method */
    return fn.eval(p, rv, args)
}
