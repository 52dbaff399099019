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

// TypeOracle answers the program-wide questions the optimizer cannot derive
// from the subtree it is looking at. Answers must not change while an
// optimizer run is in progress.
type TypeOracle interface {
    // IsInstantiatedType reports whether any value of type t may exist at
    // runtime.
    IsInstantiatedType(t Type) bool

    // HasClinit reports whether initializing class c still runs any code.
    HasClinit(c *ClassType) bool

    // CheckClinit reports whether code in class from must trigger the static
    // initializer of class to before touching its static members.
    CheckClinit(from *ClassType, to *ClassType) bool
}

// Oracle is a snapshot of the program facts taken when it is created (or
// refreshed). Until MarkInstantiated is called, every class is considered
// instantiated.
type Oracle struct {
    prog    *Program
    live    map[*ClassType]struct{}
    clinits map[*ClassType]bool
}

func NewOracle(prog *Program) *Oracle {
    ret := &Oracle{prog: prog}
    ret.Refresh()
    return ret
}

// Refresh recomputes the static initializer facts from the current program.
func (self *Oracle) Refresh() {
    self.clinits = make(map[*ClassType]bool, len(self.prog.Classes))

    /* compute for every class, supers first if needed */
    for _, c := range self.prog.Classes {
        self.computeClinit(c)
    }
}

func (self *Oracle) computeClinit(c *ClassType) bool {
    if c == nil {
        return false
    }

    /* check for memorized values */
    if v, ok := self.clinits[c]; ok {
        return v
    }

    /* initializing a class initializes its super class first */
    ok := !IsEmpty(c.Clinit().Body) || self.computeClinit(c.Super)
    self.clinits[c] = ok
    return ok
}

// MarkInstantiated switches the oracle to explicit mode, only the classes
// marked (and their super classes) are instantiated.
func (self *Oracle) MarkInstantiated(classes ...*ClassType) {
    if self.live == nil {
        self.live = make(map[*ClassType]struct{}, len(classes))
    }
    for _, c := range classes {
        self.live[c] = struct{}{}
    }
}

func (self *Oracle) IsInstantiatedType(t Type) bool {
    switch v := t.(type) {
        case *NullType      : return false
        case *PrimitiveType : return true
        case *ClassType     : return self.isLive(v)
        default             : return false
    }
}

func (self *Oracle) isLive(t *ClassType) bool {
    if self.live == nil {
        return true
    }

    /* some instantiated class must be a subclass of t */
    for c := range self.live {
        if c.IsSubclassOf(t) {
            return true
        }
    }
    return false
}

func (self *Oracle) HasClinit(c *ClassType) bool {
    return self.clinits[c]
}

func (self *Oracle) CheckClinit(from *ClassType, to *ClassType) bool {
    switch {
        case to == nil || !self.HasClinit(to) : return false
        case from == nil                      : return true
        case from.IsSubclassOf(to)            : return false
        default                               : return true
    }
}
