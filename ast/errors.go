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
    `strings`
)

const (
    _MaxErrorSource = 64
)

// InternalError is raised (as a panic value) when an optimization breaks an
// invariant of the IR. It always indicates a defect in the optimizer.
type InternalError struct {
    Node   string
    Reason string
}

func (self *InternalError) Error() string {
    return fmt.Sprintf("InternalError(%s): %s", self.Node, self.Reason)
}

// NewInternalError describes node n in a single truncated line of source.
func NewInternalError(n Node, reason string) *InternalError {
    src := strings.Join(strings.Fields(Source(n)), " ")
    if len(src) > _MaxErrorSource {
        src = src[:_MaxErrorSource - 3] + "..."
    }
    return &InternalError {
        Node   : src,
        Reason : reason,
    }
}
