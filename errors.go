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

package dce

import (
    `github.com/cloudwego/dce/ast`
)

// InternalError occures when an optimization breaks an invariant of the IR,
// such as removing a mandatory operand or replacing a node with one of an
// incompatible type. It always indicates a defect in the optimizer.
type InternalError = ast.InternalError
