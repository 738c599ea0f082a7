/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import "errors"

// Sentinel errors returned from Build. Callers distinguish them with
// errors.Is.
var (
	// ErrCapacityExceeded means the payload does not fit in any version/ECC
	// combination allowed by the builder's restrictions.
	ErrCapacityExceeded = errors.New("qrcode: payload does not fit in the allowed version/error-correction range")

	// ErrUnsupportedVersion means a version restriction falls outside
	// [MinVersion, MaxVersion].
	ErrUnsupportedVersion = errors.New("qrcode: unsupported version")

	// ErrInvalidConfiguration means the builder itself is misconfigured:
	// missing payload, conflicting restrictions, or an out-of-range mask.
	ErrInvalidConfiguration = errors.New("qrcode: invalid configuration")

	// ErrEncodingViolation means an internal invariant was violated: a table
	// lookup disagreed with the geometry it's supposed to describe, or the
	// position walker ran out of modules before the bitstream did. This
	// indicates a bug in this package, not bad caller input.
	ErrEncodingViolation = errors.New("qrcode: internal encoding invariant violated")
)
