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

import "fmt"

// VersionConstraint restricts which version the selector may choose:
// either an upper bound it may shrink from, or a version it must use
// exactly (§4.4).
type VersionConstraint struct {
	version  Version
	specific bool
}

// maxVersionConstraint restricts the selector to v or smaller; it
// auto-downsizes to the smallest version the payload fits in.
func maxVersionConstraint(v Version) VersionConstraint {
	return VersionConstraint{version: v, specific: false}
}

// specificVersionConstraint fixes the version, disabling auto-downsizing.
func specificVersionConstraint(v Version) VersionConstraint {
	return VersionConstraint{version: v, specific: true}
}

// ECCConstraint restricts which ECC level the selector may choose: either a
// lower bound it may strengthen from, or a level it must use exactly.
type ECCConstraint struct {
	level    ECC
	specific bool
}

func minECCConstraint(e ECC) ECCConstraint {
	return ECCConstraint{level: e, specific: false}
}

func specificECCConstraint(e ECC) ECCConstraint {
	return ECCConstraint{level: e, specific: true}
}

// selectionResult is the outcome of running §4.4 to completion: the final
// version and ECC level, plus the segments that will be written at that
// version (character-count indicator widths can change across version
// bands, so segments are re-validated, not re-encoded, against the final
// version).
type selectionResult struct {
	version Version
	ecc     ECC
	segs    []Segment
	bits    int
}

// selectVersionAndECC implements §4.4: detect the character set, compute
// the worst-case bit length at the upper-bound version, fail fast if it
// cannot possibly fit, then greedily strengthen ECC and shrink version
// within the caller's restrictions.
func selectVersionAndECC(text string, versionC VersionConstraint, eccC ECCConstraint) (*selectionResult, error) {
	if !versionC.version.Valid() {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, versionC.version)
	}

	charset := detectCharacterSet(text)
	segs, err := buildSegments(text, charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	upper := versionC.version
	bitsAtUpper, ok := totalBits(segs, upper)
	if !ok || bitsAtUpper > upper.DataCodewordCount(eccC.level)*8 {
		return nil, fmt.Errorf("%w: %d bits needed, %d available at version %d level %v",
			ErrCapacityExceeded, bitsAtUpper, upper.DataCodewordCount(eccC.level)*8, upper, eccC.level)
	}

	ecc := eccC.level
	if !eccC.specific {
		for {
			next, more := ecc.Increment()
			if !more || bitsAtUpper > upper.DataCodewordCount(next)*8 {
				break
			}
			ecc = next
		}
	}

	version := upper
	if !versionC.specific {
		for version > MinVersion {
			candidate := version - 1
			bits, ok := totalBits(segs, candidate)
			if !ok || bits > candidate.DataCodewordCount(ecc)*8 {
				break
			}
			version = candidate
		}
	}

	bits, ok := totalBits(segs, version)
	if !ok {
		return nil, fmt.Errorf("%w: segments do not fit their character-count indicators at version %d", ErrEncodingViolation, version)
	}

	return &selectionResult{version: version, ecc: ecc, segs: segs, bits: bits}, nil
}
