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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataCodewordCount(t *testing.T) {
	cases := []struct {
		version Version
		ecc     ECC
		want    int
	}{
		{3, Medium, 44},
		{3, Quartile, 34},
		{3, High, 26},
		{6, Low, 136},
		{7, Low, 156},
		{9, Low, 232},
		{9, Medium, 182},
		{12, High, 158},
		{15, Low, 523},
		{16, Quartile, 325},
		{19, High, 341},
		{21, Low, 932},
		{22, Low, 1006},
		{22, Medium, 782},
		{22, High, 442},
		{33, Low, 2071},
		{40, Medium, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d/%v", tc.version, tc.ecc), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.version.DataCodewordCount(tc.ecc))
		})
	}
}

func TestRawDataModules(t *testing.T) {
	cases := map[Version]int{
		1: 208, 2: 359, 3: 567, 6: 1383, 7: 1568,
		12: 3728, 15: 5243, 18: 7211, 22: 10068,
		26: 13652, 32: 19723, 37: 25568, 40: 29648,
	}
	for v, want := range cases {
		assert.Equal(t, want, v.rawDataModules(), "version %d", v)
	}
}

func TestAlignmentPatternCenters(t *testing.T) {
	cases := []struct {
		version Version
		want    []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{8, []int{6, 24, 42}},
		{16, []int{6, 26, 50, 74}},
		{25, []int{6, 32, 58, 84, 110}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{33, []int{6, 30, 58, 86, 114, 142}},
		{39, []int{6, 26, 54, 82, 110, 138, 166}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d", tc.version), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.version.alignmentPatternCenters())
		})
	}
}

func TestVersionWidth(t *testing.T) {
	assert.Equal(t, 21, MinVersion.Width())
	assert.Equal(t, 177, MaxVersion.Width())
}

func TestVersionValid(t *testing.T) {
	assert.False(t, Version(0).Valid())
	assert.True(t, Version(1).Valid())
	assert.True(t, Version(40).Valid())
	assert.False(t, Version(41).Valid())
}
