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

// MaskPattern identifies one of the 8 mask patterns defined by ISO/IEC
// 18004 §8.8.1 (§4.9).
type MaskPattern int

const (
	numMaskPatterns = 8
)

// Valid reports whether m names one of the 8 defined mask patterns.
func (m MaskPattern) Valid() bool { return m >= 0 && m < numMaskPatterns }

// invert reports whether mask m flips the module at (row, col), per the
// table in §4.9. Coordinates are row, column, matching the Coordinate
// convention (§3); each formula here is symmetric enough in its two
// operands that the row/column assignment only matters for ref1, ref2,
// and ref4, all three verified against the reference predicate table.
func (m MaskPattern) invert(row, col int) bool {
	switch m {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return (row*col)%2+(row*col)%3 == 0
	case 6:
		return ((row*col)%2+(row*col)%3)%2 == 0
	case 7:
		return ((row+col)%2+(row*col)%3)%2 == 0
	default:
		panic(fmt.Sprintf("qrcode: invalid mask pattern %d", m))
	}
}

// applyMask flips the color of every Filled (data-region, non-function)
// module for which pattern inverts; Static and Reserved modules are
// function patterns or information bits and are never masked. Calling
// this twice with the same pattern is self-inverse.
func (matrix *Matrix) applyMask(pattern MaskPattern) {
	for row := 0; row < matrix.size; row++ {
		for col := 0; col < matrix.size; col++ {
			m := matrix.cells[row][col]
			if !m.IsFilled() {
				continue
			}
			if pattern.invert(row, col) {
				matrix.cells[row][col] = filledModule(m.color.Inverse())
			}
		}
	}
}

// penaltyScore computes the sum of the four N1-N4 penalties defined by
// ISO/IEC 18004 §8.8.2 over every module's current color, function or
// not: N1 penalizes runs of 5+ same-colored modules in a row or column,
// N2 penalizes 2x2 blocks of one color, N3 penalizes the
// finder-pattern-like 1:1:3:1:1 light-dark sequence (with 4 light
// modules on one side), and N4 penalizes deviation of the overall
// dark/light proportion from 50%.
func (matrix *Matrix) penaltyScore() int {
	size := matrix.size
	total := 0

	color := func(row, col int) Color { return matrix.cells[row][col].Color() }

	// N1: adjacent same-colored modules in a row/column, 5 or more.
	for row := 0; row < size; row++ {
		total += runPenalty(size, func(i int) Color { return color(row, i) })
	}
	for col := 0; col < size; col++ {
		total += runPenalty(size, func(i int) Color { return color(i, col) })
	}

	// N2: 2x2 blocks of a single color, 3 points per block.
	for row := 0; row < size-1; row++ {
		for col := 0; col < size-1; col++ {
			c := color(row, col)
			if color(row, col+1) == c && color(row+1, col) == c && color(row+1, col+1) == c {
				total += 3
			}
		}
	}

	// N3: a 1:1:3:1:1 dark:light:dark:light:dark run with 4 light modules
	// immediately before or after it, 40 points per occurrence.
	for row := 0; row < size; row++ {
		total += finderPenalty(size, func(i int) Color { return color(row, i) })
	}
	for col := 0; col < size; col++ {
		total += finderPenalty(size, func(i int) Color { return color(i, col) })
	}

	// N4: deviation of the dark-module percentage (rounded down) from 50%,
	// 10 points per full step of 5.
	dark := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if color(row, col) == Black {
				dark++
			}
		}
	}
	percent := dark * 100 / (size * size)
	total += absInt(percent-50) / 5 * 10

	return total
}

func runPenalty(size int, at func(int) Color) int {
	total := 0
	runColor := at(0)
	runLen := 1
	for i := 1; i < size; i++ {
		c := at(i)
		if c == runColor {
			runLen++
			continue
		}
		if runLen >= 5 {
			total += runLen - 2
		}
		runColor = c
		runLen = 1
	}
	if runLen >= 5 {
		total += runLen - 2
	}
	return total
}

// finderPenalty scans a single row or column for the pattern
// dark:light:dark*3:light:dark (relative widths 1:1:3:1:1), scoring 40
// points whenever it is preceded or followed by at least 4 light
// modules inside the row or column (the symbol edge does not count as
// light).
func finderPenalty(size int, at func(int) Color) int {
	total := 0
	for i := 0; i+6 < size; i++ {
		if at(i) != Black || at(i+1) != White || at(i+2) != Black || at(i+3) != Black ||
			at(i+4) != Black || at(i+5) != White || at(i+6) != Black {
			continue
		}
		lightBefore := countLight(size, at, i-1, -1)
		lightAfter := countLight(size, at, i+7, 1)
		if lightBefore >= 4 || lightAfter >= 4 {
			total += 40
		}
	}
	return total
}

func countLight(size int, at func(int) Color, start, step int) int {
	count := 0
	for i := start; i >= 0 && i < size && count < 4; i += step {
		if at(i) != White {
			break
		}
		count++
	}
	return count
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// chooseMaskPattern tries all 8 mask patterns and returns the one with
// the lowest penaltyScore, per §4.9's auto-selection rule. The matrix is
// left with the winning mask applied.
func chooseMaskPattern(matrix *Matrix) MaskPattern {
	best := MaskPattern(0)
	bestScore := 0
	for p := MaskPattern(0); p < numMaskPatterns; p++ {
		matrix.applyMask(p)
		score := matrix.penaltyScore()
		if p == 0 || score < bestScore {
			best = p
			bestScore = score
		}
		matrix.applyMask(p) // Undo; self-inverse.
	}
	matrix.applyMask(best)
	return best
}
