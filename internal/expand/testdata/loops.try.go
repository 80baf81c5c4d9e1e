//go:build tryexpand

package sample

import (
	"strconv"

	try "github.com/zacklukem/try-utils"
)

// Sum adds the numeric cells, skipping rows with a bad cell.
func Sum(rows [][]string) int {
	total := 0
outer:
	for _, row := range rows {
		for _, cell := range row {
			n := try.Continue(try.Of(strconv.Atoi(cell)), "outer")
			total += n
		}
	}
	return total
}

// Prefix collects values until the first absent one.
func Prefix(vs []try.Option[int]) []int {
	var out []int
	for i := 0; i < len(vs); i++ {
		var v int = try.Break(vs[i])
		out = append(out, v)
	}
	return out
}

// Evens sums present values at even positions. A switch does not capture
// continue.
func Evens(vs []try.Option[int]) int {
	count := 0
	for i, v := range vs {
		switch i % 2 {
		case 0:
			count += try.Continue(v)
		}
	}
	return count
}

// Drain reads until the channel yields an absent value.
func Drain(ch <-chan try.Option[string]) []string {
	var out []string
	for {
		select {
		case v := <-ch:
			s := try.Break(v)
			out = append(out, s)
		}
	}
	return out
}

// Grid stops at the first absent cell.
func Grid(grid [][]try.Option[int]) int {
	sum := 0
rows:
	for _, row := range grid {
		for _, cell := range row {
			switch {
			default:
				sum += try.Break(cell, "rows")
			}
		}
	}
	return sum
}

// Flatten stops each row at its first absent cell.
func Flatten(grid [][]try.Option[int]) []int {
	var out []int
	for _, row := range grid {
		for _, cell := range row {
			switch {
			case len(out) > 100:
				return out
			default:
				n := try.Break(cell)
				out = append(out, n)
			}
		}
	}
	return out
}
