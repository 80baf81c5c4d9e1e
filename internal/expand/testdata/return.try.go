//go:build tryexpand

// Package sample holds Return directives.
package sample

import (
	"errors"
	"strconv"

	tryutils "github.com/zacklukem/try-utils"
)

var errAbsent = errors.New("absent")

// Port parses s, falling back to 8080.
func Port(s string) int {
	n := tryutils.Return(tryutils.Of(strconv.Atoi(s)), 8080)
	return n
}

// Touch records v when present.
func Touch(v tryutils.Option[int], seen *[]int) {
	tryutils.Return(v)
	*seen = append(*seen, v.Raw())
}

// Pair returns both values of p.
func Pair(p tryutils.Option[[2]int]) (int, int, error) {
	xy := tryutils.Return(p, 0, 0, errAbsent)
	return xy[0], xy[1], nil
}

// Lookup reuses a multi-value call as the fallback.
func Lookup(m map[string]int, k string) (int, bool) {
	v := tryutils.Return(tryutils.FromPair(lookup(m, k)), missing())
	return v, true
}

// Named leaves its named results untouched when absent.
func Named(v tryutils.Result[string]) (s string, err error) {
	err = errAbsent
	s = tryutils.Return(v)
	return s, nil
}

func lookup(m map[string]int, k string) (int, bool) {
	v, ok := m[k]
	return v, ok
}

func missing() (int, bool) {
	return -1, false
}

// Closure returns from the function literal only.
func Closure(vs []tryutils.Option[int]) int {
	total := 0
	add := func(v tryutils.Option[int]) {
		n := tryutils.Return(v)
		total += n
	}
	for _, v := range vs {
		add(v)
	}
	return total
}
