package a

import (
	"fmt"

	try "github.com/zacklukem/try-utils"
	tryutils "github.com/zacklukem/try-utils"
)

func unexpanded(vs []tryutils.Option[int]) int {
	for _, v := range vs {
		n := tryutils.Continue(v) // want `tryutils.Continue is not expanded`
		if n > 10 {
			_ = tryutils.Break(v) // want `tryutils.Break is not expanded`
		}
	}
	return tryutils.Return(tryutils.Some(1), 0) // want `tryutils.Return is not expanded`
}

func aliased(v tryutils.Option[string]) string {
	s := try.Return[string](v, "") // want `tryutils.Return is not expanded`
	return s
}

func expanded(v tryutils.Option[int]) int {
	_tryv1, _tryok1 := tryutils.Get(v)
	if !_tryok1 {
		return 0
	}
	n := _tryv1
	return n
}

func notDirectives(v tryutils.Option[int]) {
	_ = v.Return()
	fmt.Println(tryutils.None[int]())
}

type local struct{}

func (local) Return(v int) int { return v }

func shadowed() int {
	tryutils := local{}
	return tryutils.Return(1)
}
