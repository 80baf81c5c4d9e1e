//go:build tryexpand

package tryutils_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	tryutils "github.com/zacklukem/try-utils"
)

func returnOrFallback(val tryutils.Optional[int]) int {
	v := tryutils.Return(val, 1234)
	return v
}

func returnEarly(val tryutils.Option[int], ran *bool) {
	tryutils.Return(val)
	*ran = true
}

func returnNamed(val tryutils.Option[int]) (n int, err error) {
	n, err = -1, errors.New("absent")
	v := tryutils.Return(val)
	return v, nil
}

func TestReturn(t *testing.T) {
	assert := assert.New(t)

	t.Run("present", func(t *testing.T) {
		assert.Equal(10, returnOrFallback(tryutils.Some(10)))
		assert.Equal(10, returnOrFallback(tryutils.Ok(10)))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Equal(1234, returnOrFallback(tryutils.None[int]()))
		assert.Equal(1234, returnOrFallback(tryutils.Err[int](errors.New("detail"))))
	})

	t.Run("unit", func(t *testing.T) {
		ran := false
		returnEarly(tryutils.None[int](), &ran)
		assert.False(ran, "code after Return should not run")

		returnEarly(tryutils.Some(10), &ran)
		assert.True(ran, "code after Return should run")
	})

	t.Run("named results", func(t *testing.T) {
		n, err := returnNamed(tryutils.None[int]())
		assert.Equal(-1, n)
		assert.EqualError(err, "absent")

		n, err = returnNamed(tryutils.Some(3))
		assert.Equal(3, n)
		assert.NoError(err)
	})
}

func TestContinue(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		count := 0
		for i := 0; i < 10; i++ {
			count++
			_ = tryutils.Continue(tryutils.None[uint32]())
			t.Fatal("unreachable")
		}
		assert.Equal(t, 10, count)
	})

	t.Run("absent result", func(t *testing.T) {
		count := 0
		for i := 0; i < 10; i++ {
			count++
			_ = tryutils.Continue(tryutils.Err[uint32](errors.New("detail")))
			t.Fatal("unreachable")
		}
		assert.Equal(t, 10, count)
	})

	t.Run("labelled", func(t *testing.T) {
		count := 0
	outer:
		for i := 0; i < 10; i++ {
			count++
			for {
				_ = tryutils.Continue(tryutils.None[uint32](), "outer")
				t.Fatal("unreachable")
			}
		}
		assert.Equal(t, 10, count)
	})

	t.Run("present", func(t *testing.T) {
		count := 0
	outer:
		for i := 0; i < 10; i++ {
			count++
			for j := 0; j < 10; j++ {
				val := tryutils.Continue(tryutils.Some[uint32](10), "outer")
				assert.Equal(t, uint32(10), val)
			}
		}
		assert.Equal(t, 10, count)
	})

	t.Run("skips only absent", func(t *testing.T) {
		var seen []int
		for i := 0; i < 6; i++ {
			v := tryutils.Continue(tryutils.FromPair(i, i%2 == 0))
			seen = append(seen, v)
		}
		assert.Equal(t, []int{0, 2, 4}, seen)
	})
}

func TestBreak(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		count := 0
		for {
			count++
			_ = tryutils.Break(tryutils.None[uint32]())
			t.Fatal("unreachable")
		}
		assert.Equal(t, 1, count)
	})

	t.Run("labelled", func(t *testing.T) {
		count := 0
	outer:
		for {
			count++
			for i := 0; i < 10; i++ {
				_ = tryutils.Break(tryutils.None[uint32](), "outer")
				t.Fatal("unreachable")
			}
			t.Fatal("unreachable")
		}
		assert.Equal(t, 1, count)
	})

	t.Run("present", func(t *testing.T) {
		count := 0
	outer:
		for i := 0; i < 10; i++ {
			for j := 0; j < 10; j++ {
				count++
				val := tryutils.Break(tryutils.Some[uint32](10), "outer")
				assert.Equal(t, uint32(10), val)
			}
		}
		assert.Equal(t, 100, count)
	})

	t.Run("inside switch", func(t *testing.T) {
		var seen []int
		for i := 0; i < 10; i++ {
			switch {
			case i%2 == 0:
				v := tryutils.Break(tryutils.FromPair(i, i < 4))
				seen = append(seen, v)
			default:
				seen = append(seen, -i)
			}
		}
		assert.Equal(t, []int{0, -1, 2, -3}, seen)
	})
}

// column is a presence/absence type defined by the caller.
type column struct {
	name string
	set  bool
}

func (c column) Option() tryutils.Option[string] {
	if !c.set {
		return tryutils.None[string]()
	}
	return tryutils.Some(c.name)
}

func TestDirectives_ThirdPartyType(t *testing.T) {
	cols := []column{{"a", true}, {"", false}, {"c", true}}

	var names []string
	for _, c := range cols {
		name := tryutils.Continue[string](c)
		names = append(names, name)
	}
	assert.Equal(t, []string{"a", "c"}, names)
}
