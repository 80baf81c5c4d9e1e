//go:build tryexpand

package tryutils_test

import (
	"fmt"
	"strconv"

	tryutils "github.com/zacklukem/try-utils"
)

func port(s string) int {
	n := tryutils.Return(tryutils.Of(strconv.Atoi(s)), 8080)
	return n
}

func ExampleReturn() {
	fmt.Println(port("9000"))
	fmt.Println(port("http"))
	// Output:
	// 9000
	// 8080
}

func ExampleContinue() {
	rows := [][]string{{"1", "2"}, {"x", "3"}, {"4"}}

	total := 0
outer:
	for _, row := range rows {
		for _, cell := range row {
			n := tryutils.Continue(tryutils.Of(strconv.Atoi(cell)), "outer")
			total += n
		}
	}
	fmt.Println(total)
	// Output: 7
}

func ExampleBreak() {
	env := map[string]string{"HOME": "/root", "USER": "root"}
	keys := []string{"HOME", "USER", "SHELL", "HOME"}

	for _, k := range keys {
		v := tryutils.Break(tryutils.FromPair(env[k], env[k] != ""))
		fmt.Println(k, v)
	}
	// Output:
	// HOME /root
	// USER root
}
