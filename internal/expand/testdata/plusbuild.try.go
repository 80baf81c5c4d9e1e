//go:build tryexpand
// +build tryexpand

package sample

import tryutils "github.com/zacklukem/try-utils"

// Count returns the payload of v, or 0.
func Count(v tryutils.Option[int]) int {
	n := tryutils.Return(v, 0)
	return n
}
