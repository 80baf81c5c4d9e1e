//go:build tryexpand

package sample

// Identity has nothing to expand.
func Identity(v int) int {
	return v
}
