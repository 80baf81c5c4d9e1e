// Copyright 2026 The try-utils Authors.

//go:build tryexpand

package sample

import tryutils "github.com/zacklukem/try-utils"

type cell struct {
	text string
}

func (c cell) Option() tryutils.Option[string] {
	if c.text == "" {
		return tryutils.None[string]()
	}
	return tryutils.Some(c.text)
}

// Texts keeps the text of non-empty cells.
func Texts(cells []cell) []string {
	var out []string
	for _, c := range cells {
		// Empty cells are skipped.
		text := tryutils.Continue[string](c) // explicit type argument
		out = append(out, text)
	}
	return out
}
