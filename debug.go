//go:build !persistent_debug

package persistent

const debugging = false

func assert(bool, string) {}
