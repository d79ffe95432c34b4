//go:build persistent_debug

package persistent

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
