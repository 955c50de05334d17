package vietflux

import "github.com/ThanhNguyxn/vietflux-ime/internal/keymap"

// CompileKeymap validates a CUE keymap document and compiles it to a
// Definition for WithDefinition. filename labels positions in compile
// errors; it does not have to name a real file.
func CompileKeymap(data []byte, filename string) (*Definition, error) {
	return keymap.Compile(data, filename)
}

// LoadKeymap reads and compiles a keymap file.
func LoadKeymap(path string) (*Definition, error) {
	return keymap.Load(path)
}
