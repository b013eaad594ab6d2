// Package source loads translation-unit input from disk.
//
// Narrowed from the teacher interpreter's file package: GoMix's
// FileObject/fopen/fread/fwrite/fseek/ftell give a running program stateful
// file I/O, because GoMix is a full interpreter with file handles as
// runtime values. Lumen's front end only ever needs to read one whole
// source file once before lexing begins (spec.md §6: "the reader is an
// external collaborator; it is responsible for file existence checks and
// returning the whole content as a single string") — so this keeps fopen's
// descriptive "could not open file" error convention and drops everything
// else: no handle object, no seek/tell, no write path.
package source

import (
	"fmt"
	"os"
)

// Load reads path in full and returns its contents as a string. Errors are
// wrapped with the path so a CLI driver can report them without extra
// context — the same "ERROR: could not open/read file '%s': %v" shape the
// teacher's fopen/fread use.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open file %q: %w", path, err)
	}
	return string(data), nil
}
