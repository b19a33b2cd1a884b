package parse

import "github.com/google/shlex"

// Split splits a single command-line string into arguments using shell
// quoting rules.
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
