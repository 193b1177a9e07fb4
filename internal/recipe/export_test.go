package recipe

import "os"

// SetWriteFile swaps the document writer so tests can simulate write failures.
func SetWriteFile(s *Store, fn func(path string, data []byte, mode os.FileMode) error) {
	s.writeFile = fn
}
