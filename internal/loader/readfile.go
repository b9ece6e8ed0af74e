package loader

import (
	"io"
	"os"

	"github.com/starkandwayne/goutils/ansi"
)

// readURI reads uri from disk, treating "-" as stdin, the same convention
// as the teacher's loadYamlFile/readFile pair (cmd/graft/main.go) collapsed
// into a single call since loader.Loader.Read has no separate open step.
func readURI(uri string) ([]byte, error) {
	if uri == "-" || uri == "" {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return nil, ansi.Errorf("@R{error statting STDIN}: %s", err.Error())
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return nil, ansi.Errorf("@R{error reading STDIN}: no data found")
		}
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(uri)
	if err != nil {
		return nil, ansi.Errorf("@R{error reading file} @m{%s}: %s", uri, err.Error())
	}
	defer f.Close()
	return io.ReadAll(f)
}
