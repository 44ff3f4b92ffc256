package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/titusjan/cmlib/pkg/cmap"
)

// loadLibrary scans the catalog directories under dataDir, showing a
// spinner on stderr unless quiet is set.
func loadLibrary(dataDir string, quiet bool) (*cmap.Library, error) {
	var s *spinner.Spinner
	if !quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " Scanning catalog directories..."
		s.Start()
	}

	lib := cmap.NewLibrary()
	err := lib.LoadCatalogs(dataDir)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return nil, err
	}
	return lib, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
