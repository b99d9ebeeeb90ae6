package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkrenn/courseflow/catalog"
	"github.com/mkrenn/courseflow/directory"
	"github.com/mkrenn/courseflow/normalize"
)

func loadRawCatalog(path string) ([]catalog.RawDepartment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
	}
	var departments []catalog.RawDepartment
	if err := json.Unmarshal(data, &departments); err != nil {
		return nil, fmt.Errorf("could not decode catalog %s: %w", path, err)
	}
	if err := catalog.ValidateRaw(departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func loadDirectory(path string) ([]directory.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %s: %w", path, err)
	}
	var entries []directory.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not decode directory %s: %w", path, err)
	}
	return entries, nil
}

// normalizeFromFiles runs the whole normalization half: validate the raw
// tree, build the matcher from the directory snapshot, walk the catalog.
func normalizeFromFiles(catalogPath string, directoryPath string, maxDistance int) ([]catalog.NormalizedDepartment, error) {
	departments, err := loadRawCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	entries, err := loadDirectory(directoryPath)
	if err != nil {
		return nil, err
	}
	matcher, err := directory.NewMatcher(entries, directory.WithMaxDistance(maxDistance))
	if err != nil {
		return nil, err
	}
	return normalize.Catalog(departments, matcher), nil
}
