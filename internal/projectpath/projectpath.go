package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root of the project, for migrations and .env lookup
	Root = filepath.Join(filepath.Dir(b), "../..")
)
