package usecase

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ResolveRoot ascends from cwd until it reaches a directory named
// projectName and returns the path of that directory. The nearest matching
// ancestor wins. Only the path string is inspected, the filesystem is not
// touched.
func ResolveRoot(cwd, projectName string) (string, error) {
	if projectName == "" || projectName == "." || projectName == ".." ||
		strings.ContainsAny(projectName, "/"+string(filepath.Separator)) {
		return "", goerr.New("invalid project name",
			goerr.V("project_name", projectName),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	dir := filepath.Clean(cwd)
	for {
		if filepath.Base(dir) == projectName {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", goerr.New("project name not found in any ancestor directory of the working directory",
		goerr.V("cwd", cwd),
		goerr.V("project_name", projectName),
		goerr.T(types.ErrTagConfiguration),
	)
}
