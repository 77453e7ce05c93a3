package codegen

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputPath maps a logical file name to its absolute destination.
// A relative rootDir is anchored at workDir; an empty rootDir means workDir
// itself. Exactly one separator is inserted between root and name. The
// function is pure: it touches no ambient state and creates no directories,
// so a name with missing intermediate dirs fails later, at write time.
func ResolveOutputPath(fileName, rootDir, workDir string) string {
	sep := string(os.PathSeparator)
	root := workDir
	if rootDir != "" {
		root = rootDir
		if !filepath.IsAbs(root) {
			root = workDir + sep + root
		}
	}
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	return root + fileName
}
