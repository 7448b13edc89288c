package drop

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Expand lists the regular files named by paths, in order. A directory
// contributes every regular file below it, depth first in lexical order.
// Symlinks to files are followed, symlinked directories are not. Missing
// entries and unreadable directories are skipped. The only error is
// the context's.
func Expand(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		if fi.Mode().IsRegular() {
			files = append(files, p)
			continue
		}
		if !fi.IsDir() {
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() || d.Type()&fs.ModeSymlink != 0 && isRegularFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return files, err
		}
	}
	return files, nil
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
