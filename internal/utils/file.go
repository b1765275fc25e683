// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// IsTempFile reports whether name is a temporary file left behind by an
// interrupted WriteFileAtomic of a file ending in ext. Temporary files are
// named after their target followed by a random decimal suffix, for example
// "abc.json123456" for "abc.json".
func IsTempFile(name, ext string) bool {
	i := strings.LastIndex(name, ext)
	if i <= 0 {
		return false
	}

	suffix := name[i+len(ext):]
	if suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// WriteFileAtomic replaces path with data so that readers observe either the
// previous content or the new content, never a partial file.
//
// The write itself is done by [atomic.WriteFile]: a synced temporary file in
// the same directory is moved over path (MoveFileEx on Windows, rename
// elsewhere). The result is then chmod-ed to perm and the directory is synced
// on a best-effort basis. On failure path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("atomic write: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat written file: %w", err)
	}
	if info.Mode().Perm() != perm {
		if err = os.Chmod(path, perm); err != nil {
			return fmt.Errorf("chmod written file: %w", err)
		}
	}

	dir := filepath.Dir(path)
	syncDir(dir)
	return nil
}

// syncDir flushes directory metadata so a completed rename survives a crash.
// Not every platform supports it; errors are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
