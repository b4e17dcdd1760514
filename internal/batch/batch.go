// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch applies the bionic transform across a directory tree in one
// of three mutually exclusive modes: process, restore, clean. Walks are
// single-threaded and whole-file; the first read, write, or decode error
// aborts the run, and files already written before the failure stay written.
package batch

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/natefinch/atomic"
)

// filePerms is the mode for files the tool creates from scratch.
const filePerms = 0o644

// readDocument reads path and validates the content as UTF-8.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8", path)
	}
	return string(data), nil
}

// writeDocument atomically replaces path with content. An existing target
// keeps its permissions (atomic.WriteFile carries them over); a brand-new
// file is normalized to filePerms, since the temp file behind the rename
// is created locked down.
func writeDocument(path, content string) error {
	_, statErr := os.Stat(path)

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return err
	}
	if os.IsNotExist(statErr) {
		return os.Chmod(path, filePerms)
	}
	return nil
}

// derivativePath returns the suffixed output path for an original: the
// suffix goes between the base name and the extension.
func derivativePath(path, suffix, ext string) string {
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// isDerivative reports whether a file name already carries the derivative
// suffix, meaning an earlier run produced it.
func isDerivative(name, suffix, ext string) bool {
	return strings.HasSuffix(name, suffix+ext)
}
