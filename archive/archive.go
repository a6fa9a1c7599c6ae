/*
 * archive.go, part of golion.
 *
 *
 * Copyright 2026 The golion authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package archive bundles the files of a simulation run in a
// zstd-compressed tar file.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Bundle writes the given files to a tar.zst archive at dst. Relative
// names are taken from root, and stored as given. Absolute names are
// stored under sources/ with their base name. Files that do not exist
// are skipped and returned.
func Bundle(dst, root string, files []string) (skipped []string, err error) {
	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return nil, err
	}
	tw := tar.NewWriter(zw)
	seen := make(map[string]bool)
	for _, f := range files {
		path, name := filepath.Join(root, f), filepath.ToSlash(f)
		if filepath.IsAbs(f) {
			path, name = f, "sources/"+filepath.Base(f)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		err := addFile(tw, path, name)
		if errors.Is(err, fs.ErrNotExist) {
			skipped = append(skipped, f)
			continue
		}
		if err != nil {
			zw.Close()
			return skipped, err
		}
	}
	if err := tw.Close(); err != nil {
		zw.Close()
		return skipped, err
	}
	return skipped, zw.Close()
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// List returns the names of the files in a tar.zst archive.
func List(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	tr := tar.NewReader(zr)
	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return names, fmt.Errorf("read archive %s: %w", path, err)
		}
		names = append(names, hdr.Name)
	}
}
