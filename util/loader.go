package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// SupportedImageExtensions lists the input extensions the decoders accept.
var SupportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp"}

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Name is the file name without directory and extension, used to name
	// the output directory of a batch run.
	Name string
}

// IsSupportedImage reports whether path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ValidateImageFile checks that path exists, is a regular file, and has a
// supported extension.
func ValidateImageFile(path string) error {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Errorf("file not found: %s", path)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	if fi.IsDir() {
		return errors.Errorf("not a file: %s", path)
	}
	if !IsSupportedImage(path) {
		return errors.Errorf("unsupported file extension: %s. Supported extensions: %v",
			filepath.Ext(path), SupportedImageExtensions)
	}
	return nil
}

// LoadDirectoryImageFiles lists the image files of a directory, sorted by
// name. Subdirectories and files with other extensions are skipped.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: The image files found.
// - error: Error if the directory cannot be read.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var files []ImageFile
	for _, entry := range entries {
		if entry.IsDir() || !IsSupportedImage(entry.Name()) {
			continue
		}
		name := entry.Name()
		files = append(files, ImageFile{
			Path: filepath.Join(dir, name),
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}
