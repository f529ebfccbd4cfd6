// Package storage keeps uploaded product images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	productsDir = "products"
	// PublicPrefix is where the router serves the upload root.
	PublicPrefix = "/uploads/"
)

var ErrInvalidName = errors.New("invalid image name")

type ImageStore struct {
	root string
}

// NewImageStore creates <root>/products if needed.
func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(root, productsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{root: root}, nil
}

// Save writes r under a fresh random name with the given extension (".png")
// and returns the stored file name.
func (s *ImageStore) Save(r io.Reader, ext string) (string, error) {
	name := uuid.NewString() + ext
	f, err := os.OpenFile(s.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return name, nil
}

// Remove deletes a stored image. A file that is already gone is not an error.
func (s *ImageStore) Remove(name string) error {
	if name == "" || name != filepath.Base(name) {
		return ErrInvalidName
	}
	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *ImageStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// URL is the public path the image is served under.
func (s *ImageStore) URL(name string) string {
	return PublicPrefix + productsDir + "/" + name
}

// FileSystem serves stored files only; directories are reported as missing
// so they are never listed.
func (s *ImageStore) FileSystem() http.FileSystem {
	return filesOnly{http.Dir(s.root)}
}

type filesOnly struct {
	http.FileSystem
}

func (fsys filesOnly) Open(name string) (http.File, error) {
	f, err := fsys.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

func (s *ImageStore) path(name string) string {
	return filepath.Join(s.root, productsDir, filepath.Base(name))
}
