package storage

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const thumbWidth = 320

// ImageStore keeps uploaded files out of handler code so the database write
// stays the single authoritative step; handlers call Delete as compensation
// when a request fails after its upload already landed.
type ImageStore interface {
	// Save stores an uploaded file under subdir and returns its relative reference.
	Save(file *multipart.FileHeader, subdir string) (string, error)
	// Delete removes a stored file by its relative reference. Best effort.
	Delete(ref string)
	// URL turns a stored reference into an absolute link. References that are
	// already absolute pass through unchanged.
	URL(ref string) string
}

// DiskStore writes files under Root and serves them under BaseURL/uploads.
type DiskStore struct {
	Root    string
	BaseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Save(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.Root, subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)
	savePath := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(savePath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	writeThumbnail(savePath)

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

func (s *DiskStore) Delete(ref string) {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return
	}
	path := filepath.Join(s.Root, filepath.FromSlash(ref))
	os.Remove(path)
	os.Remove(thumbPath(path))
}

func (s *DiskStore) URL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.BaseURL + "/uploads/" + strings.TrimLeft(ref, "/")
}

func thumbPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb.jpg"
}

// writeThumbnail renders a small preview next to the original. Non-image
// uploads (licenses, PDFs) are skipped silently.
func writeThumbnail(path string) {
	in, err := os.Open(path)
	if err != nil {
		return
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return
	}

	thumb := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
	out, err := os.Create(thumbPath(path))
	if err != nil {
		return
	}
	defer out.Close()
	jpeg.Encode(out, thumb, nil)
}
