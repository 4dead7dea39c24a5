// utils/file_utils.go
package utils

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/disintegration/imaging"

	"github.com/oohdesk/oohdesk_backend/config"
)

const (
	// Base directory for locally stored uploads
	uploadBaseDir = "uploads"
	// Base URL for serving local files
	baseURL = "/uploads"
	// Maximum file size (10MB)
	maxFileSize = 10 * 1024 * 1024

	thumbnailWidth = 320
)

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	reg := regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	return reg.ReplaceAllString(filename, "")
}

// objectPath keys uploads by upload timestamp + original filename. There is
// deliberately no collision check; the timestamp prefix is the only namespacing.
func objectPath(subDir, filename string) string {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), cleanFilename(filename))
	return filepath.ToSlash(filepath.Join(subDir, name))
}

// InitializeStorage creates the directories for local file storage
func InitializeStorage() error {
	dirs := []string{
		uploadBaseDir,
		filepath.Join(uploadBaseDir, "brands"),
		filepath.Join(uploadBaseDir, "vendors"),
		filepath.Join(uploadBaseDir, "thumbnails"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}

// UploadFile stores a file and returns its public URL. When the Firebase
// storage bucket is configured the object goes there; otherwise it lands in
// the local uploads directory served statically. The browser-supplied content
// type is trusted as-is.
func UploadFile(ctx context.Context, fileData []byte, filename, contentType, subDir string) (string, error) {
	if len(fileData) > maxFileSize {
		return "", fmt.Errorf("file too large. Maximum size is %d bytes", maxFileSize)
	}

	path := objectPath(subDir, filename)

	if bucket := config.StorageBucket(ctx); bucket != nil {
		return uploadToBucket(ctx, bucket, fileData, path, contentType)
	}

	return uploadToDisk(fileData, path)
}

// UploadFormFile reads a multipart file header and stores its content
func UploadFormFile(ctx context.Context, file *multipart.FileHeader, subDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	fileData, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %v", err)
	}

	return UploadFile(ctx, fileData, file.Filename, file.Header.Get("Content-Type"), subDir)
}

// UploadImageThumbnail decodes an image, scales it down to the dashboard's
// list-view width and stores the JPEG under thumbnails/.
func UploadImageThumbnail(ctx context.Context, fileData []byte, filename string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(fileData))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	resized := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %v", err)
	}

	base := strings.TrimSuffix(cleanFilename(filename), filepath.Ext(filename))
	return UploadFile(ctx, buf.Bytes(), base+".jpg", "image/jpeg", "thumbnails")
}

func uploadToBucket(ctx context.Context, bucket *gcs.BucketHandle, fileData []byte, path, contentType string) (string, error) {
	obj := bucket.Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(fileData); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload %s: %v", path, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("failed to publish object %s: %v", path, err)
	}

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read object attrs %s: %v", path, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", attrs.Bucket, attrs.Name), nil
}

func uploadToDisk(fileData []byte, path string) (string, error) {
	fullPath := filepath.Join(uploadBaseDir, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %v", filepath.Dir(fullPath), err)
	}

	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %v", fullPath, err)
	}

	return fmt.Sprintf("%s/%s", baseURL, path), nil
}
