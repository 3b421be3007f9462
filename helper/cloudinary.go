package helper

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var allowedImageExts = []string{".png", ".jpg", ".jpeg"}

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}

func IsAllowedImage(filename string) bool {
	return slices.Contains(allowedImageExts, strings.ToLower(filepath.Ext(filename)))
}

// UploadImage pushes a form file into the given Cloudinary folder and
// returns the secure URL.
func UploadImage(file *multipart.FileHeader, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	fileReader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer fileReader.Close()

	result, err := cld.Upload.Upload(context.Background(), fileReader, uploader.UploadParams{
		Folder:       folder,
		PublicID:     fmt.Sprintf("%s_%s", folder, uuid.New().String()[:12]),
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// DestroyImage removes a previously uploaded image. Failures are logged
// only; a stale remote image never blocks the admin flow.
func DestroyImage(url string) {
	if url == "" {
		return
	}
	publicID := ExtractPublicID(url)
	if publicID == "" {
		return
	}
	cld, err := InitCloudinary()
	if err != nil {
		log.Printf("cloudinary init failed: %v", err)
		return
	}
	_, err = cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		log.Printf("failed to destroy old image %s: %v", publicID, err)
	}
}

func ExtractPublicID(url string) string {
	// URL shape: https://res.cloudinary.com/<cloud-name>/image/upload/<folder>/<public-id>.<format>
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}
