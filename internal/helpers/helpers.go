package helpers

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	AvatarFolder = "avatars"
	VenueFolder  = "venues"
)

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

// StringTrim normalizes incoming ids: trims spaces and surrounding quotes which
// may occur when clients pass values as JSON strings or templates.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

func GenerateOTP(length int) string {
	digits := "0123456789"
	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteByte(digits[rand.Intn(len(digits))])
	}
	return otp.String()
}

// UploadImages uploads base64/data-URI payloads (or remote URLs) to Cloudinary
// and returns the resulting secure URLs.
func UploadImages(ctx context.Context, cld *cloudinary.Cloudinary, images []string, folder string) ([]string, error) {
	var urls []string

	for i, payload := range images {
		if strings.TrimSpace(payload) == "" {
			fmt.Printf("Skipping empty image payload at index %d\n", i)
			continue
		}
		uploadResult, err := cld.Upload.Upload(ctx, payload, uploader.UploadParams{
			Folder: folder,
			Tags:   []string{"venuehub"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload image %d: %v", i, err)
		}
		urls = append(urls, uploadResult.SecureURL)
	}

	return urls, nil
}
