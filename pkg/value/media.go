package value

import "strings"

var imageExtensions = []string{".png", ".jpg", ".bmp", ".gif"}

// IsBase64Image reports whether s is a base64 data URL holding an image.
func IsBase64Image(s string) bool {
	if s == "" {
		return false
	}
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}

// IsImageURL reports whether s is an http(s) URL ending in a known image
// extension.
func IsImageURL(s string) bool {
	if len(s) <= len("https://") {
		return false
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	ext := s[len(s)-4:]
	for _, candidate := range imageExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
