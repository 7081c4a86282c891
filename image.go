package anvil

import "strings"

// MaxImageSizeBytes is the largest image the imageRead tool will accept.
const MaxImageSizeBytes = 10 * 1024 * 1024

// ImageFormat identifies a supported raster image format.
type ImageFormat string

const (
	ImagePNG  ImageFormat = "png"
	ImageJPEG ImageFormat = "jpeg"
	ImageGIF  ImageFormat = "gif"
	ImageWebP ImageFormat = "webp"
)

// SupportedImageFormats returns every supported format in stable order.
func SupportedImageFormats() []ImageFormat {
	return []ImageFormat{ImagePNG, ImageJPEG, ImageGIF, ImageWebP}
}

// ParseImageFormat maps a file extension (without the dot, any case) to an
// image format. "jpg" is an alias for jpeg.
func ParseImageFormat(ext string) (ImageFormat, bool) {
	switch strings.ToLower(ext) {
	case "png":
		return ImagePNG, true
	case "jpeg", "jpg":
		return ImageJPEG, true
	case "gif":
		return ImageGIF, true
	case "webp":
		return ImageWebP, true
	}
	return "", false
}

func (f ImageFormat) String() string { return string(f) }

// ImageBlock carries raw image bytes together with their format. The core
// never decodes the bytes; interpreting them is the caller's concern.
type ImageBlock struct {
	Format ImageFormat
	Data   []byte
}
