package builtin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/fwojciec/anvil"
)

// ImageRead reads one or more images from disk and returns them as image
// output items.
type ImageRead struct {
	Paths []string
}

func (ImageRead) builtInTool() {}

func (r *ImageRead) Validate(ctx context.Context, sys anvil.System) error {
	paths, err := r.processedPaths(sys)
	if err != nil {
		return err
	}
	var errs []string
	for _, path := range paths {
		if _, ok := anvil.ParseImageFormat(extension(path)); !ok {
			errs = append(errs, fmt.Sprintf("'%s' is not a supported image type", path))
			continue
		}
		md, err := os.Lstat(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("failed to read file metadata for path %s: %s", path, err))
			continue
		}
		if !md.Mode().IsRegular() {
			errs = append(errs, fmt.Sprintf("'%s' is not a file", path))
			continue
		}
		if md.Size() > anvil.MaxImageSizeBytes {
			errs = append(errs, fmt.Sprintf(
				"'%s' has size %d which is greater than the max supported size of %d",
				path, md.Size(), anvil.MaxImageSizeBytes,
			))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

// Execute reads every requested image. A failure on any path fails the whole
// call; the validate step is expected to catch most of them beforehand.
func (r *ImageRead) Execute(ctx context.Context, sys anvil.System) (anvil.ToolExecutionOutput, error) {
	paths, err := r.processedPaths(sys)
	if err != nil {
		return anvil.ToolExecutionOutput{}, err
	}
	var items []anvil.OutputItem
	var errs []string
	for _, path := range paths {
		block, err := readImage(path)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		items = append(items, anvil.ImageItem{Image: block})
	}
	if len(errs) > 0 {
		return anvil.ToolExecutionOutput{}, anvil.DomainErrorf("%s", strings.Join(errs, "\n"))
	}
	return anvil.NewOutput(items...), nil
}

func (r *ImageRead) processedPaths(sys anvil.System) ([]string, error) {
	paths := make([]string, 0, len(r.Paths))
	for _, path := range r.Paths {
		p, err := canonicalPath(sys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to process path %s: %w", path, err)
		}
		paths = append(paths, normalizeScreenshotPath(p, runtime.GOOS))
	}
	return paths, nil
}

// readImage reads an image if it is a supported type and within the size
// limit, returning a human and model friendly error message otherwise.
func readImage(path string) (anvil.ImageBlock, error) {
	ext := extension(path)
	if ext == "" {
		return anvil.ImageBlock{}, errors.New("missing extension")
	}
	format, ok := anvil.ParseImageFormat(ext)
	if !ok {
		return anvil.ImageBlock{}, fmt.Errorf("unsupported format: %s", ext)
	}

	md, err := os.Lstat(path)
	if err != nil {
		return anvil.ImageBlock{}, fmt.Errorf("failed to read file metadata for %s: %s", path, err)
	}
	if md.Size() > anvil.MaxImageSizeBytes {
		return anvil.ImageBlock{}, fmt.Errorf(
			"image at %s has size %d bytes, but the max supported size is %d",
			path, md.Size(), anvil.MaxImageSizeBytes,
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return anvil.ImageBlock{}, fmt.Errorf("failed to read image at %s: %s", path, err)
	}
	return anvil.ImageBlock{Format: format, Data: data}, nil
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

var macScreenshotPattern = regexp.MustCompile(`Screenshot \d{4}-\d{2}-\d{2} at \d{1,2}\.\d{2}\.\d{2} [AP]M`)

// normalizeScreenshotPath rewrites macOS screenshot paths to use the narrow
// no-break space the Finder actually inserts between the timestamp and the
// AM/PM marker. The model treats that character as a plain space and would
// otherwise hand back a path that does not exist.
func normalizeScreenshotPath(path, goos string) string {
	if goos != "darwin" || !strings.Contains(path, "Screenshot") {
		return path
	}
	if !macScreenshotPattern.MatchString(path) {
		return path
	}
	pos := strings.Index(path, " at ")
	if pos < 0 {
		return path
	}
	return path[:pos+4] + strings.ReplaceAll(path[pos+4:], " ", " ")
}

var _ BuiltInTool = (*ImageRead)(nil)
