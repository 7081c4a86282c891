package builtin

// Internal hooks for tests.
var (
	NormalizeScreenshotPath = normalizeScreenshotPath
	CountLines              = countLines
	LineOffset              = lineOffset
	SliceLines              = sliceLines
)
