package builtin

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/anvil"
)

const fsWriteDescription = `
A tool for creating and editing text files.

WHEN TO USE THIS TOOL:
- Use when you need to create a new file, or modify an existing file
- Perfect for updating text-based file formats

HOW TO USE:
- Provide the path to the file you want to create or modify
- Specify the operation to perform: one of ` + "`create`, `strReplace`, or `insert`" + `
- Use ` + "`create`" + ` to create a new file. Required parameter is ` + "`content`" + `. Parent directories will be created if they are missing.
- Use ` + "`strReplace`" + ` to replace and update the content of an existing file.
- Use ` + "`insert`" + ` to insert content at a specific line, or append content to the end of a file.

TIPS:
- To append content to the end of a file, use ` + "`insert`" + ` with no ` + "`insertLine`" + `
`

const fsWriteSchema = `{
    "type": "object",
    "properties": {
        "command": {
            "type": "string",
            "enum": [
                "create",
                "strReplace",
                "insert"
            ],
            "description": "The commands to run. Allowed options are: ` + "`create`, `strReplace`, `insert`" + `"
        },
        "content": {
            "description": "Required parameter of ` + "`create`" + ` and ` + "`insert`" + ` commands.",
            "type": "string"
        },
        "insertLine": {
            "description": "Optional parameter of ` + "`insert`" + ` command. Line is 0-indexed. ` + "`content`" + ` will be inserted at the provided line. If not provided, content will be inserted at the end of the file on a new line, inserting a newline at the end of the file if it is missing.",
            "type": "integer"
        },
        "newStr": {
            "description": "Required parameter of ` + "`strReplace`" + ` command containing the new string.",
            "type": "string"
        },
        "oldStr": {
            "description": "Required parameter of ` + "`strReplace`" + ` command containing the string in ` + "`path`" + ` to replace.",
            "type": "string"
        },
        "replaceAll": {
            "description": "Optional parameter of ` + "`strReplace`" + ` command. Default is false. When true, all instances of ` + "`oldStr`" + ` will be replaced with ` + "`newStr`" + `.",
            "type": "boolean"
        },
        "path": {
            "description": "Path to the file",
            "type": "string"
        }
    },
    "required": [
        "command",
        "path"
    ]
}`

const fsReadDescription = `
A tool for reading text files.

HOW TO USE:
- Provide the path to the file you want to read
- Optionally provide a 1-indexed startLine and endLine to read a range of lines

LIMITATIONS:
- Large files are truncated
`

const fsReadSchema = `{
    "type": "object",
    "properties": {
        "path": {
            "type": "string",
            "description": "Path to the file"
        },
        "startLine": {
            "type": "integer",
            "description": "Optional 1-indexed first line to read"
        },
        "endLine": {
            "type": "integer",
            "description": "Optional 1-indexed last line to read, inclusive"
        }
    },
    "required": [
        "path"
    ]
}`

const lsDescription = `
A tool for listing directory contents.

HOW TO USE:
- Provide the path to the directory you want to view
- Optionally provide a depth to recursively list directory contents
- Optionally provide a list of glob patterns to exclude files and directories from being searched

LIMITATIONS:
- Only 1000 entries will be returned
- Directories containing over 10000 entries will be truncated
`

const lsSchema = `{
    "type": "object",
    "properties": {
        "path": {
            "type": "string",
            "description": "Path to the directory"
        },
        "depth": {
            "type": "integer",
            "description": "Depth of a recursive directory listing",
            "default": 0
        },
        "ignore": {
            "type": "array",
            "description": "List of glob patterns to ignore",
            "items": {
                "type": "string",
                "description": "Glob pattern to ignore"
            }
        }
    },
    "required": [
        "path"
    ]
}`

const imageReadDescription = `
A tool for reading images.

WHEN TO USE THIS TOOL:
- Use when you want to read a file that you know is a supported image

HOW TO USE:
- Provide a list of paths to images you want to read

FEATURES:
- Able to read the following image formats: {IMAGE_FORMATS}
- Can read multiple images in one go

LIMITATIONS:
- Maximum supported image size is 10 MB
`

const imageReadSchema = `{
    "type": "object",
    "properties": {
        "paths": {
            "type": "array",
            "description": "List of paths to images to read",
            "items": {
                "type": "string",
                "description": "Path to an image"
            }
        }
    },
    "required": [
        "paths"
    ]
}`

const executeCmdSchema = `{
    "type": "object",
    "properties": {
        "command": {
            "type": "string",
            "description": "Command to execute"
        }
    },
    "required": [
        "command"
    ]
}`

// Names returns the canonical names of all dispatchable built-in tools.
func Names() []anvil.CanonicalToolName {
	builtIns := anvil.BuiltInToolNames()
	names := make([]anvil.CanonicalToolName, 0, len(builtIns))
	for _, n := range builtIns {
		names = append(names, anvil.BuiltIn(n))
	}
	return names
}

// SpecFor returns the advertised tool spec for a built-in tool. It panics
// when called with a name that has no spec, since that means the tool catalog
// is out of sync with the name enum.
func SpecFor(name anvil.BuiltInToolName) anvil.ToolSpec {
	switch name {
	case anvil.FsRead:
		return spec(name, fsReadDescription, fsReadSchema)
	case anvil.FsWrite:
		return spec(name, fsWriteDescription, fsWriteSchema)
	case anvil.ExecuteCmd:
		return spec(name, executeCmdDescription, executeCmdSchema)
	case anvil.ImageRead:
		return spec(name, imageReadTemplatedDescription(), imageReadSchema)
	case anvil.Ls:
		return spec(name, lsDescription, lsSchema)
	}
	panic(fmt.Sprintf("no tool spec registered for built-in tool %q", name))
}

func spec(name anvil.BuiltInToolName, description, schema string) anvil.ToolSpec {
	return anvil.ToolSpec{
		Name:        string(name),
		Description: description,
		InputSchema: json.RawMessage(schema),
	}
}

func imageReadTemplatedDescription() string {
	formats := anvil.SupportedImageFormats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.ReplaceAll(imageReadDescription, "{IMAGE_FORMATS}", strings.Join(names, ", "))
}
