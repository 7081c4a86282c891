//go:build !windows

package builtin

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

func lsPrefix() []string {
	return []string{fmt.Sprintf("User id: %d", os.Geteuid())}
}

func formatEntry(entry lsEntry) string {
	date := time.Unix(entry.lastModified, 0).Format("Jan 02 15:04")

	var nlink uint64 = 1
	var uid, gid uint32
	var size int64 = entry.info.Size()
	if stat, ok := entry.info.Sys().(*syscall.Stat_t); ok {
		nlink = uint64(stat.Nlink)
		uid = stat.Uid
		gid = stat.Gid
		size = stat.Size
	}

	return fmt.Sprintf("%c%s %d %d %d %d %s %s",
		formatFtype(entry.info),
		formatMode(uint32(entry.info.Mode().Perm())),
		nlink,
		uid,
		gid,
		size,
		date,
		entry.path,
	)
}

// formatMode renders a permissions mode the way ls does, e.g. 0o644 to
// "rw-r--r--".
func formatMode(mode uint32) string {
	octalToChars := func(val uint32) string {
		switch val {
		case 1:
			return "--x"
		case 2:
			return "-w-"
		case 3:
			return "-wx"
		case 4:
			return "r--"
		case 5:
			return "r-x"
		case 6:
			return "rw-"
		case 7:
			return "rwx"
		default:
			return "---"
		}
	}
	mode &= 0o777
	return octalToChars(mode>>6&0o7) + octalToChars(mode>>3&0o7) + octalToChars(mode&0o7)
}
