//go:build windows

package builtin

import (
	"fmt"
	"time"
)

func lsPrefix() []string {
	return nil
}

func formatEntry(entry lsEntry) string {
	date := time.Unix(entry.lastModified, 0).Format("Jan 02 15:04")
	return fmt.Sprintf("%c %d %s %s",
		formatFtype(entry.info),
		entry.info.Size(),
		date,
		entry.path,
	)
}
