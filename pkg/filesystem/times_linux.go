//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// createdAt uses the inode change time; Linux stat has no birth time
func createdAt(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
