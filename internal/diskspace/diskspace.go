// Package diskspace probes filesystem capacity for root folders. The probe
// is advisory: callers keep their last-known values when it fails.
package diskspace

import "golang.org/x/sys/unix"

type Stats struct {
	FreeBytes  int64
	TotalBytes int64
}

// Probe returns free/total bytes of the filesystem holding path.
func Probe(path string) (*Stats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, err
	}
	return &Stats{
		FreeBytes:  int64(stat.Bfree) * int64(stat.Bsize),
		TotalBytes: int64(stat.Blocks) * int64(stat.Bsize),
	}, nil
}
