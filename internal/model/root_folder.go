package model

type RootFolder struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
	// FreeSpace and TotalSpace are refreshed from the filesystem when the
	// folder is listed; the stored values are a last-known fallback.
	FreeSpace  int64 `json:"freeSpace"`
	TotalSpace int64 `json:"totalSpace"`
}
