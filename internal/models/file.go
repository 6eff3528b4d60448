package models

import (
	"gorm.io/datatypes"
)

// FileDescriptor is one uploaded attachment inside a row's file list.
// Identity is the storage path: the list may be reordered by concurrent
// edits, so removal always matches on Path, never on position.
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	Path string `json:"path"`
	// URL is only set for project files, which live in a public-read
	// bucket. Application files are private and served via signed URLs.
	URL string `json:"url,omitempty"`
}

// FileList is a JSONB-backed list of attachments.
type FileList = datatypes.JSONSlice[FileDescriptor]

// RemoveFileByPath returns the list without the descriptor whose storage
// path matches, and whether a descriptor was removed.
func RemoveFileByPath(files FileList, path string) (FileList, bool) {
	out := make(FileList, 0, len(files))
	removed := false
	for _, f := range files {
		if f.Path == path {
			removed = true
			continue
		}
		out = append(out, f)
	}
	return out, removed
}

// FindFileByPath looks up a descriptor by its storage path.
func FindFileByPath(files FileList, path string) (FileDescriptor, bool) {
	for _, f := range files {
		if f.Path == path {
			return f, true
		}
	}
	return FileDescriptor{}, false
}
