package dto

import (
	"io"
)

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// FilePayload is a pre-uploaded attachment echoed back by the client
// when it submits the project form.
type FilePayload struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	Path string `json:"path" validate:"required"`
	URL  string `json:"url"`
}

// SubmitProjectRequest is the public project submission payload. Field
// naming matches what the site's form already sends.
type SubmitProjectRequest struct {
	Name               string        `json:"name" validate:"required"`
	Email              string        `json:"email" validate:"required,email"`
	Phone              string        `json:"phone"`
	Company            string        `json:"company"`
	ProjectDescription string        `json:"projectDescription" validate:"required"`
	Files              []FilePayload `json:"files" validate:"dive"`
}

// UploadFile is one incoming multipart file, decoupled from
// multipart.FileHeader so services stay testable.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// RejectedFile reports one attachment that failed the upload policy.
// Career applications reject per file; the remaining files proceed.
type RejectedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
