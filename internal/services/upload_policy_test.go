package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectPolicy_AcceptsListedExtensionOverLimit(t *testing.T) {
	// A listed drawing format passes regardless of size.
	err := ProjectUploadPolicy{}.Check("assembly.step", 120<<20)
	assert.NoError(t, err)
}

func TestProjectPolicy_AcceptsUnlistedExtensionUnderLimit(t *testing.T) {
	err := ProjectUploadPolicy{}.Check("export.x_t", 5<<20)
	assert.NoError(t, err)
}

func TestProjectPolicy_RejectsUnlistedExtensionOverLimit(t *testing.T) {
	err := ProjectUploadPolicy{}.Check("dump.bin", 51<<20)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "50MB")
}

func TestProjectPolicy_ExtensionIsCaseInsensitive(t *testing.T) {
	err := ProjectUploadPolicy{}.Check("DRAWING.DWG", 200<<20)
	assert.NoError(t, err)
}

func TestCareerPolicy_AcceptsConformingFile(t *testing.T) {
	err := CareerUploadPolicy{}.Check("resume.pdf", 2<<20)
	assert.NoError(t, err)
}

func TestCareerPolicy_RejectsUnlistedExtension(t *testing.T) {
	err := CareerUploadPolicy{}.Check("resume.exe", 1<<20)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestCareerPolicy_RejectsOversizedFile(t *testing.T) {
	// Listed extension is not enough on its own; size is a hard cap.
	err := CareerUploadPolicy{}.Check("portfolio.zip", 11<<20)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestCareerPolicy_SizeAtLimitPasses(t *testing.T) {
	err := CareerUploadPolicy{}.Check("resume.docx", 10<<20)
	assert.NoError(t, err)
}
