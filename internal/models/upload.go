package models

// UploadStatus is the lifecycle state of a single file upload.
type UploadStatus string

const (
	UploadIdle      UploadStatus = "idle"
	UploadUploading UploadStatus = "uploading"
	UploadSuccess   UploadStatus = "success"
	UploadError     UploadStatus = "error"
)

// Terminal reports whether no further transition is allowed.
func (s UploadStatus) Terminal() bool {
	return s == UploadSuccess || s == UploadError
}

// UploadItem tracks one selected file through its upload.
type UploadItem struct {
	ID     string       // Opaque handle used to address status updates
	Name   string       // Base name shown in the list
	Path   string       // Local path of the file
	Status UploadStatus // Current lifecycle state
	Err    string       // Failure message when Status is UploadError
}
