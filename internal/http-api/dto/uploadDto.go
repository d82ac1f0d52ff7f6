package dto

// UploadPathResponse carries a presigned PUT URL the client uploads the
// avatar to directly, bypassing this server.
type UploadPathResponse struct {
	UploadURL string            `json:"upload_url"`
	Key       string            `json:"key"`
	ExpiresIn int64             `json:"expires_in"` // seconds
	Headers   map[string]string `json:"headers"`    // headers the PUT must carry
}

// UploadCompletedDTO confirms a finished upload by object key.
type UploadCompletedDTO struct {
	Key string `json:"key" binding:"required,max=512"`
}

// UploadCompletedResponse returns the stable retrieval URL persisted on the
// profile.
type UploadCompletedResponse struct {
	AvatarURL string `json:"avatar_url"`
}
