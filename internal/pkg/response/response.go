package response

import "github.com/gin-gonic/gin"

// UploadResult is the body of every POST /api/upload response.
// FileID is null unless the upload succeeded.
type UploadResult struct {
	Message string  `json:"message"`
	FileID  *string `json:"fileId"`
}

func Upload(c *gin.Context, statusCode int, message string, fileID *string) {
	c.JSON(statusCode, UploadResult{Message: message, FileID: fileID})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
