package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUpload_NullFileID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	Upload(c, http.StatusBadRequest, "File is empty", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"File is empty","fileId":null}`, rr.Body.String())
}

func TestUpload_FileID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	id := "12"
	Upload(c, http.StatusOK, "File uploaded successfully", &id)

	assert.JSONEq(t, `{"message":"File uploaded successfully","fileId":"12"}`, rr.Body.String())
}
