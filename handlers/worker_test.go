package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func newUploadContext(t *testing.T, filename string) *gin.Context {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("jpeg bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/api/workers", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.Request = req
	return c
}

func TestSaveUploadsUsesUniqueTempPaths(t *testing.T) {
	h := &WorkerHandler{}

	files1, cleanup1, err := h.saveUploads(newUploadContext(t, "photo.jpg"))
	if err != nil {
		t.Fatalf("saveUploads: %v", err)
	}
	defer cleanup1()

	files2, cleanup2, err := h.saveUploads(newUploadContext(t, "photo.jpg"))
	if err != nil {
		t.Fatalf("saveUploads: %v", err)
	}
	defer cleanup2()

	if files1.PhotoPath == "" || files2.PhotoPath == "" {
		t.Fatal("expected saved temp paths for both uploads")
	}
	if files1.PhotoPath == files2.PhotoPath {
		t.Fatalf("uploads sharing a client filename must not share a temp path: %s", files1.PhotoPath)
	}
	for _, p := range []string{files1.PhotoPath, files2.PhotoPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected saved file at %s: %v", p, err)
		}
	}
}

func TestSaveUploadsCleanupRemovesFiles(t *testing.T) {
	h := &WorkerHandler{}

	files, cleanup, err := h.saveUploads(newUploadContext(t, "certs.pdf"))
	if err != nil {
		t.Fatalf("saveUploads: %v", err)
	}
	cleanup()
	if _, err := os.Stat(files.PhotoPath); !os.IsNotExist(err) {
		t.Errorf("expected temp file removed after cleanup, stat err: %v", err)
	}
}
