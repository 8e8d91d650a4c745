//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"staybook/internal/handler/api"
	"staybook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type MediaHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	dir    string
}

func (s *MediaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.dir = s.T().TempDir()

	handler := api.NewMediaHandler(config.UploadsConfig{
		Dir:         s.dir,
		MaxFileSize: 1 << 20,
	})

	s.router = gin.New()
	s.router.POST("/admin/uploads", handler.UploadImage)
	s.router.POST("/admin/uploads/multiple", handler.UploadImages)
	s.router.GET("/admin/uploads", handler.ListImages)
	s.router.DELETE("/admin/uploads/:filename", handler.DeleteImage)
}

func TestMediaHandlerSuite(t *testing.T) {
	suite.Run(t, new(MediaHandlerTestSuite))
}

type uploadFile struct {
	name    string
	content []byte
}

func (s *MediaHandlerTestSuite) multipartBody(field string, files ...uploadFile) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.name)
		s.Require().NoError(err)
		_, err = part.Write(f.content)
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())
	return body, w.FormDataContentType()
}

func (s *MediaHandlerTestSuite) perform(method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *MediaHandlerTestSuite) decodeBody(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *MediaHandlerTestSuite) storedFiles() []string {
	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (s *MediaHandlerTestSuite) TestUploadImage() {
	s.Run("success: stores the file under a generated name", func() {
		body, ct := s.multipartBody("image", uploadFile{"photo.jpg", []byte("jpeg bytes")})

		rec := s.perform(http.MethodPost, "/admin/uploads", body, ct)
		s.Equal(http.StatusCreated, rec.Code)

		resp := s.decodeBody(rec)
		filename, _ := resp["filename"].(string)
		s.NotEmpty(filename)
		s.NotEqual("photo.jpg", filename)
		s.Equal("/uploads/"+filename, resp["url"])

		_, err := os.Stat(filepath.Join(s.dir, filename))
		s.NoError(err)
	})

	s.Run("error: 400 when no file is attached", func() {
		rec := s.perform(http.MethodPost, "/admin/uploads", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Image file is required")
	})

	s.Run("error: 400 for a disallowed extension", func() {
		body, ct := s.multipartBody("image", uploadFile{"script.sh", []byte("#!/bin/sh")})

		rec := s.perform(http.MethodPost, "/admin/uploads", body, ct)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "images are accepted")
	})

	s.Run("error: 413 for an oversized file", func() {
		body, ct := s.multipartBody("image", uploadFile{"huge.png", bytes.Repeat([]byte("x"), (1<<20)+1)})

		rec := s.perform(http.MethodPost, "/admin/uploads", body, ct)
		s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func (s *MediaHandlerTestSuite) TestUploadImages() {
	s.Run("success: stores every file in the batch", func() {
		body, ct := s.multipartBody("images",
			uploadFile{"one.jpg", []byte("first")},
			uploadFile{"two.png", []byte("second")},
		)

		rec := s.perform(http.MethodPost, "/admin/uploads/multiple", body, ct)
		s.Equal(http.StatusCreated, rec.Code)

		resp := s.decodeBody(rec)
		s.Equal(float64(2), resp["count"])
		s.Len(s.storedFiles(), 2)
	})

	s.Run("error: 400 when no files are attached", func() {
		body, ct := s.multipartBody("images")

		rec := s.perform(http.MethodPost, "/admin/uploads/multiple", body, ct)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "No files uploaded")
	})

	s.Run("error: 400 when the batch exceeds the limit", func() {
		files := make([]uploadFile, 11)
		for i := range files {
			files[i] = uploadFile{fmt.Sprintf("photo-%d.jpg", i), []byte("bytes")}
		}
		body, ct := s.multipartBody("images", files...)

		rec := s.perform(http.MethodPost, "/admin/uploads/multiple", body, ct)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "At most 10 images")
	})

	s.Run("error: one bad file rejects the batch before anything is written", func() {
		before := len(s.storedFiles())
		body, ct := s.multipartBody("images",
			uploadFile{"fine.jpg", []byte("image")},
			uploadFile{"nope.exe", []byte("binary")},
		)

		rec := s.perform(http.MethodPost, "/admin/uploads/multiple", body, ct)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Len(s.storedFiles(), before)
	})
}

func (s *MediaHandlerTestSuite) TestListImages() {
	s.Run("success: empty directory lists nothing", func() {
		rec := s.perform(http.MethodGet, "/admin/uploads", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		resp := s.decodeBody(rec)
		s.Equal(float64(0), resp["count"])
	})

	s.Run("success: lists stored files with size and upload time", func() {
		s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "a.jpg"), []byte("12345"), 0o644))
		s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "b.png"), []byte("123"), 0o644))

		rec := s.perform(http.MethodGet, "/admin/uploads", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		resp := s.decodeBody(rec)
		s.Equal(float64(2), resp["count"])

		files, ok := resp["files"].([]any)
		s.Require().True(ok)
		s.Require().Len(files, 2)

		first, ok := files[0].(map[string]any)
		s.Require().True(ok)
		s.NotEmpty(first["filename"])
		s.NotEmpty(first["url"])
		s.NotZero(first["size"])
		s.NotEmpty(first["uploadedAt"])
	})
}

func (s *MediaHandlerTestSuite) TestDeleteImage() {
	s.Run("success: removes the file and returns 204", func() {
		path := filepath.Join(s.dir, "gone.jpg")
		s.Require().NoError(os.WriteFile(path, []byte("bytes"), 0o644))

		rec := s.perform(http.MethodDelete, "/admin/uploads/gone.jpg", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		_, err := os.Stat(path)
		s.True(os.IsNotExist(err))
	})

	s.Run("error: 400 for a name outside the generated pattern", func() {
		rec := s.perform(http.MethodDelete, "/admin/uploads/config.yaml", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid filename")
	})

	s.Run("error: 404 for a missing file", func() {
		rec := s.perform(http.MethodDelete, "/admin/uploads/missing.jpg", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Image not found")
	})
}
