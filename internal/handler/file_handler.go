package handler

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"studyhub/backend/internal/database"
	"studyhub/backend/internal/models"
	"studyhub/backend/internal/service"
	"studyhub/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// region --- DTOs ---

// FileResponse defines the structure for an uploaded file listing entry.
type FileResponse struct {
	ID          uint   `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	UploadedAt  string `json:"uploaded_at"`
}

// TextExtractionResponse defines the structure for extracted document text.
type TextExtractionResponse struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

// endregion

// allowedExtensions lists the upload types the dashboard accepts.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".docx": true,
	".doc":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// FileHandler serves the uploaded-file registry endpoints. Files live on disk
// under UploadDir with uuid-based names; only the registry rows reference them.
type FileHandler struct {
	files     *service.FileService
	uploadDir string
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(files *service.FileService, uploadDir string) *FileHandler {
	return &FileHandler{files: files, uploadDir: uploadDir}
}

// Upload godoc
// @Summary      Upload a document
// @Description  Stores an uploaded file (pdf, txt, docx, doc or image) and records it for the caller.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Document"
// @Success      201  {object}  FileResponse
// @Failure      400  {object}  ErrorResponse "Missing file or unsupported type"
// @Failure      500  {object}  ErrorResponse
// @Router       /files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	storedName := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(h.uploadDir, storedName)); err != nil {
		logger.Log.WithError(err).Error("failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	file := models.UserFile{
		UserID:      actingUserID(c),
		FileName:    fileHeader.Filename,
		StoredPath:  storedName,
		ContentType: fileHeader.Header.Get("Content-Type"),
		FileSize:    fileHeader.Size,
	}
	if err := h.files.Create(c.Request.Context(), &file); err != nil {
		// The row is authoritative; remove the orphaned bytes.
		if rmErr := os.Remove(filepath.Join(h.uploadDir, storedName)); rmErr != nil {
			logger.Log.WithError(rmErr).Warn("failed to remove orphaned upload")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFileResponse(file))
}

// List godoc
// @Summary      List own files
// @Description  Returns the caller's uploaded files, newest first, paginated.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200  {object}  PaginatedResponse[FileResponse]
// @Failure      401  {object}  ErrorResponse
// @Router       /files [get]
func (h *FileHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	query := database.DB.Where("user_id = ?", actingUserID(c)).Order("uploaded_at DESC")
	result, err := Paginate[models.UserFile](query, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]FileResponse, 0, len(result.Data))
	for _, file := range result.Data {
		responses = append(responses, newFileResponse(file))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, result.Meta.TotalItems, page, limit))
}

// ExtractText godoc
// @Summary      Extract document text
// @Description  Extracts the plain text of an owned pdf, txt or docx file.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  TextExtractionResponse
// @Failure      400  {object}  ErrorResponse "Type has no text to extract"
// @Failure      404  {object}  ErrorResponse "File not found"
// @Router       /files/{id}/text [get]
func (h *FileHandler) ExtractText(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	file, err := h.files.GetOwned(c.Request.Context(), uint(fileID), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	path := filepath.Join(h.uploadDir, file.StoredPath)

	var text string
	switch strings.ToLower(filepath.Ext(file.FileName)) {
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			respondError(c, err)
			return
		}
		text = string(content)
	case ".pdf":
		text, err = extractPDFText(path)
		if err != nil {
			respondError(c, err)
			return
		}
	case ".docx":
		text, err = extractDocxText(path)
		if err != nil {
			respondError(c, err)
			return
		}
	default:
		respondError(c, service.ErrInvalidInput)
		return
	}

	c.JSON(http.StatusOK, TextExtractionResponse{FileName: file.FileName, Text: text})
}

// Download godoc
// @Summary      Download a file
// @Description  Streams a file the caller owns or has received a share of.
// @Tags         files
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id   path      int  true  "File ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "File not found or not accessible"
// @Router       /files/{id}/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	file, err := h.files.GetAccessible(c.Request.Context(), uint(fileID), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.FileAttachment(filepath.Join(h.uploadDir, file.StoredPath), file.FileName)
}

// Delete godoc
// @Summary      Delete a file
// @Description  Deletes an owned file along with every share of it, then removes it from disk.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  map[string]string "{"message": "File deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "File not found"
// @Router       /files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	storedPath, err := h.files.Delete(c.Request.Context(), actingUserID(c), uint(fileID))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := os.Remove(filepath.Join(h.uploadDir, storedPath)); err != nil && !os.IsNotExist(err) {
		// The registry row is already gone; the leftover bytes are harmless.
		logger.Log.WithError(err).Warn("failed to remove stored file")
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

// region --- Helpers ---

func newFileResponse(file models.UserFile) FileResponse {
	return FileResponse{
		ID:          file.ID,
		FileName:    file.FileName,
		ContentType: file.ContentType,
		FileSize:    file.FileSize,
		UploadedAt:  file.UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plainText); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractDocxText pulls the visible text out of a docx container: the
// document is a zip whose word/document.xml holds runs of <w:t> text, with
// <w:p> paragraph boundaries.
func extractDocxText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		var sb strings.Builder
		decoder := xml.NewDecoder(rc)
		inText := false
		for {
			token, err := decoder.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", err
			}

			switch t := token.(type) {
			case xml.StartElement:
				if t.Name.Local == "t" {
					inText = true
				}
			case xml.EndElement:
				if t.Name.Local == "t" {
					inText = false
				}
				if t.Name.Local == "p" {
					sb.WriteByte('\n')
				}
			case xml.CharData:
				if inText {
					sb.Write(t)
				}
			}
		}
		return sb.String(), nil
	}

	return "", service.ErrInvalidInput
}

// endregion
