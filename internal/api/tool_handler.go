package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ucr-mock/internal/domain"
)

// 尚未接 IPFS，固定回傳佔位 hash
const placeholderContentHash = "ipfs://Qm...placeholder"

// 上傳上限
const maxUploadBytes = 32 << 20

type ToolHandler struct{}

func NewToolHandler() *ToolHandler {
	return &ToolHandler{}
}

// Upload 計算上傳檔案的 SHA-256 後丟棄，不做任何儲存
// @Router /api/upload [post]
func (h *ToolHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logrus.Warnf("upload rejected: body over %d bytes", tooLarge.Limit)
		c.JSON(http.StatusRequestEntityTooLarge, domain.UploadResult{Success: false, Message: "File too large"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.UploadResult{Success: false, Message: "No file found"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		logrus.Errorf("upload open: %v", err)
		c.JSON(http.StatusInternalServerError, domain.UploadResult{Success: false, Message: "Upload failed"})
		return
	}
	defer f.Close()

	digest, size, err := sha256Digest(f)
	if err != nil {
		logrus.Errorf("upload hash: %v", err)
		c.JSON(http.StatusInternalServerError, domain.UploadResult{Success: false, Message: "Upload failed"})
		return
	}

	logrus.Infof("upload hashed: %s (%d bytes) %s", fh.Filename, size, digest)
	c.JSON(http.StatusOK, domain.UploadResult{
		Success:     true,
		ContentHash: placeholderContentHash,
		Digest:      digest,
		Size:        size,
	})
}

// 輔助函式：回傳 "sha256:<hex>" 與讀取的位元組數
func sha256Digest(r io.Reader) (string, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, fmt.Errorf("hash content: %w", err)
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), n, nil
}
