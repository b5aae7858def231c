package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/saqibullah/facelex-backend/insight"
)

const pingNote = "ping from Facelex backend"

// InsightProvider returns the model's raw text for one base64 JPEG.
type InsightProvider interface {
	Analyze(ctx context.Context, frontImage string) (string, error)
}

type AnalyzeRequest struct {
	FrontImage string `json:"front_image" binding:"required"`
}

type Handler struct {
	Provider InsightProvider
}

func NewHandler(p InsightProvider) *Handler {
	return &Handler{Provider: p}
}

func (h *Handler) AnalyzeFace(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large."})
			return
		}
		logf(c, "reading body: %v", err)
	}

	req := decodeAnalyzeRequest(raw)
	if strings.TrimSpace(req.FrontImage) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing front_image (base64)."})
		return
	}

	text, err := h.Provider.Analyze(c.Request.Context(), req.FrontImage)
	if err != nil {
		logf(c, "provider error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"insights": []insight.Insight{}})
		return
	}

	insights, err := insight.Parse(text)
	if err != nil {
		// The client renders an empty list as "you are good".
		logf(c, "unparseable provider text %q: %v", clip(text, 200), err)
		c.JSON(http.StatusOK, gin.H{"insights": []insight.Insight{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"note":   pingNote,
		"method": c.Request.Method,
	})
}

// decodeAnalyzeRequest accepts a JSON object or a JSON string holding one.
// Anything it cannot decode is treated as an empty request.
func decodeAnalyzeRequest(raw []byte) AnalyzeRequest {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return AnalyzeRequest{}
		}
		raw = []byte(inner)
	}

	var req AnalyzeRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		return AnalyzeRequest{}
	}
	return req
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
