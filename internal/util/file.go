package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// 允许上传的视频扩展名
var allowedVideoExts = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
}

// ValidateVideoExt 校验视频文件扩展名（mp4/mov/avi）
func ValidateVideoExt(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedVideoExts[ext] {
		return ErrInvalidVideoType
	}
	return nil
}

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/", "video/", "application/pdf"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// IsVideo 检测是否为视频
func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/") || mimeType == "application/x-mpegURL"
}
