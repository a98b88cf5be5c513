package bloomify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MaxPictureBytes is the largest profile picture the API accepts.
const MaxPictureBytes = 5 << 20

var (
	// ErrPictureTooLarge is returned before any network I/O for files over
	// MaxPictureBytes.
	ErrPictureTooLarge = errors.New("profile picture exceeds 5 MiB")
	// ErrNotAnImage is returned when the file does not sniff as an image.
	ErrNotAnImage = errors.New("file is not an image")
	// ErrMissingPictureURL is returned when the upload response carries no
	// picture URL in any known location.
	ErrMissingPictureURL = errors.New("upload response has no profile picture url")
)

// Stager creates scratch files for uploads.
type Stager interface {
	Stage(pattern string) (*os.File, error)
}

type tempStager struct{}

func (tempStager) Stage(pattern string) (*os.File, error) {
	return os.CreateTemp("", pattern)
}

// pictureURLPaths lists where upload responses put the new URL, in lookup
// order.
var pictureURLPaths = [][]string{
	{"data", "user", "profile_picture"},
	{"user", "profile_picture"},
	{"profile_picture"},
	{"data", "profile_picture"},
}

// UploadProfilePicture sends the image at path and returns the URL the
// server stored it under. The file is copied to a staging file first; the
// staging file is removed on every path.
func (c *Client) UploadProfilePicture(ctx context.Context, path string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat picture: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("stat picture: %s is a directory", path)
	}
	if info.Size() > MaxPictureBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrPictureTooLarge, info.Size())
	}

	staged, err := c.stageCopy(path)
	if err != nil {
		return "", err
	}
	defer c.removeStaged(staged)

	body, contentType, err := multipartBody(staged, filepath.Base(path))
	if err != nil {
		return "", err
	}

	var payload map[string]any
	if err := c.doWith(ctx, c.upload, http.MethodPost, "/api/users/profile-picture",
		&requestBody{reader: body, contentType: contentType}, &payload); err != nil {
		return "", err
	}
	pictureURL, ok := extractPictureURL(payload)
	if !ok {
		return "", ErrMissingPictureURL
	}
	c.logger.Info("profile picture uploaded", zap.Int64("bytes", info.Size()))
	return pictureURL, nil
}

func (c *Client) stageCopy(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open picture: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := c.stager.Stage("upload-*" + filepath.Ext(path))
	if err != nil {
		return "", fmt.Errorf("stage picture: %w", err)
	}
	name := dst.Name()
	if _, err := io.Copy(dst, io.LimitReader(src, MaxPictureBytes+1)); err != nil {
		_ = dst.Close()
		c.removeStaged(name)
		return "", fmt.Errorf("stage picture: %w", err)
	}
	if err := dst.Close(); err != nil {
		c.removeStaged(name)
		return "", fmt.Errorf("stage picture: %w", err)
	}
	return name, nil
}

func (c *Client) removeStaged(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.logger.Warn("remove staged upload", zap.String("path", name), zap.Error(err))
	}
}

func multipartBody(staged, filename string) (*bytes.Buffer, string, error) {
	data, err := os.ReadFile(staged)
	if err != nil {
		return nil, "", fmt.Errorf("read staged picture: %w", err)
	}
	if len(data) > MaxPictureBytes {
		return nil, "", ErrPictureTooLarge
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", fmt.Errorf("%w (%s)", ErrNotAnImage, mimeType)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="profile_picture"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("build upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("build upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("build upload: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func extractPictureURL(payload map[string]any) (string, bool) {
	for _, path := range pictureURLPaths {
		if v, ok := lookup(payload, path); ok {
			return v, true
		}
	}
	return "", false
}

func lookup(m map[string]any, path []string) (string, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = obj[key]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}
