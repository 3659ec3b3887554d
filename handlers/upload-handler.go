package handler

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strconv"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/brandzone/brand-zone-server/config"
	"github.com/brandzone/brand-zone-server/middleware"
	"github.com/brandzone/brand-zone-server/store"
	"github.com/disintegration/gift"
	"github.com/gofiber/fiber/v2"

	_ "image/gif"
	_ "image/png"
)

const (
	uploadTimeout = 50 * time.Second
	thumbMaxSize  = 480
	thumbQuality  = 85
)

// ClientUploader wraps the object-storage client. The catalog only
// ever stores the public URL it returns.
type ClientUploader struct {
	cl         *storage.Client
	bucketName string
	uploadPath string
}

var (
	uploader     *ClientUploader
	uploaderOnce sync.Once
	uploaderErr  error
)

func getUploader() (*ClientUploader, error) {
	uploaderOnce.Do(func() {
		client, err := storage.NewClient(context.Background())
		if err != nil {
			uploaderErr = err
			return
		}
		uploader = &ClientUploader{
			cl:         client,
			bucketName: config.Config("GCS_BUCKET_NAME"),
			uploadPath: "brand-zone/",
		}
	})
	return uploader, uploaderErr
}

// UploadFile uploads an object and returns the public URL.
func (u *ClientUploader) UploadFile(file io.Reader, originalFilename string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	objectPath := u.uploadPath + timestamp + "_" + originalFilename

	wc := u.cl.Bucket(u.bucketName).Object(objectPath).NewWriter(ctx)
	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("io.Copy: %v", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("Writer.Close: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectPath), nil
}

// SignedUploadURL returns a V4 signed PUT URL so clients can push a
// file straight to the bucket. The eventual public URL is returned
// alongside it.
func (u *ClientUploader) SignedUploadURL(filename string) (signedURL, publicURL string, err error) {
	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	objectPath := u.uploadPath + timestamp + "_" + filename

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "PUT",
		Expires: time.Now().Add(15 * time.Minute),
	}

	signedURL, err = u.cl.Bucket(u.bucketName).SignedURL(objectPath, opts)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate signed URL: %v", err)
	}

	publicURL = fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectPath)
	return signedURL, publicURL, nil
}

// thumbnail shrinks a decoded image to fit the thumbnail box and
// re-encodes it as JPEG.
func thumbnail(src image.Image) ([]byte, error) {
	g := gift.New(gift.ResizeToFit(thumbMaxSize, thumbMaxSize, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadImage accepts a multipart file, stores it in the bucket and
// stores a resized thumbnail next to it. The response carries both
// URLs; the client uses the main one as the src of a new image.
func UploadImage(c *fiber.Ctx) error {
	if _, err := middleware.CheckUserLoggedIn(c); err != nil {
		return unauthorized(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "No file provided",
			"data":    nil,
		})
	}

	blobFile, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error opening the file",
			"data":    nil,
		})
	}
	defer blobFile.Close()

	raw, err := io.ReadAll(blobFile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error reading the file",
			"data":    nil,
		})
	}

	up, err := getUploader()
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "object storage", Err: err})
	}

	url, err := up.UploadFile(bytes.NewReader(raw), file.Filename)
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "object storage", Err: err})
	}

	// Thumbnail is best effort: a file we cannot decode still uploads fine.
	var thumbURL string
	if decoded, _, err := image.Decode(bytes.NewReader(raw)); err == nil {
		if thumb, err := thumbnail(decoded); err == nil {
			thumbURL, _ = up.UploadFile(bytes.NewReader(thumb), "thumb_"+file.Filename+".jpg")
		}
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully uploaded the file",
		"data": fiber.Map{
			"url":          url,
			"thumbnailUrl": thumbURL,
		},
	})
}

// GetUploadURL hands out a signed upload request for direct-to-bucket
// uploads.
func GetUploadURL(c *fiber.Ctx) error {
	if _, err := middleware.CheckUserLoggedIn(c); err != nil {
		return unauthorized(c)
	}

	filename := c.Query("filename")
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "filename is required",
			"data":    nil,
		})
	}

	up, err := getUploader()
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "object storage", Err: err})
	}

	signedURL, publicURL, err := up.SignedUploadURL(filename)
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "object storage", Err: err})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Signed upload URL generated",
		"data": fiber.Map{
			"uploadUrl": signedURL,
			"publicUrl": publicURL,
			"expiresIn": int((15 * time.Minute).Seconds()),
		},
	})
}
