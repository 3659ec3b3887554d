package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/brandzone/brand-zone-server/middleware"
	"github.com/brandzone/brand-zone-server/store"
	"github.com/gofiber/fiber/v2"
	"google.golang.org/genai"
)

const generateModel = "imagen-3.0-generate-002"

type GenerateImageRequest struct {
	Prompt         string `json:"prompt" validate:"required,max=1000"`
	NegativePrompt string `json:"negativePrompt"`
	Size           string `json:"size" validate:"omitempty,oneof=1024x1024 1792x1024 1024x1792"`
	Quality        string `json:"quality" validate:"omitempty,oneof=standard hd"`
	Style          string `json:"style" validate:"omitempty,oneof=vivid natural"`
	N              int    `json:"n" validate:"omitempty,min=1,max=4"`
}

var sizeAspectRatios = map[string]string{
	"1024x1024": "1:1",
	"1792x1024": "16:9",
	"1024x1792": "9:16",
}

// buildPrompt folds the style and quality knobs into the prompt text
// the image model receives.
func buildPrompt(in GenerateImageRequest) string {
	prompt := in.Prompt
	if in.Style == "natural" {
		prompt += ". Natural, realistic rendering"
	} else {
		prompt += ". Vivid, striking rendering"
	}
	if in.Quality == "hd" {
		prompt += ", finely detailed"
	}
	return prompt
}

// GenerateImage asks the generation model for one or more images,
// stores the results in the bucket and returns their URLs. Creating a
// catalog entry from a generated image is a separate call.
func GenerateImage(c *fiber.Ctx) error {
	if _, err := middleware.CheckUserLoggedIn(c); err != nil {
		return unauthorized(c)
	}

	var input GenerateImageRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
			"data":    nil,
		})
	}
	if err := store.Validate(&input); err != nil {
		return errorResponse(c, err)
	}
	if input.N == 0 {
		input.N = 1
	}

	ctx := c.Context()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "image generation", Err: err})
	}

	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: int32(input.N),
		OutputMIMEType: "image/png",
	}
	if ratio, ok := sizeAspectRatios[input.Size]; ok {
		cfg.AspectRatio = ratio
	}
	if input.NegativePrompt != "" {
		cfg.NegativePrompt = input.NegativePrompt
	}

	result, err := client.Models.GenerateImages(ctx, generateModel, buildPrompt(input), cfg)
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "image generation", Err: err})
	}
	if len(result.GeneratedImages) == 0 {
		return errorResponse(c, &store.UpstreamError{
			Service: "image generation",
			Err:     fmt.Errorf("no image data in response"),
		})
	}

	up, err := getUploader()
	if err != nil {
		return errorResponse(c, &store.UpstreamError{Service: "object storage", Err: err})
	}

	var urls []string
	var revisedPrompt string
	for i, generated := range result.GeneratedImages {
		if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		if revisedPrompt == "" {
			revisedPrompt = generated.EnhancedPrompt
		}

		filename := fmt.Sprintf("generated_%d_%d.png", time.Now().UnixNano(), i)
		url, err := up.UploadFile(bytes.NewReader(generated.Image.ImageBytes), filename)
		if err != nil {
			return errorResponse(c, &store.UpstreamError{Service: "object storage", Err: err})
		}
		urls = append(urls, url)
	}

	if len(urls) == 0 {
		return errorResponse(c, &store.UpstreamError{
			Service: "image generation",
			Err:     fmt.Errorf("empty image data received"),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully generated image",
		"data": fiber.Map{
			"urls":          urls,
			"revisedPrompt": revisedPrompt,
		},
	})
}
