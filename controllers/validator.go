package controllers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"catalog-service/repository"
	"catalog-service/services"
)

// MaxUploadSize bounds a single image upload.
const MaxUploadSize = 10 * 1024 * 1024 // 10MB

// RequestValidator handles all input validation
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// Struct validates a bound request body against its validate tags.
func (rv *RequestValidator) Struct(v interface{}) error {
	return rv.validate.Struct(v)
}

// ParsePagination reads page/limit query params; invalid or missing values
// fall back to page 1 and the default limit.
func (rv *RequestValidator) ParsePagination(c *gin.Context) repository.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(repository.DefaultLimit)))
	return repository.NormalizePageQuery(page, limit)
}

// formImage assembles the image input for a multipart request: the bound
// "image" form value as URL override plus the optional "image" file part.
// Any FormFile failure is treated as no file sent, so plain form bodies work.
func formImage(c *gin.Context, url string) (services.ImageInput, error) {
	in := services.ImageInput{URL: url}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return in, nil
	}
	if fileHeader.Size > MaxUploadSize {
		return in, errFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return in, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return in, err
	}

	in.Data = data
	in.Filename = fileHeader.Filename
	return in, nil
}
