package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the custom tags registered:
//
//	youtube_id     an 11 character video id
//	youtube_video  a video id or any supported YouTube URL
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("youtube_id", func(fl validator.FieldLevel) bool {
		return captions.IsVideoID(fl.Field().String())
	})
	_ = v.RegisterValidation("youtube_video", func(fl validator.FieldLevel) bool {
		_, err := captions.ExtractVideoID(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
