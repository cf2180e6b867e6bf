package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

var (
	ErrInvalidImageURL = errors.New("image URL must be an absolute http(s) URL")
	ErrInvalidSlug     = errors.New("slug may contain lowercase letters, digits and single hyphens")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerCustom(v)
	return &AppValidator{validate: v}
}

// ValidateImageURL accepts absolute http and https URLs.
func (av *AppValidator) ValidateImageURL(url string) error {
	if err := av.validate.Var(url, "required,url"); err != nil {
		return ErrInvalidImageURL
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return ErrInvalidImageURL
	}
	return nil
}

// ValidateSlug checks the gallery slug format.
func (av *AppValidator) ValidateSlug(slug string) error {
	if err := av.validate.Var(slug, "required,max=64,slug"); err != nil {
		return ErrInvalidSlug
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustom(v)
	}
}

func registerCustom(v *validator.Validate) {
	_ = v.RegisterValidation("slug", slugFL)
	_ = v.RegisterValidation("reaction", reactionFL)
	_ = v.RegisterValidation("notblank", notBlankFL)
}

func slugFL(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// reactionFL accepts the known reaction types.
func reactionFL(fl validator.FieldLevel) bool {
	return entity.ReactionType(fl.Field().String()).IsValid()
}

func notBlankFL(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
