package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignupPersonalRequest is step one of the signup wizard.
type SignupPersonalRequest struct {
	Name             string `form:"name" validate:"required,min=2"`
	Gender           string `form:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth      string `form:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	MobileNumber     string `form:"mobileNumber" validate:"required,min=10,max=15"`
	City             string `form:"city" validate:"required"`
	State            string `form:"state" validate:"required"`
	Country          string `form:"country" validate:"required"`
	ProfileCreatedBy string `form:"profileCreatedBy" validate:"required"`
}

// SignupAccountRequest is step two of the signup wizard.
type SignupAccountRequest struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignupProfileRequest is step three. Only the fields the backend insists
// on are validated; the rest are free-form and pass through as entered.
type SignupProfileRequest struct {
	MaritalStatus  string `form:"maritalStatus" validate:"required"`
	MotherTongue   string `form:"motherTongue" validate:"required"`
	Religion       string `form:"religion" validate:"required"`
	Caste          string `form:"caste" validate:"required"`
	EducationLevel string `form:"educationLevel" validate:"required"`
	Occupation     string `form:"occupation" validate:"required"`
	HeightCm       string `form:"heightCm" validate:"omitempty,number"`
	WeightKg       string `form:"weightKg" validate:"omitempty,number"`
	Bio            string `form:"bio" validate:"omitempty,max=500"`
}

// AdminNewUserRequest is the dashboard's add-user form.
type AdminNewUserRequest struct {
	Name         string `form:"name" validate:"required,min=2"`
	Email        string `form:"email" validate:"required,email"`
	Password     string `form:"password" validate:"required,min=6"`
	Gender       string `form:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth  string `form:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	MobileNumber string `form:"mobileNumber" validate:"required,min=10,max=15"`
}

// fieldMessages maps validation tags to the inline messages shown under
// form controls.
var fieldMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"min":      "This value is too short.",
	"max":      "This value is too long.",
	"oneof":    "Choose one of the listed options.",
	"datetime": "Use the date picker to choose a valid date.",
	"eqfield":  "Passwords do not match.",
	"number":   "Enter a number.",
}

// validationErrors converts a validator error into a field-to-message map
// keyed by form field name (lower camel, matching the form tags).
func validationErrors(err error) map[string]string {
	out := map[string]string{}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range errs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "This value is invalid."
		}
		out[lowerCamel(fe.Field())] = msg
	}
	return out
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
