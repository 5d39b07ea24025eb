package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return v
}

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

type CredentialsInput struct {
	Email    string `validate:"required,notblank"`
	Password string `validate:"required,bcryptmax"`
}

type ChatInput struct {
	UserID    string `validate:"required,notblank"`
	SessionID string `validate:"required,notblank"`
	Message   string `validate:"required,notblank"`
	Role      string `validate:"required,oneof=user assistant"`
}

// InputValidation runs the struct tags and turns the first failure into a
// readable message. It does not know about the error taxonomy; callers wrap.
func InputValidation(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	var missing []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", fieldName(fe.Field()), strings.ReplaceAll(fe.Param(), " ", ", "))
		case "bcryptmax":
			return fmt.Errorf("%s must be at most %d bytes", fieldName(fe.Field()), MaxPasswordBytes)
		}
		missing = append(missing, fieldName(fe.Field()))
	}
	if len(missing) == 1 {
		return fmt.Errorf("%s is required", missing[0])
	}
	return fmt.Errorf("%s are required", strings.Join(missing, ", "))
}

func fieldName(f string) string {
	switch f {
	case "UserID":
		return "user_id"
	case "SessionID":
		return "sessionId"
	default:
		return strings.ToLower(f)
	}
}
