package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator"

	"github.com/MKhiriev/go-news-kiosk/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the struct field names of the account request models.
const (
	// FieldUsername targets the display name chosen at registration.
	FieldUsername = "Username"

	// FieldEmail targets the login e-mail address.
	FieldEmail = "Email"

	// FieldPassword targets the plaintext secret.
	FieldPassword = "Password"
)

// emailFormatTag is the custom rule checking the loose e-mail shape
// "something@something.something".
const emailFormatTag = "email_format"

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// fieldErrors maps a failing struct field to the error reported for it.
var fieldErrors = map[string]error{
	FieldUsername: ErrInvalidUsername,
	FieldEmail:    ErrInvalidEmail,
	FieldPassword: ErrInvalidPassword,
}

// AccountValidator implements the Validator interface for the registration
// and login forms using struct tags checked by go-playground/validator.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an AccountValidator with the email_format
// rule registered and returns it as the Validator interface.
func NewAccountValidator() Validator {
	validate := validator.New()
	// registration of a static rule cannot fail
	_ = validate.RegisterValidation(emailFormatTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &AccountValidator{validate: validate}
}

// Validate checks a models.RegisterRequest or models.LoginRequest (value or
// pointer). Every failing field contributes its sentinel (ErrInvalidUsername,
// ErrInvalidEmail, ErrInvalidPassword) to the joined result, so callers can
// match each one with errors.Is.
//
// Optional fields restrict validation to the named subset.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, value, fields...)

	case models.LoginRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if _, ok := fieldErrors[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if mapped, ok := fieldErrors[fe.Field()]; ok {
			errs = append(errs, mapped)
			continue
		}
		errs = append(errs, fmt.Errorf("%s failed on %q", fe.Field(), fe.Tag()))
	}

	return errors.Join(errs...)
}
