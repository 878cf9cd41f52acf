package user

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/payload"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks a request DTO and reports the first failing field.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperror.Validation(fe.Field(), fmt.Sprintf("failed the %q rule", fe.Tag()))
	}
	return apperror.Validation("body", err.Error())
}

type Patch struct {
	Email       payload.Opt[string]
	FullName    payload.Opt[string]
	FirstName   payload.Opt[string]
	LastName    payload.Opt[string]
	PhoneNumber payload.Opt[string]
	Password    payload.Opt[string]
	Role        payload.Opt[string]
	Username    payload.Opt[string]
}

var Fields = payload.Fields[Patch]{
	payload.String("email", func(p *Patch) *payload.Opt[string] { return &p.Email }).
		NotNull().
		Check(validEmail),
	payload.String("fullName", func(p *Patch) *payload.Opt[string] { return &p.FullName }).
		Aliases("fullName", "full_name", "name").
		NotNull().
		Check(payload.NotBlank),
	payload.String("firstName", func(p *Patch) *payload.Opt[string] { return &p.FirstName }).
		Aliases("firstName", "first_name"),
	payload.String("lastName", func(p *Patch) *payload.Opt[string] { return &p.LastName }).
		Aliases("lastName", "last_name"),
	payload.String("phoneNumber", func(p *Patch) *payload.Opt[string] { return &p.PhoneNumber }).
		Aliases("phoneNumber", "phone_number", "phone").
		NotNull().
		Check(payload.NotBlank, payload.MaxLen(32)),
	payload.String("password", func(p *Patch) *payload.Opt[string] { return &p.Password }).
		NotNull().
		Check(payload.NotBlank, payload.MaxLen(72)),
	payload.String("role", func(p *Patch) *payload.Opt[string] { return &p.Role }).
		Default(RoleEmployee).
		NotNull().
		Check(payload.NotBlank),
	payload.String("username", func(p *Patch) *payload.Opt[string] { return &p.Username }).
		Aliases("username", "userName"),
}

var errInvalidEmail = errors.New("must be a valid email address")

func validEmail(v string) error {
	if err := validate.Var(v, "required,email"); err != nil {
		return errInvalidEmail
	}
	return nil
}

// apply copies everything but the password onto u; the service hashes that.
func (p Patch) apply(u *User) {
	p.Email.Apply(&u.Email)
	p.FullName.Apply(&u.FullName)
	p.FirstName.Apply(&u.FirstName)
	p.LastName.Apply(&u.LastName)
	p.PhoneNumber.Apply(&u.PhoneNumber)
	p.Role.Apply(&u.Role)
	p.Username.ApplyPtr(&u.Username)
	if u.Username != nil && *u.Username == "" {
		u.Username = nil
	}
}
