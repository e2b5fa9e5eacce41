package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/go-playground/validator/v10"
)

// userValidator implements [UserValidator] on top of go-playground/validator.
// The struct tags on [models.UserUpdate] hold the per-field rules, this type
// adds the closed-schema checks the tags cannot express (unknown keys, JSON
// value types, empty bodies).
type userValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a [UserValidator].
// The returned value is safe for concurrent use.
func NewUserValidator() UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names so that details match the body keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &userValidator{validate: v}
}

// ValidateUserID parses raw as a positive base-10 integer.
func (u *userValidator) ValidateUserID(raw string) (int64, FieldErrors) {
	var errs FieldErrors

	if raw == "" {
		errs.add(FieldID, msgRequired)
		return 0, errs
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if _, floatErr := strconv.ParseFloat(raw, 64); floatErr == nil {
			errs.add(FieldID, msgNotAnInteger)
		} else {
			errs.add(FieldID, msgNotANumber)
		}
		return 0, errs
	}

	if id <= 0 {
		errs.add(FieldID, msgNotPositive)
		return 0, errs
	}

	return id, nil
}

// ValidateUserUpdate decodes body as a JSON object whose keys are drawn from
// [models.UpdatableFields] and whose values are strings, normalizes the
// values and applies the tag rules of [models.UserUpdate].
//
// Normalization: name is trimmed, email is trimmed and lower-cased, role is
// trimmed.
func (u *userValidator) ValidateUserUpdate(body []byte) (models.UserUpdate, FieldErrors) {
	var errs FieldErrors

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		errs.add(FieldBody, msgBodyRequired)
		return models.UserUpdate{}, errs
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		errs.add(FieldBody, msgBodyNotObject)
		return models.UserUpdate{}, errs
	}

	if len(raw) == 0 {
		errs.add(FieldBody, msgNoFieldsToUpdate)
		return models.UserUpdate{}, errs
	}

	// deterministic order of reported problems
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var update models.UserUpdate
	for _, key := range keys {
		if !slices.Contains(models.UpdatableFields, key) {
			errs.add(key, msgUnknownField)
			continue
		}

		value, ok := decodeString(raw[key])
		if !ok {
			errs.add(key, msgNotAString)
			continue
		}

		switch key {
		case models.FieldName:
			value = strings.TrimSpace(value)
			update.Name = &value
		case models.FieldEmail:
			value = strings.ToLower(strings.TrimSpace(value))
			update.Email = &value
		case models.FieldRole:
			value = strings.TrimSpace(value)
			update.Role = &value
		}
	}

	if len(errs) > 0 {
		return models.UserUpdate{}, errs
	}

	if err := u.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			errs.add(FieldBody, err.Error())
			return models.UserUpdate{}, errs
		}

		for _, fe := range validationErrs {
			errs.add(fe.Field(), messageForTag(fe))
		}
		return models.UserUpdate{}, errs
	}

	return update, nil
}

// decodeString reports whether raw holds a JSON string and returns it.
// JSON null is not accepted as a string.
func decodeString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// messageForTag renders a human readable message for a failed validator tag.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return msgInvalidEmail
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return msgInvalidFieldValue
	}
}
