package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-message-keeper/models"
)

// Field names understood by [RequestValidator] for field-level scoping.
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldFlags        = "flags"
	FieldName         = "name"
	FieldExpireAfter  = "expire_after"
	FieldExpiresAfter = "expires_after"
	FieldIsTransient  = "is_transient"
	FieldFileName     = "file_name"
	FieldResource     = "resource"
	FieldPermissions  = "permissions"
	FieldDeviceNames  = "device_names"
	FieldMessageIDs   = "message_ids"
)

// RequestValidator validates every request body received by the REST
// resources. With no field names it validates the whole value.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReceivedUser:
		return v.validateReceivedUser(value, fields...)
	case *models.ReceivedUser:
		return v.validateReceivedUser(*value, fields...)
	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)
	case models.ReceivedDevice:
		return v.validateReceivedDevice(value, fields...)
	case *models.ReceivedDevice:
		return v.validateReceivedDevice(*value, fields...)
	case models.DeviceUpdate:
		return v.validateDeviceUpdate(value, fields...)
	case *models.DeviceUpdate:
		return v.validateDeviceUpdate(*value, fields...)
	case models.ReceivedMessage:
		return v.validateReceivedMessage(value, fields...)
	case *models.ReceivedMessage:
		return v.validateReceivedMessage(*value, fields...)
	case models.MessageUpdate:
		return v.validateMessageUpdate(value, fields...)
	case *models.MessageUpdate:
		return v.validateMessageUpdate(*value, fields...)
	case models.ReceivedMessageLink:
		return v.validateReceivedLink(value, fields...)
	case *models.ReceivedMessageLink:
		return v.validateReceivedLink(*value, fields...)
	case models.ReceivedPermission:
		return v.validateReceivedPermission(value, fields...)
	case *models.ReceivedPermission:
		return v.validateReceivedPermission(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func wants(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}

func checkKnown(fields []string, known ...string) error {
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateReceivedUser(user models.ReceivedUser, fields ...string) error {
	if err := checkKnown(fields, FieldFlags, FieldPassword); err != nil {
		return err
	}
	if wants(fields, FieldFlags) {
		if err := ValidateFlags(user.Flags); err != nil {
			return err
		}
	}
	if wants(fields, FieldPassword) {
		if err := ValidatePassword(user.Password); err != nil {
			return err
		}
	}
	return nil
}

func (v *RequestValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	if err := checkKnown(fields, FieldUsername, FieldPassword); err != nil {
		return err
	}
	if wants(fields, FieldUsername) && update.Username.IsSet() {
		username, ok := update.Username.Get()
		if !ok {
			return fieldError(FieldUsername, ErrNullNotAllowed)
		}
		if err := ValidateUsername(username); err != nil {
			return err
		}
	}
	if wants(fields, FieldPassword) && update.Password.IsSet() {
		password, ok := update.Password.Get()
		if !ok {
			return fieldError(FieldPassword, ErrNullNotAllowed)
		}
		if err := ValidatePassword(password); err != nil {
			return err
		}
	}
	return nil
}

func (v *RequestValidator) validateReceivedDevice(device models.ReceivedDevice, fields ...string) error {
	if err := checkKnown(fields, FieldName); err != nil {
		return err
	}
	if wants(fields, FieldName) {
		return ValidateDeviceName(device.Name)
	}
	return nil
}

func (v *RequestValidator) validateDeviceUpdate(update models.DeviceUpdate, fields ...string) error {
	if err := checkKnown(fields, FieldName); err != nil {
		return err
	}
	if wants(fields, FieldName) && update.Name.IsSet() {
		name, ok := update.Name.Get()
		if !ok {
			return fieldError(FieldName, ErrNullNotAllowed)
		}
		if err := ValidateDeviceName(name); err != nil {
			return err
		}
	}
	if update.IsRequiredViewer.IsNull() {
		return fieldError("is_required_viewer", ErrNullNotAllowed)
	}
	return nil
}

func (v *RequestValidator) validateReceivedMessage(message models.ReceivedMessage, fields ...string) error {
	if err := checkKnown(fields, FieldExpireAfter); err != nil {
		return err
	}
	if wants(fields, FieldExpireAfter) && message.ExpireAfter != nil {
		return ValidateTimedelta(FieldExpireAfter, message.ExpireAfter.Duration())
	}
	return nil
}

func (v *RequestValidator) validateMessageUpdate(update models.MessageUpdate, fields ...string) error {
	if err := checkKnown(fields, FieldExpireAfter, FieldIsTransient); err != nil {
		return err
	}
	if wants(fields, FieldExpireAfter) {
		if d, ok := update.ExpireAfter.Get(); ok {
			if err := ValidateTimedelta(FieldExpireAfter, d.Duration()); err != nil {
				return err
			}
		}
	}
	if wants(fields, FieldIsTransient) && update.IsTransient.IsNull() {
		return fieldError(FieldIsTransient, ErrNullNotAllowed)
	}
	return nil
}

func (v *RequestValidator) validateReceivedLink(link models.ReceivedMessageLink, fields ...string) error {
	if err := checkKnown(fields, FieldExpiresAfter, FieldResource, FieldPermissions); err != nil {
		return err
	}
	if wants(fields, FieldExpiresAfter) && link.ExpiresAfter != nil {
		if err := ValidateTimedelta(FieldExpiresAfter, link.ExpiresAfter.Duration()); err != nil {
			return err
		}
	}
	if wants(fields, FieldResource) && link.Resource != nil {
		if err := ValidateFileName(*link.Resource); err != nil {
			return fieldError(FieldResource, ErrInvalidFileName)
		}
	}
	if wants(fields, FieldPermissions) && link.Access != nil {
		if *link.Access < 0 || *link.Access&^models.PermissionAll != 0 {
			return fieldError("access", ErrNegativeFlags)
		}
	}
	return nil
}

func (v *RequestValidator) validateReceivedPermission(permission models.ReceivedPermission, fields ...string) error {
	if err := checkKnown(fields, FieldPermissions); err != nil {
		return err
	}
	if wants(fields, FieldPermissions) {
		if permission.Permissions < 0 || permission.Permissions&^models.PermissionAll != 0 {
			return fieldError(FieldPermissions, ErrNegativeFlags)
		}
	}
	return nil
}
