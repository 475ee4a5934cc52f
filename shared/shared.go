package shared

import (
	"reflect"
	"strings"
	"tasknest/shared/constant"
	"tasknest/shared/dto"
	"tasknest/shared/failure"
	"tasknest/shared/timezone"

	"github.com/google/uuid"
)

const (
	cacheKeySeparator = ":"
	uuidLength        = 36
)

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByIDAndOwner matches a single row of table that belongs to ownerID.
func FilterByIDAndOwner(id, fieldID, ownerID, fieldOwner, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				Field:    fieldOwner,
				Value:    ownerID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins non-empty parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	keys := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// RequireID rejects a missing id with 400 and an id that can never match a row with 404.
func RequireID(id, label, entityName string) error {
	if strings.TrimSpace(id) == constant.Empty {
		return failure.BadRequestFromString(label + " is required.")
	}

	// uuid.Parse also accepts urn, braced and unhyphenated forms.
	if len(id) != uuidLength {
		return failure.NotFound(entityName + " not found.")
	}

	if _, err := uuid.Parse(id); err != nil {
		return failure.NotFound(entityName + " not found.")
	}

	return nil
}
