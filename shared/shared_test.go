package shared_test

import (
	"reflect"
	"tasknest/shared"
	"tasknest/shared/constant"
	"tasknest/shared/dto"
	"tasknest/shared/failure"
	"testing"
	"time"
)

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		NoTagField string `db:""`
	}

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:         1,
				Name:       "John Doe",
				Email:      "john@example.com",
				EmptyField: "",        // zero value, should be ignored
				NoDBTag:    "ignored", // no db tag, should be ignored
				NoTagField: "ignored", // db:"", should be ignored
			},
			username: "testuser",
			expected: map[string]any{
				"id":    1,
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			username: "testuser",
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Name: "Jane Doe",
			},
			username: "admin",
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedAt] == nil {
				t.Error("expected modified_at to be set")
			}
			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsDereferencesPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Description *string `db:"description"`
		Status      *string `db:"status"`
		Count       *int    `db:"count"`
	}

	description := "Pack bags"
	count := 0

	data := TestStructWithPointers{
		Description: &description,
		Count:       &count, // a non-nil pointer to zero is still a supplied value
	}

	result := shared.TransformFields(data, "testuser")

	expectedFields := map[string]any{
		"description": "Pack bags",
		"count":       0,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}

	if _, exists := result["status"]; exists {
		t.Error("expected nil pointer field to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "id", "users")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "users",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestFilterByIDAndOwner(t *testing.T) {
	result := shared.FilterByIDAndOwner("p-1", "id", "u-1", "owner_id", "projects")

	where, args := result.GetWhereClause()

	if where != "(projects.id = :id AND projects.owner_id = :owner_id)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["id"] != "p-1" || args["owner_id"] != "u-1" {
		t.Errorf("unexpected args %+v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "project:get_all",
			expected: "project:get_all",
		},
		{
			name:     "prefix with parts",
			prefix:   "project:get",
			parts:    []string{"u-1", "p-1"},
			expected: "project:get:u-1:p-1",
		},
		{
			name:     "empty parts are skipped",
			prefix:   "project:get",
			parts:    []string{"", "p-1"},
			expected: "project:get:p-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestRequireID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{name: "valid uuid", id: "4f0c5d2e-8a37-4a5e-9c36-5b8f3f1d2a10"},
		{name: "missing", id: "", wantCode: 400},
		{name: "blank", id: "   ", wantCode: 400},
		{name: "not a uuid", id: "projectId", wantCode: 404},
		{name: "uppercase uuid", id: "4F0C5D2E-8A37-4A5E-9C36-5B8F3F1D2A10"},
		{name: "urn form", id: "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", wantCode: 404},
		{name: "braced form", id: "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}", wantCode: 404},
		{name: "unhyphenated form", id: "6ba7b8109dad11d180b400c04fd430c8", wantCode: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.RequireID(tt.id, "Project Id", "Project")

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if !failure.Is(err, tt.wantCode) {
				t.Errorf("expected failure code %d, got %v", tt.wantCode, err)
			}
		})
	}
}
