package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleCommand struct {
	Name     string `json:"name" validate:"required"`
	ParentID int64  `json:"parentId" validate:"required"`
	Duration *int   `json:"duration" validate:"required"`
}

func intPtr(v int) *int { return &v }

func TestStruct_Valid(t *testing.T) {
	err := Struct(sampleCommand{Name: "x", ParentID: 1, Duration: intPtr(10)})
	assert.NoError(t, err)
}

func TestStruct_ZeroPointerCountsAsProvided(t *testing.T) {
	err := Struct(sampleCommand{Name: "x", ParentID: 1, Duration: intPtr(0)})
	assert.NoError(t, err)
}

func TestStruct_FirstFailingFieldUsesJSONName(t *testing.T) {
	tests := []struct {
		name  string
		cmd   sampleCommand
		field string
	}{
		{"missing name", sampleCommand{ParentID: 1, Duration: intPtr(1)}, "name"},
		{"zero id", sampleCommand{Name: "x", Duration: intPtr(1)}, "parentId"},
		{"nil duration", sampleCommand{Name: "x", ParentID: 1}, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.cmd)
			require.Error(t, err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, "required", fe.Tag)
		})
	}
}
