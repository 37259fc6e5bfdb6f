package postgres

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// marshalJSON serializes a domain value into a JSONB column value.
// Nil slices and maps produce an empty column rather than the string "null".
func marshalJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal json column")
	}
	if string(data) == "null" {
		return nil, nil
	}

	return datatypes.JSON(data), nil
}

// unmarshalJSON deserializes a JSONB column into out. An empty column
// leaves out at its zero value.
func unmarshalJSON(data datatypes.JSON, out any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal json column")
	}

	return nil
}
