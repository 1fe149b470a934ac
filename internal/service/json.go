package service

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func unmarshalJSON(data datatypes.JSON, out any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
