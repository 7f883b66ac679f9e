package plugins

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "oper-review-backend/internal/errors"
)

// decodeData strictly decodes plugin data into target
func decodeData(pluginID string, data json.RawMessage, target interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return apperrors.NewValidationError("data", "is required")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return apperrors.NewValidationError("data", fmt.Sprintf("invalid %s data: %v", pluginID, err))
	}
	return nil
}
