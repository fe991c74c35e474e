package report

import (
	"encoding/json"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// renderJSON renders the full result as indented JSON
func renderJSON(result *models.ScanResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
