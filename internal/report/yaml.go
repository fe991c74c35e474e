package report

import (
	"gopkg.in/yaml.v3"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// renderYAML renders the full result as YAML
func renderYAML(result *models.ScanResult) ([]byte, error) {
	return yaml.Marshal(result)
}
