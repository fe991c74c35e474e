package report

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/IvanShishkin/dupscan/internal/config"
	"github.com/IvanShishkin/dupscan/pkg/models"
)

// sectionOrder fixes the criterion order in every rendered format
var sectionOrder = []models.GroupKind{
	models.KindSizeHash,
	models.KindName,
	models.KindExtensionCollision,
}

// Generator renders scan results in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate renders the result in the configured format and writes it to
// the configured output file, or stdout when none is set. Warnings are not
// part of the rendered report; the CLI sends them to stderr.
func (g *Generator) Generate(result *models.ScanResult) error {
	var (
		data []byte
		err  error
	)

	switch g.config.ReportFormat {
	case "json":
		data, err = renderJSON(result)
	case "yaml":
		data, err = renderYAML(result)
	case "markdown":
		data = []byte(renderMarkdown(result))
	default:
		data = []byte(renderText(result))
	}
	if err != nil {
		return fmt.Errorf("render %s report: %w", g.config.ReportFormat, err)
	}

	if g.config.OutputFile != "" {
		if err := os.WriteFile(g.config.OutputFile, data, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		g.logger.Info("Report written",
			zap.String("path", g.config.OutputFile),
			zap.String("format", g.config.ReportFormat))
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}
