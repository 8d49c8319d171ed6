package config

import "fmt"

// ExportConfig selects where capacity report exports are written.
type ExportConfig struct {
	// SinkType is "fs" (local directory) or "gcs" (Cloud Storage bucket).
	SinkType string `env:"TP_EXPORT_SINK"`

	// FSDir is the report directory when SinkType is "fs".
	FSDir string `env:"TP_EXPORT_FS_DIR"`

	// GCSBucket is the bucket name when SinkType is "gcs".
	GCSBucket string `env:"TP_EXPORT_GCS_BUCKET"`
}

func (c *ExportConfig) applyDefaults() {
	if c.SinkType == "" {
		c.SinkType = "fs"
	}
	if c.SinkType == "fs" && c.FSDir == "" {
		c.FSDir = "./teampulse-exports"
	}
}

// Validate validates the export configuration.
func (c *ExportConfig) Validate() error {
	switch c.SinkType {
	case "", "fs":
		// FSDir default is applied after load.
		return nil
	case "gcs":
		if c.GCSBucket == "" {
			return fmt.Errorf("TP_EXPORT_GCS_BUCKET is required when TP_EXPORT_SINK is 'gcs'")
		}
		return nil
	default:
		return fmt.Errorf("unknown TP_EXPORT_SINK: %s (supported: fs, gcs)", c.SinkType)
	}
}
