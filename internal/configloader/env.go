package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/mdfix/pkg/config"
)

// envVarPrefix is the prefix for all mdfix environment variables.
const envVarPrefix = "MDFIX_"

// applyEnv overlays MDFIX_* environment variables onto cfg.
func applyEnv(cfg *config.Config) error {
	if v, ok := lookup("DOCS_DIR"); ok {
		cfg.DocsDir = v
	}
	if v, ok := lookup("DEFAULT_LANGUAGE"); ok {
		cfg.DefaultLanguage = v
	}
	if v, ok := lookup("MAX_LINE_LENGTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sMAX_LINE_LENGTH: %w", envVarPrefix, err)
		}
		cfg.MaxLineLength = n
	}
	if v, ok := lookup("JOBS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sJOBS: %w", envVarPrefix, err)
		}
		cfg.Jobs = n
	}
	if v, ok := lookup("DETECT_LANGUAGE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sDETECT_LANGUAGE: %w", envVarPrefix, err)
		}
		cfg.DetectLanguage = b
	}
	if v, ok := lookup("VALIDATE_OUTPUT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sVALIDATE_OUTPUT: %w", envVarPrefix, err)
		}
		cfg.ValidateOutput = b
	}
	if v, ok := lookup("BACKUPS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sBACKUPS_ENABLED: %w", envVarPrefix, err)
		}
		cfg.Backups.Enabled = b
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envVarPrefix + name)
	return v, ok && v != ""
}
