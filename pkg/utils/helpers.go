package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateEnhanceProcessID generates a process ID for background enhancement tasks
func GenerateEnhanceProcessID() string {
	return "enh_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
}

// GenerateResumeID generates an identifier for a saved resume record
func GenerateResumeID() string {
	return "rsm_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
}

// FormatDuration formats a duration to a human-readable string
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

