package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidateCronSchedule validates a standard five-field cron expression.
//
// Example:
//
//	err := ValidateCronSchedule("*/10 * * * *")
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// ValidateIntRange validates that min <= value <= max.
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min || value > max {
		return fmt.Errorf("value %d out of range [%d, %d]", value, min, max)
	}
	return nil
}

// ValidateTimezone validates an IANA timezone name such as "Asia/Tokyo".
func ValidateTimezone(name string) error {
	if name == "" {
		return fmt.Errorf("invalid timezone: cannot be empty")
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", name, err)
	}
	return nil
}
