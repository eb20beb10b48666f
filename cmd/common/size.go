package common

import "fmt"

// FormatSize renders a byte count the way ls -h does: 512, 1.5K, 20M.
func FormatSize(size int64) string {
	units := []string{"", "K", "M", "G", "T", "P"}
	value := float64(size)

	for _, unit := range units {
		if value < 1024 {
			if unit == "" {
				return fmt.Sprintf("%d", int(value))
			}
			if value < 10 {
				return fmt.Sprintf("%.1f%s", value, unit)
			}
			return fmt.Sprintf("%.0f%s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.0fE", value)
}
