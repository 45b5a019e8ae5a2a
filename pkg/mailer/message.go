package mailer

import (
	"fmt"
	"strings"
	"time"
)

// buildAlertMessage renders the alert email. The content fields mirror the
// original notification: total emission value, severity label, and a fixed
// set of reduction tips.
func buildAlertMessage(from, to string, totalKg float64, severity string) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("From: \"Carbon Analyzer System\" <%s>\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: High Carbon Emission Alert - %s Level Detected\r\n", severity))
	sb.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")

	sb.WriteString("Hello User,\r\n\r\n")
	sb.WriteString("Our system has detected a high level of carbon emission based on your recent computer usage.\r\n\r\n")
	sb.WriteString(fmt.Sprintf("Total Emission: %.3f kg CO2\r\n", totalKg))
	sb.WriteString(fmt.Sprintf("Alert Level:    %s\r\n\r\n", severity))
	sb.WriteString("Recommended actions to reduce emissions:\r\n")
	sb.WriteString("  - Reduce screen brightness and close unused applications.\r\n")
	sb.WriteString("  - Use power-saving or battery-optimization mode.\r\n")
	sb.WriteString("  - Avoid keeping your charger plugged in continuously.\r\n")
	sb.WriteString("  - Shut down or sleep your device during long idle periods.\r\n")
	sb.WriteString("  - Limit high-performance tasks that heavily use CPU/GPU.\r\n\r\n")
	sb.WriteString("Thank you for using the Carbon Analyzer System!\r\n")

	return []byte(sb.String())
}
