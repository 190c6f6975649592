package models

import "strings"

// ComposeFullName menggabungkan first/middle/last name menjadi satu display name.
// Bagian yang kosong dilewati, whitespace berlebih dirapikan.
func ComposeFullName(firstName, middleName, lastName string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{firstName, middleName, lastName} {
		parts = append(parts, strings.Fields(part)...)
	}
	return strings.Join(parts, " ")
}
