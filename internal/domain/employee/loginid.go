package employee

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLoginID builds a login ID in the format
// [CompanyCode][First2+Last2][Year][Serial], e.g. OIJODO220001:
// "OI" company code, "JODO" name code, "22" year of joining, "0001" serial.
// Prefixes shorter than two characters are used as-is.
func FormatLoginID(companyName, firstName, lastName string, yearOfJoining, serialNumber int) string {
	companyCode := strings.ToUpper(prefix(companyName, 2))
	nameCode := strings.ToUpper(prefix(firstName, 2) + prefix(lastName, 2))

	year := strconv.Itoa(yearOfJoining)
	if len(year) > 2 {
		year = year[len(year)-2:]
	}

	return fmt.Sprintf("%s%s%s%04d", companyCode, nameCode, year, serialNumber)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
