package scoring

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// display groups thousands the way the dashboard shows dollar amounts.
var display = message.NewPrinter(language.English)

// FormatNumber renders v with a fixed number of decimals, or NoData when v is
// not a finite number.
func FormatNumber(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NoData
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// FormatSalary renders a raw salary: "$55.76M" from one million up,
// "$750,000" below (at most three decimals), NoData when unknown.
func FormatSalary(salary float64) string {
	if salary == 0 || math.IsNaN(salary) {
		return NoData
	}
	if salary >= salaryUnit {
		return "$" + strconv.FormatFloat(salary/salaryUnit, 'f', 2, 64) + "M"
	}
	return "$" + display.Sprint(number.Decimal(salary, number.MaxFractionDigits(3)))
}
