package main

import (
	"fmt"

	"github.com/meenmo/vixcal/calendar"
	"github.com/meenmo/vixcal/utils"
)

func main() {
	ref := utils.DateParser("2024-03-01")

	fmt.Printf("Easter Sunday %d:  %s\n", ref.Year(), calendar.EasterSunday(ref.Year()).Format("2006-01-02"))
	fmt.Printf("Good Friday %d:    %s\n", ref.Year(), calendar.GoodFriday(ref.Year()).Format("2006-01-02"))
	fmt.Printf("March expiration:    %s\n", calendar.MonthlyExpiration(ref.Year(), 3).Format("2006-01-02"))

	first, second := calendar.NextTwoSettlements(ref)
	fmt.Printf("Next settlement:     %s (%.0f days)\n", first.Format("2006-01-02"), utils.Days(ref, first))
	fmt.Printf("Second settlement:   %s (%.0f days)\n", second.Format("2006-01-02"), utils.Days(ref, second))
}
