package services

import (
	"fmt"
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// PrintInsightReport formats and prints the post-run summary to terminal
func PrintInsightReport(report *models.InsightReport) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("RV RENTAL DATA EXTRACTION SUMMARY", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Listings                : %d\n", report.TotalListings)
	fmt.Printf("  Hosts                   : %d\n", report.TotalHosts)
	fmt.Printf("  Amenity Vocabulary      : %d\n", report.TotalAmenities)
	fmt.Printf("  Offering Delivery       : %.1f%%\n", report.DeliveryShare)
	if report.Prices.Min != nil && report.Prices.Max != nil && report.Prices.Avg != nil {
		fmt.Printf("  Price Range/Night       : $%.2f - $%.2f (avg $%.2f)\n",
			*report.Prices.Min, *report.Prices.Max, *report.Prices.Avg)
	}

	if len(report.ByRVType) > 0 {
		fmt.Printf("\n LISTINGS BY RV TYPE\n%s\n", thin)
		for _, st := range report.ByRVType {
			fmt.Printf("  %-22s %4d listings  avg $%.2f/night\n", st.RVType+":", st.Count, st.AvgPrice)
		}
	}

	if len(report.TopCities) > 0 {
		fmt.Printf("\n TOP CITIES\n%s\n", thin)
		for _, st := range report.TopCities {
			bar := strings.Repeat("▓", barWidth(st.Count))
			fmt.Printf("  %-22s %4d  %s\n", st.City+":", st.Count, bar)
		}
	}

	if len(report.TopAmenities) > 0 {
		fmt.Printf("\n MOST COMMON AMENITIES\n%s\n", thin)
		for _, st := range report.TopAmenities {
			fmt.Printf("  %-28s %4d  (%.1f%%)\n", truncate(st.Name, 28)+":", st.Count, st.Share)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

// barWidth keeps the city histogram inside the report frame.
func barWidth(count int) int {
	if count > 25 {
		return 25
	}
	return count
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
