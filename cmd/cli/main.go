package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pos-cli",
		Short: "Festival register CLI tool",
		Long:  `A command line interface for interacting with the festival register API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the register API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Reporting commands
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Sales reporting",
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's item count and revenue",
		Run: func(cmd *cobra.Command, args []string) {
			showTodayStats()
		},
	}

	var periodDays int
	periodCmd := &cobra.Command{
		Use:   "period",
		Short: "Show totals over the most recent sales days",
		Run: func(cmd *cobra.Command, args []string) {
			showPeriodStats(periodDays)
		},
	}
	periodCmd.Flags().IntVar(&periodDays, "days", 5, "Number of most recent sales days to include")

	statsCmd.AddCommand(todayCmd)
	statsCmd.AddCommand(periodCmd)
	rootCmd.AddCommand(statsCmd)

	// Correction commands
	voidCmd := &cobra.Command{
		Use:   "void-last",
		Short: "Void the most recent sale of the day",
		Run: func(cmd *cobra.Command, args []string) {
			voidLastSale()
		},
	}
	rootCmd.AddCommand(voidCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showTodayStats() {
	body := getJSON("/api/v1/stats/today")

	var result struct {
		Count  int `json:"count"`
		Amount int `json:"amount"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Today: %d items, %d yen\n", result.Count, result.Amount)
}

func showPeriodStats(days int) {
	body := getJSON(fmt.Sprintf("/api/v1/stats/period?days=%d", days))

	var result struct {
		Count     int     `json:"count"`
		Amount    int     `json:"amount"`
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if result.StartDate == nil || result.EndDate == nil {
		fmt.Println("No sales days recorded yet")
		return
	}

	fmt.Printf("Period %s to %s: %d items, %d yen\n", *result.StartDate, *result.EndDate, result.Count, result.Amount)
}

func voidLastSale() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/sales/void-last", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Void FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Last sale voided")
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
