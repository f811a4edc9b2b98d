//go:build ignore
// +build ignore

// Seeds a running server with demo data for local development.
//
//	go run scripts/seed-data.go
//
// The server must be running with SKIP_AUTH=true (or ENV=local), e.g.:
//
//	ENV=local go run ./cmd/server
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8111"
	}

	log.Printf("seeding demo data via %s", apiURL)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	transactions := []map[string]any{
		{"amount": 3200.0, "type": "income", "category": "income", "date": monthStart, "note": "Salary", "app": "Bank", "recurring": true},
		{"amount": 1400.0, "type": "expense", "category": "rent", "date": monthStart, "note": "Rent", "app": "Bank", "recurring": true},
		{"amount": 9.99, "type": "expense", "category": "subscriptions", "date": monthStart.AddDate(0, 0, 4), "note": "Netflix", "app": "Revolut", "recurring": true},
		{"amount": 82.30, "type": "expense", "category": "groceries", "date": now.AddDate(0, 0, -3), "note": "Weekly shop", "app": "Revolut"},
		{"amount": 4.50, "type": "expense", "category": "food", "date": now.AddDate(0, 0, -2), "note": "Coffee", "app": "CashApp"},
		{"amount": 35.00, "type": "expense", "category": "transport", "date": now.AddDate(0, 0, -1), "note": "Fuel", "app": "BofA"},
	}
	for _, tx := range transactions {
		post(apiURL+"/v1/transactions", tx)
	}

	budgets := []map[string]any{
		{"category": "food", "limit": 250.0},
		{"category": "groceries", "limit": 400.0},
		{"category": "transport", "limit": 150.0},
	}
	for _, b := range budgets {
		put(apiURL+"/v1/budgets", b)
	}

	debts := []map[string]any{
		{"person": "Alice", "amount": 45.0, "direction": "owed_to_me", "date": now.AddDate(0, 0, -10), "note": "Dinner split"},
		{"person": "Bob", "amount": 120.0, "direction": "i_owe", "date": now.AddDate(0, 0, -20), "note": "Concert tickets"},
	}
	for _, d := range debts {
		post(apiURL+"/v1/debts", d)
	}

	var pot struct {
		ID string `json:"id"`
	}
	postInto(apiURL+"/v1/pots", map[string]any{
		"name": "Holiday", "icon": "✈️", "color": "#4f9cf9", "target": 2000.0, "monthly_amount": 150.0,
	}, &pot)
	post(fmt.Sprintf("%s/v1/pots/%s/contributions", apiURL, pot.ID), map[string]any{
		"amount": 150.0, "date": monthStart, "note": "payday",
	})

	log.Println("done")
}

func post(url string, body any) {
	send(http.MethodPost, url, body, nil)
}

func postInto(url string, body, out any) {
	send(http.MethodPost, url, body, out)
}

func put(url string, body any) {
	send(http.MethodPut, url, body, nil)
}

func send(method, url string, body, out any) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal %s: %v", url, err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("build request %s: %v", url, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Fatalf("%s %s: unexpected status %d", method, url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode %s: %v", url, err)
		}
	}
}
