package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "Base URL of the API")
	testType := flag.String("test", "all", "Test type: all, health, products, story, content")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("CraftConnect API - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests()
	case "health":
		client.testHealthCheck()
	case "products":
		client.testListProducts()
	case "story":
		client.testBrandStoryGeneration()
	case "content":
		client.testSocialContentGeneration()
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, products, story, content")
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"List Products", tc.testListProducts},
		{"Brand Story Generation", tc.testBrandStoryGeneration},
		{"Social Content Generation", tc.testSocialContentGeneration},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/api/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	var health map[string]interface{}
	if err := json.Unmarshal(body, &health); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if health["status"] != "OK" {
		printError(fmt.Sprintf("Expected status OK, got %v", health["status"]))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testListProducts() bool {
	printTestHeader("Testing Product Listing")

	url := fmt.Sprintf("%s/api/products", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var listing struct {
		Success  bool              `json:"success"`
		Products []json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if !listing.Success {
		printError("Expected success=true")
		return false
	}

	printSuccess(fmt.Sprintf("Product listing passed (%d products)", len(listing.Products)))
	return true
}

func (tc *TestClient) testBrandStoryGeneration() bool {
	printTestHeader("Testing Brand Story Generation")

	request := map[string]interface{}{
		"businessType":         "pottery",
		"region":               "Rajasthan",
		"traditionalTechnique": "blue pottery glazing",
		"targetAudience":       "urban home decorators",
	}
	return tc.postJSON("/api/storytelling/generate-brand-story", request, "story")
}

func (tc *TestClient) testSocialContentGeneration() bool {
	printTestHeader("Testing Social Content Generation")

	request := map[string]interface{}{
		"businessType":         "textiles",
		"region":               "Gujarat",
		"traditionalTechnique": "bandhani tie-dye",
		"platform":             "instagram",
		"contentType":          "post",
	}
	return tc.postJSON("/api/storytelling/generate-social-content", request, "content")
}

func (tc *TestClient) postJSON(path string, request map[string]interface{}, resultKey string) bool {
	url := tc.baseURL + path
	fmt.Printf("POST %s\n", url)

	payload, _ := json.Marshal(request)
	resp, err := tc.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if result["success"] != true {
		printError("Expected success=true")
		return false
	}
	if _, ok := result[resultKey]; !ok {
		printError(fmt.Sprintf("Missing %q in response", resultKey))
		return false
	}

	printSuccess("Generation passed")
	printJSON(body)
	return true
}

func printHeader(text string) {
	fmt.Printf("%s=== %s ===%s\n", colorYellow, text, colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s--- %s ---%s\n", colorCyan, text, colorReset)
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(body []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err == nil {
		fmt.Println(pretty.String())
	}
}
