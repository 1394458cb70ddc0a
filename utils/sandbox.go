package utils

import (
	"codelab/config"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SandboxRunRequest is the payload sent to the code execution sandbox.
type SandboxRunRequest struct {
	LanguageID uint            `json:"language_id"`
	Code       string          `json:"code"`
	TestCases  json.RawMessage `json:"test_cases"`
}

// SandboxRunResult is the sandbox verdict for one submission.
type SandboxRunResult struct {
	Passed      bool   `json:"passed"`
	TestsPassed int    `json:"tests_passed"`
	TestsTotal  int    `json:"tests_total"`
	Output      string `json:"output"`
	Message     string `json:"message"`
}

// RunInSandbox executes submitted code against a lesson's test cases via the
// external sandbox API.
func RunInSandbox(languageID uint, code string, testCases json.RawMessage) (*SandboxRunResult, error) {
	client := resty.New().
		SetBaseURL(config.AppConfig.SandboxApiURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	if config.AppConfig.SandboxApiKey != "" {
		client.SetAuthToken(config.AppConfig.SandboxApiKey)
	}

	var result SandboxRunResult
	resp, err := client.R().
		SetBody(SandboxRunRequest{LanguageID: languageID, Code: code, TestCases: testCases}).
		SetResult(&result).
		Post("/run")
	if err != nil {
		return nil, fmt.Errorf("sandbox request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sandbox error: %s", resp.Status())
	}

	return &result, nil
}
