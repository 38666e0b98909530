package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	limitedModel   = "gpt-4-turbo-2024-04-09" // hourly ceiling 100, per-user daily ceiling 5 in configs/configs.yml
	unlimitedModel = "vicuna-13b"             // absent from both limit tables
	heavyUser      = "203.0.113.7"            // sends exactly the daily ceiling on limitedModel
	lightUser      = "203.0.113.8"            // sends one call on each model
)

// ### End - fixed configs

type callRecord struct {
	Type   string  `json:"type"`
	Model  string  `json:"model"`
	Tstamp float64 `json:"tstamp"`
	IP     string  `json:"ip"`
}

type limitCheckResponse struct {
	IsLimitReached bool   `json:"isLimitReached"`
	Reason         string `json:"reason"`
	Detail         string `json:"detail"`
}

type modelStatsResponse struct {
	Models map[string]int64 `json:"models"`
}

type activeUsersResponse struct {
	ActiveUsers int `json:"activeUsers"`
}

type setModelLimitResponse struct {
	Success bool `json:"success"`
}

// main runs the e2e scenario: 001_quota_gating
//
// This scenario writes a deterministic batch of call-log records into the
// first configured log source and verifies the full pipeline against a
// running server: file scanning, windowed aggregation, the stats endpoints,
// and both tiers of the quota check.
//
// What it tests:
//   - NDJSON scanning of the most recent files in a source directory
//   - Hour-window model stats and active-user counts via GET /stats/*
//   - Per-user daily ceiling firing exactly at the configured threshold
//   - Model-level hourly ceiling firing after an administrative PUT lowers it
//   - Malformed lines and non-"chat" records being ignored, not aborting the scan
//
// Expected results:
//   - GET /stats/models reports limitedModel=6 and unlimitedModel=1 in the hour window
//   - GET /stats/active_users/hour reports 2
//   - heavyUser is limited on limitedModel with reason USER_DAILY_LIMIT
//   - lightUser is not limited on either model
//   - after PUT /models/{limitedModel}/limit {"hourlyLimit": 6}, every user is
//     limited on limitedModel with reason MODEL_HOURLY_LIMIT
//
// The server must be running with configs/configs.yml and an empty first log
// source; a short refresh_interval_seconds (e.g. 5) keeps the scenario fast.
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8083" // Base URL of the call monitor server
	logSourceDir := "./logs/server0"   // First source directory from configs/configs.yml, relative to project root
	refreshWait := 2 * time.Minute     // How long to wait for a refresh cycle to pick up the new file

	projectRoot, err := findProjectRoot()
	if err != nil {
		fail("%v", err)
	}
	sourcePath := filepath.Join(projectRoot, logSourceDir)
	if err := os.MkdirAll(sourcePath, 0755); err != nil {
		fail("failed to create log source directory %s: %v", sourcePath, err)
	}

	fmt.Println("Starting e2e scenario: 001_quota_gating")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_SOURCE: %s\n", sourcePath)
	fmt.Printf("REFRESH_WAIT: %s\n", refreshWait)
	fmt.Println()

	// Write the log file: 6 chat calls on limitedModel (5 of them by
	// heavyUser, exactly the daily ceiling), 1 on unlimitedModel, plus one
	// non-chat record and one malformed line that must both be ignored.
	now := float64(time.Now().UnixNano()) / float64(time.Second)
	var buf bytes.Buffer
	for i := 0; i < 5; i++ {
		writeRecord(&buf, callRecord{Type: "chat", Model: limitedModel, Tstamp: now - float64(60+i), IP: heavyUser})
	}
	writeRecord(&buf, callRecord{Type: "chat", Model: limitedModel, Tstamp: now - 30, IP: lightUser})
	writeRecord(&buf, callRecord{Type: "chat", Model: unlimitedModel, Tstamp: now - 20, IP: lightUser})
	writeRecord(&buf, callRecord{Type: "upvote", Model: limitedModel, Tstamp: now - 10, IP: lightUser})
	buf.WriteString("{this line is not json}\n")

	logPath := filepath.Join(sourcePath, fmt.Sprintf("%s-conv.json", time.Now().Format("2006-01-02")))
	if err := os.WriteFile(logPath, buf.Bytes(), 0644); err != nil {
		fail("failed to write log file: %v", err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", buf.Len(), logPath)
	fmt.Println()

	// Wait for a refresh cycle to publish the new snapshot.
	fmt.Println("Waiting for the snapshot to reflect the new file...")
	deadline := time.Now().Add(refreshWait)
	for {
		var stats modelStatsResponse
		getJSON(baseURL+"/stats/models", &stats)
		if stats.Models[limitedModel] == 6 && stats.Models[unlimitedModel] == 1 {
			fmt.Printf("Snapshot ready: %v\n", stats.Models)
			break
		}
		if time.Now().After(deadline) {
			fail("snapshot never reflected the log file; last stats: %v", stats.Models)
		}
		time.Sleep(2 * time.Second)
	}

	var active activeUsersResponse
	getJSON(baseURL+"/stats/active_users/hour", &active)
	expect(active.ActiveUsers == 2, "active users last hour = %d, want 2", active.ActiveUsers)

	// Tier 2: heavyUser has hit its daily ceiling on limitedModel.
	check := checkLimit(baseURL, limitedModel, heavyUser)
	expect(check.IsLimitReached, "heavyUser should be limited on %s", limitedModel)
	expect(check.Reason == "USER_DAILY_LIMIT", "reason = %q, want USER_DAILY_LIMIT", check.Reason)

	check = checkLimit(baseURL, limitedModel, lightUser)
	expect(!check.IsLimitReached, "lightUser should not be limited on %s: %s", limitedModel, check.Detail)

	check = checkLimit(baseURL, unlimitedModel, heavyUser)
	expect(!check.IsLimitReached, "no table entry for %s, nobody is limited", unlimitedModel)

	// Tier 1: lower the hourly ceiling to the observed count; the model tier
	// fires for every user, including ones with no activity at all.
	var updated setModelLimitResponse
	putJSON(baseURL+"/models/"+url.PathEscape(limitedModel)+"/limit", `{"hourlyLimit": 6}`, &updated)
	expect(updated.Success, "lowering the ceiling of a configured model should succeed")

	check = checkLimit(baseURL, limitedModel, "198.51.100.99")
	expect(check.IsLimitReached, "hourly ceiling of 6 reached with 6 calls")
	expect(check.Reason == "MODEL_HOURLY_LIMIT", "reason = %q, want MODEL_HOURLY_LIMIT", check.Reason)
	fmt.Printf("Model tier detail: %s\n", check.Detail)

	fmt.Println()
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
			return root, nil
		}
		parent := filepath.Dir(root)
		if parent == root {
			break
		}
		root = parent
	}
	return "", fmt.Errorf("could not find go.mod; run from inside the project tree")
}

func writeRecord(buf *bytes.Buffer, record callRecord) {
	line, err := json.Marshal(record)
	if err != nil {
		fail("failed to marshal record: %v", err)
	}
	buf.Write(line)
	buf.WriteByte('\n')
}

func checkLimit(baseURL, model, userID string) limitCheckResponse {
	var resp limitCheckResponse
	endpoint := fmt.Sprintf("%s/limits/check?model=%s&user_id=%s",
		baseURL, url.QueryEscape(model), url.QueryEscape(userID))
	getJSON(endpoint, &resp)
	return resp
}

func getJSON(endpoint string, out any) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		fail("GET %s failed: %v", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fail("GET %s: HTTP %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("GET %s: decoding response failed: %v", endpoint, err)
	}
}

func putJSON(endpoint, body string, out any) {
	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader([]byte(body)))
	if err != nil {
		fail("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fail("PUT %s failed: %v", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fail("PUT %s: HTTP %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("PUT %s: decoding response failed: %v", endpoint, err)
	}
}

func expect(ok bool, format string, args ...any) {
	if ok {
		fmt.Printf("OK: %s\n", fmt.Sprintf(format, args...))
		return
	}
	fail(format, args...)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
