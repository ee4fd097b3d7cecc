package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// SecurityAnalysis is the structured response of the generative security
// check.
type SecurityAnalysis struct {
	Strength string   `json:"strength"`
	Feedback string   `json:"feedback"`
	Tips     []string `json:"tips"`
}

// cannedAnalysis is returned whenever the upstream service misbehaves. The
// assistant is decorative; its failures never reach the user as errors.
var cannedAnalysis = SecurityAnalysis{
	Strength: "unknown",
	Feedback: "We could not analyze this right now. Use a long, unique passphrase.",
	Tips: []string{
		"Use at least 12 characters",
		"Avoid reusing passwords across sites",
		"Enable two-factor authentication where available",
	},
}

const cannedGreeting = "Welcome to the A.R.C. Portal."

// Assistant calls the generative-text service. A zero URL disables the
// integration and every call returns its canned response immediately.
type Assistant struct {
	url     string
	key     string
	client  *http.Client
	timeout time.Duration
}

func NewAssistant(url, key string, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Assistant{
		url:     strings.TrimRight(url, "/"),
		key:     key,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (a *Assistant) Enabled() bool { return a.url != "" }

// AnalyzeSecurity asks the service to grade a password-strength summary.
// Only coarse, non-secret inputs are sent upstream: length and character
// class counts, never the password itself.
func (a *Assistant) AnalyzeSecurity(ctx context.Context, length, classes int) SecurityAnalysis {
	if !a.Enabled() {
		return cannedAnalysis
	}

	prompt := fmt.Sprintf(
		"Rate the strength of a password that is %d characters long and uses %d character classes. "+
			"Reply with JSON {\"strength\":...,\"feedback\":...,\"tips\":[...]}.",
		length, classes)

	raw, err := a.generate(ctx, prompt)
	if err != nil {
		log.Printf("[ASSISTANT] security analysis failed: %v", err)
		return cannedAnalysis
	}

	var analysis SecurityAnalysis
	if err := sonic.Unmarshal(raw, &analysis); err != nil || analysis.Strength == "" {
		log.Printf("[ASSISTANT] unparseable analysis response: %v", err)
		return cannedAnalysis
	}
	return analysis
}

// Greet produces a short welcome line for the signed-in user.
func (a *Assistant) Greet(ctx context.Context, name string) string {
	if !a.Enabled() {
		return cannedGreeting
	}

	prompt := fmt.Sprintf("Write a one-line friendly welcome for %s signing in to a college administration portal.", name)
	raw, err := a.generate(ctx, prompt)
	if err != nil {
		log.Printf("[ASSISTANT] greeting failed: %v", err)
		return cannedGreeting
	}

	greeting := strings.TrimSpace(strings.Trim(string(raw), `"`))
	if greeting == "" {
		return cannedGreeting
	}
	return greeting
}

func (a *Assistant) generate(ctx context.Context, prompt string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := sonic.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.key != "" {
		req.Header.Set("Authorization", "Bearer "+a.key)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
