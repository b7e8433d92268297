package odk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

/* ====================== ERROR KINDS ====================== */

// One sentinel per failure class so callers can tell a dead-run condition
// (auth) from a per-item condition (download) without string matching.
var (
	ErrAuth     = errors.New("odk: authentication failed")
	ErrFetch    = errors.New("odk: submission fetch failed")
	ErrDownload = errors.New("odk: attachment download failed")
)

const (
	defaultTimeout = 60 * time.Second
	pageSize       = 100
)

// Client talks to an ODK Central server. It keeps no local state beyond the
// HTTP client; retries belong to the caller.
type Client struct {
	HTTP *http.Client
}

func NewClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: defaultTimeout}}
}

/* ====================== AUTH ====================== */

// Authenticate opens a session and returns the bearer token.
func (c *Client) Authenticate(ctx context.Context, endpoint, email, password string) (string, error) {
	body, err := sonic.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", fmt.Errorf("%w: encode credentials: %v", ErrAuth, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(endpoint, "/")+"/v1/sessions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	}

	var session struct {
		Token string `json:"token"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read session: %v", ErrAuth, err)
	}
	if err := sonic.Unmarshal(raw, &session); err != nil {
		return "", fmt.Errorf("%w: decode session: %v", ErrAuth, err)
	}
	if session.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrAuth)
	}
	return session.Token, nil
}

/* ====================== SUBMISSIONS ====================== */

type odataPage struct {
	Value []map[string]interface{} `json:"value"`
}

// FetchSubmissions pulls every submission whose submissionDate falls inside
// the window, paging with $top/$skip until a short page comes back.
func (c *Client) FetchSubmissions(ctx context.Context, endpoint string, projectID int, formID, token string, window Window) ([]Submission, error) {
	filter := fmt.Sprintf("__system/submissionDate ge %s and __system/submissionDate le %s",
		window.From.UTC().Format(time.RFC3339),
		window.To.UTC().Format(time.RFC3339))

	var out []Submission
	for skip := 0; ; skip += pageSize {
		q := url.Values{}
		q.Set("$filter", filter)
		q.Set("$top", fmt.Sprintf("%d", pageSize))
		q.Set("$skip", fmt.Sprintf("%d", skip))
		q.Set("$count", "false")

		u := fmt.Sprintf("%s/v1/projects/%d/forms/%s.svc/Submissions?%s",
			strings.TrimRight(endpoint, "/"), projectID, url.PathEscape(formID), q.Encode())

		page, err := c.fetchPage(ctx, u, token)
		if err != nil {
			return nil, err
		}
		for _, row := range page.Value {
			out = append(out, toSubmission(row))
		}
		if len(page.Value) < pageSize {
			break
		}
	}
	log.Printf("[ODK] form=%s fetched %d submission(s) in window %s .. %s",
		formID, len(out), window.From.Format(time.RFC3339), window.To.Format(time.RFC3339))
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, u, token string) (*odataPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read page: %v", ErrFetch, err)
	}
	var page odataPage
	if err := sonic.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: decode page: %v", ErrFetch, err)
	}
	return &page, nil
}

func toSubmission(row map[string]interface{}) Submission {
	sub := Submission{Data: row}
	if id, ok := row["__id"].(string); ok {
		sub.InstanceID = id
	}
	if sys, ok := row["__system"].(map[string]interface{}); ok {
		if ds, ok := sys["submissionDate"].(string); ok {
			if t, err := time.Parse(time.RFC3339, ds); err == nil {
				sub.SubmittedAt = t
			}
		}
		if rs, ok := sys["reviewState"].(string); ok {
			sub.ReviewState = rs
		}
	}
	return sub
}

/* ====================== ATTACHMENTS ====================== */

// DownloadAttachment fetches one attachment binary as-is.
func (c *Client) DownloadAttachment(ctx context.Context, endpoint string, projectID int, formID, submissionID, name, token string) ([]byte, error) {
	u := fmt.Sprintf("%s/v1/projects/%d/forms/%s/submissions/%s/attachments/%s",
		strings.TrimRight(endpoint, "/"), projectID,
		url.PathEscape(formID), url.PathEscape(submissionID), url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s status %d", ErrDownload, name, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDownload, name, err)
	}
	return data, nil
}
