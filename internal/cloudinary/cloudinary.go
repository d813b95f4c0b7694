// Package cloudinary is a minimal signed client for the Cloudinary REST API:
// asset upload, asset destroy and delivery URL building. Only the operations
// the guestbook needs are implemented.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/service"
)

const (
	defaultApiBaseUrl      = "https://api.cloudinary.com/v1_1"
	defaultDeliveryBaseUrl = "https://res.cloudinary.com"

	// uploadTransformation asks the provider for automatic quality and format
	// selection while it ingests the asset.
	uploadTransformation = "q_auto,f_auto"
)

type Client struct {
	cfg             *config.Cloudinary
	httpClient      *http.Client
	apiBaseUrl      string
	deliveryBaseUrl string
}

// Ensure Client implements the uploader port at compile time.
var _ service.MediaUploader = (*Client)(nil)

func New(cfg *config.Cloudinary) *Client {
	return &Client{
		cfg:             cfg,
		httpClient:      &http.Client{Timeout: 60 * time.Second},
		apiBaseUrl:      defaultApiBaseUrl,
		deliveryBaseUrl: defaultDeliveryBaseUrl,
	}
}

type uploadResponse struct {
	PublicId  string `json:"public_id"`
	SecureUrl string `json:"secure_url"`
	Url       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

type destroyResponse struct {
	Result string `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file as a signed base64 data URI and returns the
// provider-assigned public id and secure delivery URL.
func (c *Client) Upload(ctx context.Context, data io.Reader, mimeType, publicId string) (assignedId, secureUrl string, err error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return "", "", fmt.Errorf("failed to read upload data: %w", err)
	}

	form := url.Values{}
	form.Add("file", "data:"+mimeType+";base64,"+base64.StdEncoding.EncodeToString(raw))
	form.Add("public_id", publicId)
	form.Add("transformation", uploadTransformation)
	c.signForm(form)

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.apiBaseUrl, c.cfg.CloudName)
	var res uploadResponse
	if err := c.postForm(ctx, endpoint, form, &res); err != nil {
		return "", "", err
	}
	if res.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary upload rejected: %s", res.Error.Message)
	}

	secureUrl = res.SecureUrl
	if secureUrl == "" {
		secureUrl = res.Url
	}
	if res.PublicId == "" || secureUrl == "" {
		return "", "", fmt.Errorf("cloudinary upload returned no asset reference")
	}
	return res.PublicId, secureUrl, nil
}

// Destroy removes the asset behind publicId from the provider.
func (c *Client) Destroy(ctx context.Context, publicId string) error {
	form := url.Values{}
	form.Add("public_id", publicId)
	c.signForm(form)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.apiBaseUrl, c.cfg.CloudName)
	var res destroyResponse
	if err := c.postForm(ctx, endpoint, form, &res); err != nil {
		return err
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy rejected: %s", res.Error.Message)
	}
	// "not found" means the asset is already gone, which is fine for cleanup
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q", res.Result)
	}
	return nil
}

// URL builds a delivery URL for publicId with the given transformation string
// (e.g. "q_auto,f_auto").
func (c *Client) URL(publicId, transformation string) string {
	return fmt.Sprintf("%s/%s/image/upload/%s/%s", c.deliveryBaseUrl, c.cfg.CloudName, transformation, publicId)
}

// signForm adds timestamp, api_key and the request signature. Cloudinary
// signatures are the sha1 hex of the sorted params (minus file and api_key)
// concatenated with the api secret.
func (c *Client) signForm(form url.Values) {
	form.Add("timestamp", strconv.FormatInt(time.Now().Unix(), 10))

	keys := make([]string, 0, len(form))
	for k := range form {
		if k == "file" || k == "api_key" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+form.Get(k))
	}
	payload := strings.Join(pairs, "&") + c.cfg.ApiSecret

	form.Add("api_key", c.cfg.ApiKey)
	form.Add("signature", fmt.Sprintf("%x", sha1.Sum([]byte(payload))))
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build cloudinary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cloudinary request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read cloudinary response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudinary returned status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse cloudinary response: %w", err)
	}
	return nil
}
