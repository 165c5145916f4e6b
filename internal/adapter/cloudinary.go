// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
	"github.com/google/uuid"
)

const (
	resourceTypeVideo = "video"

	headerContentRange = "Content-Range"
	headerUploadID     = "X-Unique-Upload-Id"

	destroyResultOK       = "ok"
	destroyResultNotFound = "not found"

	pingStatusOK = "ok"
)

type cloudinaryAdapter struct {
	client *utils.HTTPClient
	cfg    config.Media
	now    func() time.Time
	newID  func() string
	logger *logger.Logger
}

// NewCloudinaryAdapter returns a [MediaHost] talking to the Cloudinary REST
// API described by cfg.
func NewCloudinaryAdapter(cfg config.Media, log *logger.Logger) (MediaHost, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("%w: cloud name, api key and api secret are required", ErrInvalidConfig)
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return &cloudinaryAdapter{
		client: utils.NewHTTPClient(
			utils.WithBaseURL(baseURL),
			utils.WithTimeout(cfg.Timeout),
		),
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: log,
	}, nil
}

func (c *cloudinaryAdapter) Upload(ctx context.Context, file models.UploadFile) (models.StoredAsset, error) {
	if file.Content == nil {
		return models.StoredAsset{}, fmt.Errorf("%w: %s has no content", ErrBadRequest, file.Name)
	}

	params := c.signedParams(map[string]string{"folder": c.cfg.Folder})

	var (
		asset models.StoredAsset
		err   error
	)
	if c.cfg.ChunkSize > 0 && file.Size > c.cfg.ChunkSize {
		asset, err = c.uploadChunked(ctx, file, params)
	} else {
		asset, err = c.uploadPart(ctx, file.Name, file.Content, params, nil)
	}
	if err != nil {
		return models.StoredAsset{}, err
	}

	if asset.PublicID == "" || asset.URL == "" {
		return models.StoredAsset{}, fmt.Errorf("%w: upload of %s returned no public id or url", ErrUnexpectedResponse, file.Name)
	}

	c.logger.Debug().
		Str("public_id", asset.PublicID).
		Int64("bytes", asset.Bytes).
		Msg("video uploaded to media host")

	return asset, nil
}

// uploadChunked sends file in consecutive ranges sharing one upload id.
// Only the response to the last range describes the stored asset.
func (c *cloudinaryAdapter) uploadChunked(ctx context.Context, file models.UploadFile, params map[string]string) (models.StoredAsset, error) {
	uploadID := c.newID()
	buf := make([]byte, c.cfg.ChunkSize)

	var (
		asset  models.StoredAsset
		offset int64
	)
	for offset < file.Size {
		n, err := io.ReadFull(file.Content, buf)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return models.StoredAsset{}, fmt.Errorf("error reading %s: %w", file.Name, err)
		}
		if n == 0 {
			return models.StoredAsset{}, fmt.Errorf("%w: %s is shorter than its declared size %d", ErrBadRequest, file.Name, file.Size)
		}

		headers := map[string]string{
			headerUploadID:     uploadID,
			headerContentRange: fmt.Sprintf("bytes %d-%d/%d", offset, offset+int64(n)-1, file.Size),
		}

		asset, err = c.uploadPart(ctx, file.Name, bytes.NewReader(buf[:n]), params, headers)
		if err != nil {
			return models.StoredAsset{}, err
		}

		offset += int64(n)
	}

	return asset, nil
}

func (c *cloudinaryAdapter) uploadPart(ctx context.Context, name string, content io.Reader, params, headers map[string]string) (models.StoredAsset, error) {
	var asset models.StoredAsset

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetFormData(params).
		SetFileReader("file", name, content).
		SetResult(&asset).
		Post(c.endpoint("upload"))
	if err != nil {
		return models.StoredAsset{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredAsset{}, err
	}

	return asset, nil
}

func (c *cloudinaryAdapter) Destroy(ctx context.Context, publicID string) error {
	var result struct {
		Result string `json:"result"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(c.signedParams(map[string]string{"public_id": publicID})).
		SetResult(&result).
		Post(c.endpoint("destroy"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	switch result.Result {
	case destroyResultOK, destroyResultNotFound:
		c.logger.Debug().Str("public_id", publicID).Str("result", result.Result).Msg("media asset destroyed")
		return nil
	default:
		return fmt.Errorf("%w: %s: result %q", ErrDestroyFailed, publicID, result.Result)
	}
}

func (c *cloudinaryAdapter) Ping(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret).
		SetResult(&status).
		Get("/" + url.PathEscape(c.cfg.CloudName) + "/ping")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if status.Status != pingStatusOK {
		return fmt.Errorf("%w: ping status %q", ErrUnexpectedResponse, status.Status)
	}

	return nil
}

func (c *cloudinaryAdapter) endpoint(action string) string {
	return "/" + url.PathEscape(c.cfg.CloudName) + "/" + resourceTypeVideo + "/" + action
}

// signedParams adds timestamp, api_key and signature to the request
// parameters. Empty values are dropped before signing.
func (c *cloudinaryAdapter) signedParams(params map[string]string) map[string]string {
	signed := make(map[string]string, len(params)+3)
	for k, v := range params {
		if v != "" {
			signed[k] = v
		}
	}
	signed["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	signed["signature"] = sign(signed, c.cfg.APISecret)
	signed["api_key"] = c.cfg.APIKey

	return signed
}

// sign returns the hex SHA-1 of the sorted "k=v" pairs joined by "&" with
// the secret appended.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty base url", ErrInvalidConfig)
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: bad base url %q", ErrInvalidConfig, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
