package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
)

// ImgBB uploads base64 images through the ImgBB v1 API.
type ImgBB struct {
	apiKey    string
	uploadURL string
	http      *http.Client
}

func NewImgBB(apiKey, uploadURL string, timeout time.Duration) *ImgBB {
	return &ImgBB{
		apiKey:    apiKey,
		uploadURL: uploadURL,
		http:      &http.Client{Timeout: timeout},
	}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *ImgBB) Upload(ctx context.Context, base64Image string) (string, error) {
	endpoint, err := url.Parse(g.uploadURL)
	if err != nil {
		return "", err
	}
	q := endpoint.Query()
	q.Set("key", g.apiKey)
	endpoint.RawQuery = q.Encode()

	form := url.Values{"image": {base64Image}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	res, err := g.http.Do(req)
	if err != nil {
		return "", uploadFailed(err.Error(), err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", uploadFailed(err.Error(), err)
	}

	var out imgbbResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", uploadFailed(fmt.Sprintf("unexpected response (status %d)", res.StatusCode), err)
	}
	if !out.Success || out.Data.URL == "" {
		msg := out.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", res.StatusCode)
		}
		return "", uploadFailed(msg, nil)
	}
	return out.Data.URL, nil
}

func uploadFailed(msg string, cause error) error {
	return apperr.Upstream("Image upload failed: "+msg, cause)
}
