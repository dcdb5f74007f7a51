package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
)

// File is one upload: a name plus its content.
type File struct {
	Name   string
	Reader io.Reader
}

// Blob is a downloaded binary payload with enough metadata for the caller
// to stream or save it.
type Blob struct {
	Filename    string
	ContentType string
	Content     []byte
}

// UploadFiles sends the given files to path as multipart form data, one
// file per request. The backend only accepts a single file per call, so
// batching is done by looping client-side and awaiting each upload before
// issuing the next; results are returned in input order.
func (c *Client) UploadFiles(ctx context.Context, path, field string, files []File) ([]Record, error) {
	results := make([]Record, 0, len(files))
	for _, f := range files {
		rec, err := c.uploadOne(ctx, path, field, f)
		if err != nil {
			return results, fmt.Errorf("upload %s: %w", f.Name, err)
		}
		results = append(results, rec)
	}
	return results, nil
}

func (c *Client) uploadOne(ctx context.Context, path, field string, f File) (Record, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, f.Name)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f.Reader); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, newAPIError(resp.Status, resp.Data)
	}
	return UnwrapRecord(resp.Data, "file"), nil
}

// Download fetches a binary payload. The bytes pass through opaquely; the
// filename comes from Content-Disposition when the backend sets one.
func (c *Client) Download(ctx context.Context, path string, query url.Values) (*Blob, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", path, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &APIError{Status: httpResp.StatusCode}
	}
	content, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read download %s: %w", path, err)
	}

	blob := &Blob{
		ContentType: httpResp.Header.Get("Content-Type"),
		Content:     content,
	}
	if cd := httpResp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			blob.Filename = params["filename"]
		}
	}
	return blob, nil
}
