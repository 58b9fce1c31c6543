package tontine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// CloudStore is a Store over a REST document service. Each collection lives
// at {base}/{collection}.json and the service wraps the documents in a
// response envelope like {"documents": [...], "updated": "..."}.
//
// It is a drop-in alternative to DirStore for treasurers who want their
// ledger reachable from several machines. The single-writer rule still
// holds: the service stores, it does not arbitrate.
type CloudStore struct {
	base   string
	apiKey string
	client *http.Client
}

// NewCloudStore creates a store pointing at the given service base URL. The
// api key, when not empty, is passed as the "key" query parameter on every
// request.
func NewCloudStore(base, apiKey string) *CloudStore {
	return &CloudStore{base: base, apiKey: apiKey, client: http.DefaultClient}
}

func (s *CloudStore) addr(collection string) string {
	addr := s.base + "/" + collection + ".json"
	if s.apiKey != "" {
		addr += "?key=" + url.QueryEscape(s.apiKey)
	}
	return addr
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil // an unknown collection reads as empty
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return nil
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// Load fetches a collection and picks the document array out of the
// response envelope.
func (s *CloudStore) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var jobj interface{}
	if err := jwget(ctx, s.client, s.addr(collection), &jobj); err != nil {
		return nil, err
	}
	if jobj == nil {
		return nil, nil
	}

	picked, err := jsonpath.Get("$.documents", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected response for collection %q: %w", collection, err)
	}
	list, ok := picked.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response for collection %q: documents is %T", collection, picked)
	}

	docs := make([]json.RawMessage, 0, len(list))
	for _, item := range list {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, b)
	}
	return docs, nil
}

// Save replaces the collection with the given documents.
func (s *CloudStore) Save(ctx context.Context, collection string, docs []json.RawMessage) error {
	if docs == nil {
		docs = []json.RawMessage{}
	}
	body, err := json.Marshal(map[string]any{
		"documents": docs,
		"updated":   Today().String(),
	})
	if err != nil {
		return err
	}
	return s.put(ctx, s.addr(collection), body)
}

// Delete drops the collection.
func (s *CloudStore) Delete(ctx context.Context, collection string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.addr(collection), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("cannot http DELETE collection %q: %v", collection, resp.Status)
	}
	return nil
}

func (s *CloudStore) put(ctx context.Context, addr string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http PUT %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return nil
}
