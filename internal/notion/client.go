// Package notion publishes a rendered block sequence as a new page via the
// Notion pages API. Each render.Block variant maps one-to-one onto a native
// Notion block object, and hyperlinked cells onto rich text with a link.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openclaw/radar/internal/render"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2025-09-03"
)

// Client talks to the Notion pages API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Notion API client for the given integration key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type richText struct {
	Type string    `json:"type"`
	Text textValue `json:"text"`
}

type textValue struct {
	Content string `json:"content"`
	Link    *link  `json:"link,omitempty"`
}

type link struct {
	URL string `json:"url"`
}

type richTextBody struct {
	RichText []richText `json:"rich_text"`
}

type tableBody struct {
	TableWidth      int     `json:"table_width"`
	HasColumnHeader bool    `json:"has_column_header"`
	HasRowHeader    bool    `json:"has_row_header"`
	Children        []block `json:"children"`
}

type tableRowBody struct {
	Cells [][]richText `json:"cells"`
}

// block is the wire form of one Notion block; exactly one of the typed
// bodies is set, matching the Type field.
type block struct {
	Object   string        `json:"object"`
	Type     string        `json:"type"`
	Heading2 *richTextBody `json:"heading_2,omitempty"`
	Heading3 *richTextBody `json:"heading_3,omitempty"`
	Bulleted *richTextBody `json:"bulleted_list_item,omitempty"`
	Table    *tableBody    `json:"table,omitempty"`
	TableRow *tableRowBody `json:"table_row,omitempty"`
}

type pageParent struct {
	PageID string `json:"page_id"`
}

type pageProperties struct {
	Title struct {
		Title []richText `json:"title"`
	} `json:"title"`
}

type pageRequest struct {
	Parent     pageParent     `json:"parent"`
	Properties pageProperties `json:"properties"`
	Children   []block        `json:"children"`
}

type pageResponse struct {
	ID string `json:"id"`
}

// CreatePage creates a new page titled title under parentPageID, with the
// rendered blocks as its content. Returns the id of the created page.
func (c *Client) CreatePage(ctx context.Context, parentPageID, title string, blocks []render.Block) (string, error) {
	payload := pageRequest{
		Parent:   pageParent{PageID: parentPageID},
		Children: toAPIBlocks(blocks),
	}
	payload.Properties.Title.Title = []richText{plainText(title)}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal page payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Notion API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return result.ID, nil
}

// toAPIBlocks maps the renderer's block tree onto Notion block objects.
func toAPIBlocks(blocks []render.Block) []block {
	out := make([]block, 0, len(blocks))
	for _, b := range blocks {
		switch v := b.(type) {
		case render.Heading:
			h := block{Object: "block"}
			body := &richTextBody{RichText: []richText{plainText(v.Text)}}
			if v.Level <= 2 {
				h.Type = "heading_2"
				h.Heading2 = body
			} else {
				h.Type = "heading_3"
				h.Heading3 = body
			}
			out = append(out, h)
		case render.Bullet:
			out = append(out, block{
				Object:   "block",
				Type:     "bulleted_list_item",
				Bulleted: &richTextBody{RichText: []richText{plainText(v.Text)}},
			})
		case render.Table:
			rows := make([]block, 0, len(v.Rows))
			for _, row := range v.Rows {
				cells := make([][]richText, 0, len(row))
				for _, cell := range row {
					cells = append(cells, []richText{cellText(cell)})
				}
				rows = append(rows, block{
					Object:   "block",
					Type:     "table_row",
					TableRow: &tableRowBody{Cells: cells},
				})
			}
			out = append(out, block{
				Object: "block",
				Type:   "table",
				Table: &tableBody{
					TableWidth:      v.Width,
					HasColumnHeader: true,
					HasRowHeader:    false,
					Children:        rows,
				},
			})
		}
	}
	return out
}

func plainText(content string) richText {
	return richText{Type: "text", Text: textValue{Content: content}}
}

func cellText(c render.Cell) richText {
	rt := plainText(c.Text)
	if c.URL != "" {
		rt.Text.Link = &link{URL: c.URL}
	}
	return rt
}
