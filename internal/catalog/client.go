package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrSheetStatus 表格接口返回非 2xx
var ErrSheetStatus = errors.New("sheet http status error")

// SheetSource 表格数据源
type SheetSource interface {
	FetchTab(ctx context.Context, tab string) ([]Row, error)
}

// Client 基于 opensheet 风格接口（GET <base>/<sheet_id>/<tab>）的表格客户端
type Client struct {
	baseURL    string
	sheetID    string
	httpClient *http.Client
}

// NewClient 创建表格客户端
func NewClient(baseURL, sheetID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		sheetID:    strings.TrimSpace(sheetID),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TabURL 返回指定工作表的请求地址
func (c *Client) TabURL(tab string) string {
	return c.baseURL + "/" + url.PathEscape(c.sheetID) + "/" + url.PathEscape(tab)
}

// FetchTab 读取工作表的全部行；空数组返回 nil 切片
func (c *Client) FetchTab(ctx context.Context, tab string) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.TabURL(tab), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: tab=%s status=%d", ErrSheetStatus, tab, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode tab %s failed: %w", tab, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows, nil
}
