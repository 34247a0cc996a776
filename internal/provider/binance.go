package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/pkg/config"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// klinesBatchLimit is the maximum rows per Binance klines request
const klinesBatchLimit = 1000

// BinanceProvider fetches daily bars from the Binance klines REST API.
// Its tables carry flat field labels and an unnamed date index.
type BinanceProvider struct {
	client    *http.Client
	baseURL   string
	logger    *logrus.Entry
	rateLimit time.Duration
	lastCall  time.Time
}

// NewBinanceProvider creates a Binance REST provider
func NewBinanceProvider(cfg *config.ProviderConfig, logger *logrus.Logger) *BinanceProvider {
	return &BinanceProvider{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BinanceAPIURL,
		logger:    logger.WithField("component", "binance-provider"),
		rateLimit: 100 * time.Millisecond,
	}
}

// Name identifies the provider
func (b *BinanceProvider) Name() string {
	return "binance"
}

// DailyBars fetches the [start, end) daily bars for symbol. Windows
// longer than one batch are paged through by close time.
func (b *BinanceProvider) DailyBars(ctx context.Context, symbol string, start, end time.Time) (*frame.RawTable, error) {
	pair := binancePair(symbol)
	startMs := start.UTC().UnixMilli()
	// Binance treats endTime as inclusive; pull it back inside the window.
	endMs := end.UTC().UnixMilli() - 1

	var bars []models.Bar
	currentStart := startMs
	for currentStart <= endMs {
		batch, err := b.fetchKlines(ctx, pair, symbol, currentStart, endMs)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		bars = append(bars, batch...)
		last := batch[len(batch)-1].Timestamp
		currentStart = last.AddDate(0, 0, 1).UnixMilli()
		if len(batch) < klinesBatchLimit {
			break
		}
	}

	table := &frame.RawTable{Index: make([]time.Time, len(bars))}
	open := make([]float64, len(bars))
	high := make([]float64, len(bars))
	low := make([]float64, len(bars))
	closes := make([]float64, len(bars))
	volume := make([]float64, len(bars))
	for i, bar := range bars {
		table.Index[i] = bar.Timestamp
		open[i] = bar.Open
		high[i] = bar.High
		low[i] = bar.Low
		closes[i] = bar.Close
		volume[i] = bar.Volume
	}
	table.AddColumn(frame.Flat("Open"), open)
	table.AddColumn(frame.Flat("High"), high)
	table.AddColumn(frame.Flat("Low"), low)
	table.AddColumn(frame.Flat("Close"), closes)
	table.AddColumn(frame.Flat("Volume"), volume)

	b.logger.WithFields(logrus.Fields{
		"symbol": symbol,
		"pair":   pair,
		"rows":   table.NumRows(),
	}).Debug("Fetched daily bars")

	return table, nil
}

// fetchKlines performs one klines request against the REST API
func (b *BinanceProvider) fetchKlines(ctx context.Context, pair, symbol string, startTime, endTime int64) ([]models.Bar, error) {
	b.enforceRateLimit()

	endpoint := fmt.Sprintf("%s/api/v3/klines", b.baseURL)
	params := url.Values{}
	params.Add("symbol", pair)
	params.Add("interval", "1d")
	params.Add("startTime", strconv.FormatInt(startTime, 10))
	params.Add("endTime", strconv.FormatInt(endTime, 10))
	params.Add("limit", strconv.Itoa(klinesBatchLimit))

	fullURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	b.logger.WithFields(logrus.Fields{
		"pair":      pair,
		"startTime": time.UnixMilli(startTime).UTC().Format(time.RFC3339),
		"endTime":   time.UnixMilli(endTime).UTC().Format(time.RFC3339),
	}).Debug("Fetching klines")

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var rawKlines [][]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rawKlines); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	bars := make([]models.Bar, 0, len(rawKlines))
	for _, raw := range rawKlines {
		bar, err := parseKline(symbol, raw)
		if err != nil {
			b.logger.WithError(err).Warn("Skipping malformed kline")
			continue
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// parseKline converts one raw kline row into a Bar
func parseKline(symbol string, raw []interface{}) (models.Bar, error) {
	if len(raw) < 6 {
		return models.Bar{}, fmt.Errorf("kline row too short: %d fields", len(raw))
	}

	openTime, ok := raw[0].(float64)
	if !ok {
		return models.Bar{}, fmt.Errorf("unexpected open time type %T", raw[0])
	}

	bar := models.Bar{
		Symbol:    symbol,
		Timestamp: time.UnixMilli(int64(openTime)).UTC(),
	}

	fields := []struct {
		dst *float64
		val interface{}
	}{
		{&bar.Open, raw[1]},
		{&bar.High, raw[2]},
		{&bar.Low, raw[3]},
		{&bar.Close, raw[4]},
		{&bar.Volume, raw[5]},
	}
	for _, f := range fields {
		s, ok := f.val.(string)
		if !ok {
			return models.Bar{}, fmt.Errorf("unexpected kline field type %T", f.val)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Bar{}, fmt.Errorf("failed to parse kline field: %w", err)
		}
		*f.dst = v
	}

	return bar, nil
}

// binancePair maps a viewer symbol to its Binance trading pair:
// the common "-USD" quote becomes the USDT pair, any other hyphenated
// pair is collapsed.
func binancePair(symbol string) string {
	s := strings.ToUpper(symbol)
	if strings.HasSuffix(s, "-USD") {
		return strings.TrimSuffix(s, "-USD") + "USDT"
	}
	return strings.ReplaceAll(s, "-", "")
}

// enforceRateLimit keeps request pacing under the API limits
func (b *BinanceProvider) enforceRateLimit() {
	elapsed := time.Since(b.lastCall)
	if elapsed < b.rateLimit {
		time.Sleep(b.rateLimit - elapsed)
	}
	b.lastCall = time.Now()
}
