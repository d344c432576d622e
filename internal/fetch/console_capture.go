package fetch

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"sentwatch/internal/providers"
	"sentwatch/internal/structures"
)

const (
	defaultCaptureWindow = 30 * time.Second
	defaultSettleDelay   = 3 * time.Second
)

// ConsoleCapturerInterface drives a remote page and collects whatever
// text lines its runtime logs within a bounded window. Implemented over
// the browser's DevTools protocol; the browser itself runs out of
// process and is pointed at via capture.devtoolsUrl.
type ConsoleCapturerInterface interface {
	CaptureLines(ctx context.Context, pageURL string, triggerDetail bool) ([]string, error)
}

type CDPCapture struct {
	conf   *structures.Config
	http   *resty.Client
	logger providers.Logger
}

func NewConsoleCapture(conf *structures.Config, logger providers.Logger) ConsoleCapturerInterface {
	return &CDPCapture{
		conf:   conf,
		http:   resty.New().SetTimeout(defaultFetchTimeout),
		logger: logger,
	}
}

type devtoolsTarget struct {
	ID                   string `json:"id"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

type cdpCommand struct {
	ID     int                    `json:"id"`
	Method string                 `json:"method"`
	Params map[string]interface{} `json:"params,omitempty"`
}

type cdpEvent struct {
	Method string `json:"method"`
	Params struct {
		Args []struct {
			Type        string      `json:"type"`
			Value       interface{} `json:"value"`
			Description string      `json:"description"`
		} `json:"args"`
	} `json:"params"`
}

// consoleAccumulator collects console lines for a single capture window.
// It is created per call and never shared across profiles.
type consoleAccumulator struct {
	lines []string
}

func (a *consoleAccumulator) consume(raw []byte) {
	var ev cdpEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return
	}
	if ev.Method != "Runtime.consoleAPICalled" || len(ev.Params.Args) == 0 {
		return
	}

	parts := make([]string, 0, len(ev.Params.Args))
	for _, arg := range ev.Params.Args {
		switch {
		case arg.Type == "string":
			if s, ok := arg.Value.(string); ok {
				parts = append(parts, s)
			}
		case arg.Value != nil:
			parts = append(parts, fmt.Sprint(arg.Value))
		default:
			parts = append(parts, arg.Description)
		}
	}
	a.lines = append(a.lines, strings.Join(parts, " "))
}

func (c *CDPCapture) CaptureLines(ctx context.Context, pageURL string, triggerDetail bool) ([]string, error) {
	target, err := c.newTarget(ctx)
	if err != nil {
		return nil, err
	}
	defer c.closeTarget(target.ID)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target.WebSocketDebuggerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("devtools dial failed: %w", err)
	}
	defer conn.Close()

	window := c.conf.Capture.Window
	if window <= 0 {
		window = defaultCaptureWindow
	}
	settle := c.conf.Capture.SettleDelay
	if settle <= 0 {
		settle = defaultSettleDelay
	}
	deadline := time.Now().Add(window)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	id := 0
	send := func(method string, params map[string]interface{}) error {
		id++
		return conn.WriteJSON(cdpCommand{ID: id, Method: method, Params: params})
	}

	if err := send("Runtime.enable", nil); err != nil {
		return nil, fmt.Errorf("devtools command failed: %w", err)
	}
	if err := send("Page.navigate", map[string]interface{}{"url": pageURL}); err != nil {
		return nil, fmt.Errorf("devtools command failed: %w", err)
	}

	acc := &consoleAccumulator{}

	if triggerDetail {
		// Give page scripts a moment to initialize before clicking the
		// stats icon that reveals the detailed leaderboard.
		c.readInto(conn, acc, time.Now().Add(settle))
		for _, kind := range []string{"mousePressed", "mouseReleased"} {
			if err := send("Input.dispatchMouseEvent", map[string]interface{}{
				"type":       kind,
				"x":          c.conf.Capture.ClickX,
				"y":          c.conf.Capture.ClickY,
				"button":     "left",
				"clickCount": 1,
			}); err != nil {
				c.logger.Warnf(providers.TypeFetch, "Detail-view click failed: %s", err)
				break
			}
		}
	}

	c.readInto(conn, acc, deadline)
	return acc.lines, nil
}

// readInto pumps devtools messages into the accumulator until the
// deadline passes or the connection drops.
func (c *CDPCapture) readInto(conn *websocket.Conn, acc *consoleAccumulator, deadline time.Time) {
	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(deadline)
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if netErr, ok := err.(net.Error); !ok || !netErr.Timeout() {
				c.logger.Debugf(providers.TypeFetch, "Devtools read ended: %s", err)
			}
			return
		}
		acc.consume(raw)
	}
}

func (c *CDPCapture) newTarget(ctx context.Context) (*devtoolsTarget, error) {
	resp, err := c.http.R().SetContext(ctx).Put(c.conf.Capture.DevtoolsURL + "/json/new?about:blank")
	if err != nil {
		return nil, fmt.Errorf("devtools target create failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("devtools target create returned status %d", resp.StatusCode())
	}
	var target devtoolsTarget
	if err := json.Unmarshal(resp.Body(), &target); err != nil {
		return nil, fmt.Errorf("devtools target response is not valid JSON: %w", err)
	}
	if target.WebSocketDebuggerURL == "" {
		return nil, fmt.Errorf("devtools target has no debugger url")
	}
	return &target, nil
}

func (c *CDPCapture) closeTarget(id string) {
	resp, err := c.http.R().Get(c.conf.Capture.DevtoolsURL + "/json/close/" + id)
	if err != nil || resp.IsError() {
		c.logger.Debugf(providers.TypeFetch, "Devtools target %s close failed", id)
	}
}
