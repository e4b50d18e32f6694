package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/techhub/internal/pagestate"
)

// htmx response headers.
const (
	HeaderHXTrigger = "HX-Trigger"
	HeaderHXRefresh = "HX-Refresh"
)

// setTriggers announces the action's client effects through HX-Trigger.
func setTriggers(c echo.Context, fx pagestate.Effects) error {
	if fx.Empty() {
		return nil
	}
	payload, err := json.Marshal(fx.Triggers())
	if err != nil {
		return fmt.Errorf("failed to encode client triggers: %w", err)
	}
	c.Response().Header().Set(HeaderHXTrigger, string(payload))
	return nil
}
