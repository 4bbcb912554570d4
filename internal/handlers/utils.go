package handlers

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// pathParam returns the decoded value of a path parameter.
// echo routes on URL.RawPath when it is set and then hands back escaped segments;
// otherwise the segment is already decoded and must not be unescaped again.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return value
}
