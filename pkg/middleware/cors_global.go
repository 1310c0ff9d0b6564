package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	DefaultCORSMethods = []string{fiber.MethodPut, fiber.MethodDelete, fiber.MethodGet, fiber.MethodPost}
	DefaultCORSHeaders = []string{"Content-Type"}
)

type corsGlobalMiddleware struct {
	allowOrigins []string
	allowMethods []string
	allowHeaders []string
	maxAge       string
}

func NewCORSGlobalMiddleware(
	allowOrigins []string,
	allowMethods []string,
	allowHeaders []string,
	maxAge string,
) Middleware {
	origins := make([]string, 0, len(allowOrigins))
	for _, o := range allowOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &corsGlobalMiddleware{
		allowOrigins: origins,
		allowMethods: allowMethods,
		allowHeaders: allowHeaders,
		maxAge:       maxAge,
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" || !m.originAllowed(origin) {
			return c.Next()
		}

		c.Set("Vary", "Origin")
		if hasStar(m.allowOrigins) {
			c.Set("Access-Control-Allow-Origin", "*")
		} else {
			c.Set("Access-Control-Allow-Origin", origin)
		}

		if c.Method() != fiber.MethodOptions || c.Get("Access-Control-Request-Method") == "" {
			return c.Next()
		}

		reqMethod := c.Get("Access-Control-Request-Method")
		if !containsFold(m.allowMethods, reqMethod) {
			return c.SendStatus(fiber.StatusForbidden)
		}
		for _, h := range strings.Split(c.Get("Access-Control-Request-Headers"), ",") {
			h = strings.TrimSpace(h)
			if h != "" && !containsFold(m.allowHeaders, h) {
				return c.SendStatus(fiber.StatusForbidden)
			}
		}
		c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
		c.Set("Access-Control-Allow-Headers", strings.Join(m.allowHeaders, ", "))
		if m.maxAge != "" {
			c.Set("Access-Control-Max-Age", m.maxAge)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (m *corsGlobalMiddleware) originAllowed(origin string) bool {
	return hasStar(m.allowOrigins) || containsFold(m.allowOrigins, origin)
}

func containsFold(arr []string, v string) bool {
	for _, s := range arr {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
