// Package api wires the gridpath HTTP service: a gin engine with request
// IDs, versioned under a configurable base URL.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api/i"
	"github.com/katalvlaran/gridpath/api/middleware"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Engine builds the gin engine. Every route lives under baseURL + "/v1"
// and every response carries an X-Request-ID header.
func (r *Router) Engine() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(v1)
		}
	}

	return router
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Engine().Run(r.addr)
}
