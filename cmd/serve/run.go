package serve

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bgraf/routetracker/config"
	"github.com/bgraf/routetracker/render"
	"github.com/bgraf/routetracker/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	s, err := store.Open(config.StoreDriver(), config.StorePath())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(s) }()

	api, err := newServeAPI(s, render.DefaultView(), config.MapTiles())
	if err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Limit(config.UploadRate()), config.UploadBurst())

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	registerRoutes(r, api, limiter)

	address := config.ServerAddress()
	log.Printf("serving %d routes from %s on %s", len(api.coll), config.StorePath(), address)

	if err = r.Run(address); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

func registerRoutes(r *gin.Engine, api *serveAPI, limiter *rate.Limiter) {
	r.GET("/", api.ServeIndex)
	r.GET("/view", api.ServeView)
	r.GET("/tracks", api.ServeTracks)
	r.POST("/tracks", rateLimit(limiter), api.UploadTracks)
	r.DELETE("/tracks", api.ClearTracks)
	r.DELETE("/tracks/:id", api.DeleteTrack)
}

// rateLimit rejects requests once the token bucket of limiter is exhausted.
func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many uploads, try again later",
			})
			return
		}

		c.Next()
	}
}
