package serve

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/bgraf/routetracker/geotrack"
	"github.com/bgraf/routetracker/render"
	"github.com/bgraf/routetracker/store"
	"github.com/gin-gonic/gin"
)

// Name of the multipart form field carrying uploaded track files.
const uploadField = "files"

// serveAPI owns the route collection while the server runs. Every change is made on a
// copy that only replaces coll once it has been saved; mu serializes these changes.
type serveAPI struct {
	mu       sync.Mutex
	store    store.Store
	coll     geotrack.Collection
	fallback render.View
	tiles    string
}

func newServeAPI(s store.Store, fallback render.View, tiles string) (*serveAPI, error) {
	coll, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load routes: %w", err)
	}

	return &serveAPI{
		store:    s,
		coll:     coll,
		fallback: fallback,
		tiles:    tiles,
	}, nil
}

func (api *serveAPI) snapshot() geotrack.Collection {
	api.mu.Lock()
	defer api.mu.Unlock()

	return slices.Clone(api.coll)
}

// update applies fn to a copy of the collection and stores the result.
func (api *serveAPI) update(fn func(coll *geotrack.Collection) bool) (changed bool, err error) {
	api.mu.Lock()
	defer api.mu.Unlock()

	next := slices.Clone(api.coll)
	if next == nil {
		next = geotrack.Collection{}
	}

	if !fn(&next) {
		return false, nil
	}

	if err := api.store.Save(next); err != nil {
		return false, err
	}

	api.coll = next
	return true, nil
}

func (api *serveAPI) ServeIndex(c *gin.Context) {
	coll := api.snapshot()

	var buf bytes.Buffer
	if err := render.WriteMapHTML(&buf, coll, render.ComputeView(coll, api.fallback), api.tiles); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during map rendering")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (api *serveAPI) ServeView(c *gin.Context) {
	c.JSON(http.StatusOK, render.ComputeView(api.snapshot(), api.fallback))
}

func (api *serveAPI) ServeTracks(c *gin.Context) {
	coll := api.snapshot()
	if coll == nil {
		coll = geotrack.Collection{}
	}

	c.JSON(http.StatusOK, coll)
}

func (api *serveAPI) UploadTracks(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form"})
		return
	}

	headers := form.File[uploadField]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("no files in field '%s'", uploadField)})
		return
	}

	files := make([]geotrack.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
			return
		}

		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
			return
		}

		files = append(files, geotrack.File{Name: fh.Filename, Content: content})
	}

	var result geotrack.BatchResult
	_, err = api.update(func(coll *geotrack.Collection) bool {
		result = geotrack.IngestBatch(files, coll)
		return len(result.Succeeded) > 0
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save routes"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (api *serveAPI) DeleteTrack(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	deleted, err := api.update(func(coll *geotrack.Collection) bool {
		_, ok := coll.Remove(id)
		return ok
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save routes"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *serveAPI) ClearTracks(c *gin.Context) {
	_, err := api.update(func(coll *geotrack.Collection) bool {
		if coll.Len() == 0 {
			return false
		}
		coll.Clear()
		return true
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save routes"})
		return
	}

	c.Status(http.StatusNoContent)
}
