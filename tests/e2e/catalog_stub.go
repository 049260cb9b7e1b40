//go:build e2e

package e2e

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MovieID     int64 = 27205
	MovieTitle        = "Inception"
	SeriesID    int64 = 1399
	SeriesTitle       = "Game of Thrones"
)

// NewCatalogStub serves the subset of the TMDB API the catalog client uses.
func NewCatalogStub() http.Handler {
	r := gin.New()

	r.GET("/search/multi", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page": 1,
			"results": []gin.H{
				{"id": MovieID, "title": MovieTitle, "media_type": "movie", "poster_path": "/inception.jpg"},
				{"id": SeriesID, "name": SeriesTitle, "media_type": "tv", "poster_path": "/got.jpg"},
				{"id": 500, "name": "Some Person", "media_type": "person"},
			},
		})
	})

	r.GET("/movie/:id", func(c *gin.Context) {
		if c.Param("id") != "27205" {
			c.JSON(http.StatusNotFound, gin.H{"status_message": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": MovieID, "title": MovieTitle, "poster_path": "/inception.jpg", "runtime": 148})
	})

	r.GET("/tv/:id", func(c *gin.Context) {
		if c.Param("id") != "1399" {
			c.JSON(http.StatusNotFound, gin.H{"status_message": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          SeriesID,
			"name":        SeriesTitle,
			"poster_path": "/got.jpg",
			"seasons": []gin.H{
				{"season_number": 0, "episode_count": 3},
				{"season_number": 1, "episode_count": 3},
				{"season_number": 2, "episode_count": 2},
			},
		})
	})

	r.GET("/tv/:id/season/:season", func(c *gin.Context) {
		season := 1
		episodes := []gin.H{
			{"name": "Winter Is Coming", "season_number": 1, "episode_number": 1},
			{"name": "The Kingsroad", "season_number": 1, "episode_number": 2},
			{"name": "Lord Snow", "season_number": 1, "episode_number": 3},
		}
		if c.Param("season") == "2" {
			season = 2
			episodes = []gin.H{
				{"name": "The North Remembers", "season_number": 2, "episode_number": 1},
				{"name": "The Night Lands", "season_number": 2, "episode_number": 2},
			}
		}
		c.JSON(http.StatusOK, gin.H{"season_number": season, "episodes": episodes})
	})

	return r
}
