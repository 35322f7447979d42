package content_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetBlogPosts godoc
// @Summary List blog posts
// @Description Newest first. Filter by category, or by featured=true.
// @Tags content
// @Produce json
// @Param category query string false "Blog category"
// @Param featured query bool false "Only featured posts"
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPost}
// @Router /content/blog [get]
func (ctl *Controller) GetBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	featured, _ := strconv.ParseBool(c.Query("featured"))

	switch category := c.Query("category"); {
	case featured:
		posts = ctl.content.Featured()
	case category != "" && category != "all":
		posts = ctl.content.ByCategory(category)
	default:
		posts = ctl.content.Posts()
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Posts fetched successfully", posts))
}

// GetBlogCategories godoc
// @Summary List blog categories
// @Tags content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /content/blog/categories [get]
func (ctl *Controller) GetBlogCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", ctl.content.Categories()))
}

// GetBlogPostByID godoc
// @Summary Get a blog post
// @Tags content
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 404 {object} models.ApiResponse
// @Router /content/blog/{id} [get]
func (ctl *Controller) GetBlogPostByID(c *gin.Context) {
	post, ok := ctl.content.PostByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}
