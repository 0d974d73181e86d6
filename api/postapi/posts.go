// Package postapi implements CRUD over blog posts. Every route is behind
// the auth gate; the acting user comes from the identity the gate attached
// to the request.
package postapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Rahulstark2/blogging-platform-backend/jwtauth"
	"github.com/Rahulstark2/blogging-platform-backend/log"
	"github.com/Rahulstark2/blogging-platform-backend/models"
	"github.com/gin-gonic/gin"
)

func Create(c *gin.Context) {
	var req PostRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := jwtauth.MustCurrentUser(c)
	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		AuthorID: claims.UserID,
	}
	if err := models.CreatePost(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	created, err := models.GetPost(post.ID)
	if err != nil {
		log.Errorf("failed loading created post id=%d, err=%v", post.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, toPostResponse(created))
}

func List(c *gin.Context) {
	posts, err := models.ListPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, out)
}

func Get(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := models.GetPost(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

func Update(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := models.GetPost(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	claims := jwtauth.MustCurrentUser(c)
	if post.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own posts"})
		return
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Tags = req.Tags
	if err := models.UpdatePost(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	updated, err := models.GetPost(id)
	if err != nil {
		log.Errorf("failed loading updated post id=%d, err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(updated))
}

func Delete(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := models.GetPost(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	claims := jwtauth.MustCurrentUser(c)
	if post.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		return
	}

	if err := models.DeletePost(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return 0, false
	}
	return uint(id), true
}
