package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

const (
	// TimeFormat is the time format of API responses.
	TimeFormat = time.RFC3339

	// formOverheadBytes is the multipart allowance on top of the image limit.
	formOverheadBytes = 1 << 20
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService  service.PostServiceInterface
	maxBodyBytes int64
}

// NewPostHandler creates a new PostHandler. maxImageBytes bounds the
// featured image; the request body may be slightly larger to fit the form.
func NewPostHandler(postService service.PostServiceInterface, maxImageBytes int64) *PostHandler {
	return &PostHandler{
		postService:  postService,
		maxBodyBytes: maxImageBytes + formOverheadBytes,
	}
}

// PostResponse represents a post in the API response.
type PostResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Content       string  `json:"content"`
	Excerpt       string  `json:"excerpt"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Published     bool    `json:"published"`
	PublishedAt   *string `json:"published_at,omitempty"`
	AuthorID      string  `json:"author_id"`
	AuthorName    string  `json:"author_name,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// PostListResponse represents a page of posts in the API response.
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// toPostResponse converts a domain.Post to a PostResponse.
func (h *PostHandler) toPostResponse(post *domain.Post) PostResponse {
	response := PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		Excerpt:       domain.DisplayExcerpt(post),
		FeaturedImage: post.FeaturedImage,
		Published:     post.Published,
		AuthorID:      post.AuthorID,
		AuthorName:    post.AuthorName,
		CreatedAt:     post.CreatedAt.Format(TimeFormat),
		UpdatedAt:     post.UpdatedAt.Format(TimeFormat),
	}
	if post.FeaturedImage != nil {
		url := h.postService.ImageURL(*post.FeaturedImage)
		response.ImageURL = &url
	}
	if post.PublishedAt != nil {
		publishedAt := post.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	return response
}

func (h *PostHandler) toPostListResponse(list *domain.PostList) PostListResponse {
	posts := make([]PostResponse, 0, len(list.Posts))
	for i := range list.Posts {
		posts = append(posts, h.toPostResponse(&list.Posts[i]))
	}
	return PostListResponse{Posts: posts, Total: list.Total, Page: list.Page, Size: list.Size}
}

// ListPosts handles GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	list, err := h.postService.ListPublished(c.Request.Context(), pageParam(c))
	if err != nil {
		h.writeError(c, "list posts", err)
		return
	}
	c.JSON(http.StatusOK, h.toPostListResponse(list))
}

// ListMyPosts handles GET /api/v1/me/posts
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	list, err := h.postService.ListMine(c.Request.Context(), middleware.GetActorID(c), pageParam(c))
	if err != nil {
		h.writeError(c, "list own posts", err)
		return
	}
	c.JSON(http.StatusOK, h.toPostListResponse(list))
}

// GetPost handles GET /api/v1/posts/:slug
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), middleware.GetActorID(c), c.Param("slug"))
	if err != nil {
		h.writeError(c, "get post", err)
		return
	}
	c.JSON(http.StatusOK, h.toPostResponse(post))
}

// CreatePost handles POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	fields, image, closeImage, ok := h.bindPostForm(c)
	if !ok {
		return
	}
	defer closeImage()

	post, err := h.postService.CreatePost(c.Request.Context(), middleware.GetActorID(c), fields, image)
	if err != nil {
		h.writeError(c, "create post", err)
		return
	}
	c.JSON(http.StatusCreated, h.toPostResponse(post))
}

// UpdatePost handles PUT /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	fields, image, closeImage, ok := h.bindPostForm(c)
	if !ok {
		return
	}
	defer closeImage()

	post, err := h.postService.UpdatePost(c.Request.Context(), middleware.GetActorID(c), id, fields, image)
	if err != nil {
		h.writeError(c, "update post", err)
		return
	}
	c.JSON(http.StatusOK, h.toPostResponse(post))
}

// DeletePost handles DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.postService.DeletePost(c.Request.Context(), middleware.GetActorID(c), id); err != nil {
		h.writeError(c, "delete post", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindPostForm reads the multipart post form. On failure it writes the
// response and returns ok=false.
func (h *PostHandler) bindPostForm(c *gin.Context) (fields domain.PostFields, image *domain.ImageUpload, closeImage func(), ok bool) {
	closeImage = func() {}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	if err := c.Request.ParseMultipartForm(formOverheadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return fields, nil, closeImage, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return fields, nil, closeImage, false
	}

	fields.Title = c.PostForm("title")
	fields.Content = c.PostForm("content")
	if excerpt, present := c.GetPostForm("excerpt"); present {
		fields.Excerpt = &excerpt
	}

	invalid := map[string]string{}
	if raw := strings.TrimSpace(c.PostForm("published")); raw != "" {
		published, err := parseFormBool(raw)
		if err != nil {
			invalid["published"] = "published_invalid"
		}
		fields.Published = published
	}
	if raw := strings.TrimSpace(c.PostForm("publish_at")); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			invalid["publish_at"] = "publish_at_invalid"
		} else {
			at = at.UTC()
			fields.PublishAt = &at
		}
	}
	if len(invalid) > 0 {
		h.writeError(c, "bind post form", &domain.ValidationError{Fields: invalid})
		return fields, nil, closeImage, false
	}

	file, header, err := c.Request.FormFile("featured_image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return fields, nil, closeImage, true
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured_image"})
		return fields, nil, closeImage, false
	}

	image = toImageUpload(file, header)
	return fields, image, func() { file.Close() }, true
}

func toImageUpload(file multipart.File, header *multipart.FileHeader) *domain.ImageUpload {
	return &domain.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}
}

// writeError maps domain errors to HTTP statuses.
func (h *PostHandler) writeError(c *gin.Context, op string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, domain.ErrSlugAllocationExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": "could not allocate a unique slug, try again"})
	case errors.Is(err, domain.ErrImageUploadFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "featured image upload failed"})
	case errors.Is(err, domain.ErrStorageUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		logger.ErrorContext(c.Request.Context(), "Post request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		logger.ErrorContext(c.Request.Context(), "Unexpected post request error",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// postIDParam returns the canonical :id, or writes 400 when it is not a UUID.
func postIDParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id.String(), true
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseFormBool accepts checkbox values in addition to strconv.ParseBool.
func parseFormBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(raw)
}
