package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/sqlinline"
)

type blogCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Content     string `json:"content"`
}

type reviewRequest struct {
	Author string   `json:"author"`
	Rating *float64 `json:"rating"`
}

// longDateFormat is the human-readable form blog dates render as, e.g.
// "January 2, 2006".
const longDateFormat = "January 2, 2006"

func blogPayload(b domain.Blog) map[string]any {
	average, count := domain.AggregateReviews(b.Reviews)
	reviews := b.Reviews
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return map[string]any{
		"id":             b.ID,
		"title":          b.Title,
		"description":    b.Description,
		"content":        b.Content,
		"date":           b.Date.Format(longDateFormat),
		"category":       b.Category,
		"image_url":      b.ImageURL,
		"reviews":        reviews,
		"average_rating": average,
		"review_count":   count,
	}
}

func parseReviews(raw []byte) ([]domain.Review, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var reviews []domain.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (a *App) BlogsList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListBlogs)
	if err != nil {
		a.Logger.Error().Err(err).Msg("blogs: list failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load blogs")
		return
	}
	defer rows.Close()

	blogs := []map[string]any{}
	for rows.Next() {
		var b domain.Blog
		var reviewsRaw []byte
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Content, &b.Date, &b.Category, &b.ImageURL, &reviewsRaw); err != nil {
			a.Logger.Error().Err(err).Msg("blogs: scan failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load blogs")
			return
		}
		if b.Reviews, err = parseReviews(reviewsRaw); err != nil {
			a.Logger.Error().Err(err).Str("blog_id", b.ID).Msg("blogs: corrupt reviews column")
			b.Reviews = nil
		}
		blogs = append(blogs, blogPayload(b))
	}
	if err := rows.Err(); err != nil {
		a.Logger.Error().Err(err).Msg("blogs: rows failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load blogs")
		return
	}

	a.json(w, http.StatusOK, blogs)
}

func (a *App) BlogGet(w http.ResponseWriter, r *http.Request) {
	blogID := chi.URLParam(r, "id")

	var b domain.Blog
	var reviewsRaw []byte
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectBlogByID, blogID).
		Scan(&b.ID, &b.Title, &b.Description, &b.Content, &b.Date, &b.Category, &b.ImageURL, &reviewsRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "blog not found")
			return
		}
		a.Logger.Error().Err(err).Msg("blogs: fetch failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load blog")
		return
	}

	if b.Reviews, err = parseReviews(reviewsRaw); err != nil {
		a.Logger.Error().Err(err).Str("blog_id", b.ID).Msg("blogs: corrupt reviews column")
		b.Reviews = nil
	}

	a.json(w, http.StatusOK, blogPayload(b))
}

func (a *App) BlogCreate(w http.ResponseWriter, r *http.Request) {
	var req blogCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title is required")
		return
	}

	b := domain.Blog{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertBlog,
		b.Title, b.Description, b.Content, time.Now(), b.Category, b.ImageURL).
		Scan(&b.ID, &b.Date)
	if err != nil {
		a.Logger.Error().Err(err).Msg("blogs: insert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create blog")
		return
	}

	a.json(w, http.StatusCreated, blogPayload(b))
}

// BlogReviewCreate appends one review to the embedded array. The append happens
// server-side in a single UPDATE, so concurrent submissions cannot lose entries.
func (a *App) BlogReviewCreate(w http.ResponseWriter, r *http.Request) {
	blogID := chi.URLParam(r, "id")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Rating == nil || !domain.ValidRating(*req.Rating) {
		a.error(w, http.StatusBadRequest, "bad_request", "rating must be a number between 1 and 5")
		return
	}

	author := req.Author
	if author == "" {
		author = "Anonymous"
	}
	now := time.Now()
	review := domain.Review{
		ID:     now.UnixMilli(),
		Author: author,
		Rating: *req.Rating,
		Date:   now.Format("2006-01-02"),
	}
	entry, err := json.Marshal([]domain.Review{review})
	if err != nil {
		a.Logger.Error().Err(err).Msg("reviews: marshal failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to add review")
		return
	}

	var reviewsRaw []byte
	err = a.SQL.QueryRow(r.Context(), sqlinline.QAppendBlogReview, blogID, entry).Scan(&reviewsRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "blog not found")
			return
		}
		a.Logger.Error().Err(err).Msg("reviews: append failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to add review")
		return
	}

	reviews, err := parseReviews(reviewsRaw)
	if err != nil {
		a.Logger.Error().Err(err).Str("blog_id", blogID).Msg("reviews: corrupt reviews column")
		a.error(w, http.StatusInternalServerError, "internal", "failed to add review")
		return
	}

	average, count := domain.AggregateReviews(reviews)
	a.json(w, http.StatusCreated, map[string]any{
		"reviews":        reviews,
		"average_rating": average,
		"review_count":   count,
	})
}
