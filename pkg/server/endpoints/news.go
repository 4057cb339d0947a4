package endpoints

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/pressroom/pressroom/pkg/audit"
	"github.com/pressroom/pressroom/pkg/identity"
	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server"
	"github.com/pressroom/pressroom/pkg/server/store"
)

// RegisterNewsEndpoints registers the article routes. Reads are public;
// publishing requires the reporter role and deletion additionally requires
// ownership.
func RegisterNewsEndpoints(s *server.Server) {
	api := s.Router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/news", handleListNews(s.Articles, s.Accounts)).Methods("GET")
	api.HandleFunc("/news/reporter/{id:[0-9]+}", handleNewsByReporter(s.Articles, s.Accounts)).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}", handleGetArticle(s.Articles, s.Accounts)).Methods("GET")

	api.Handle("/news",
		s.Guard.Authenticate(
			s.Guard.RequireRole(model.RoleReporter, "Only reporters can post news")(
				handlePostNews(s.Articles, s.Audit),
			),
		),
	).Methods("POST")

	deleteMsg := "You can only delete your own articles."
	api.Handle("/news/{id:[0-9]+}",
		s.Guard.Authenticate(
			s.Guard.RequireRole(model.RoleReporter, deleteMsg)(
				s.Guard.RequireOwner(articleOwner(s.Articles), deleteMsg)(
					handleDeleteArticle(s.Articles, s.Audit),
				),
			),
		),
	).Methods("DELETE")
}

// articleOwner resolves the owning account of the article addressed by the
// request path, for the ownership gate.
func articleOwner(articles store.ArticlesStore) func(r *http.Request) (int64, error) {
	return func(r *http.Request) (int64, error) {
		id, err := pathID(r)
		if err != nil {
			return 0, store.ErrArticleNotFound
		}
		return articles.OwnerOf(id)
	}
}

// authorName resolves the owner's display name. A dangling owner id yields
// nil, matching the persisted-articles retention behavior.
func authorName(accounts store.AccountsStore, ownerID int64) interface{} {
	account, err := accounts.ByID(ownerID)
	if err != nil {
		return nil
	}
	return account.Name
}

func articleSummary(accounts store.AccountsStore, a *model.Article) map[string]interface{} {
	return map[string]interface{}{
		"id":          a.ID,
		"title":       a.Title,
		"content":     a.Content,
		"reporter_id": a.OwnerID,
		"author":      authorName(accounts, a.OwnerID),
		"created_at":  isoTime(a.CreatedAt),
		"cover_image": a.CoverImage,
		"category":    a.Category,
	}
}

func handleListNews(articles store.ArticlesStore, accounts store.AccountsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := articles.List()
		if err != nil {
			internalError(w)
			return
		}

		payload := make([]map[string]interface{}, 0, len(list))
		for i := range list {
			payload = append(payload, articleSummary(accounts, &list[i]))
		}
		respondWithJSON(w, http.StatusOK, payload)
	}
}

func handleNewsByReporter(articles store.ArticlesStore, accounts store.AccountsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reporterID, err := pathID(r)
		if err != nil {
			respondWithJSON(w, http.StatusOK, []interface{}{})
			return
		}

		list, err := articles.ListByOwner(reporterID)
		if err != nil {
			internalError(w)
			return
		}

		payload := make([]map[string]interface{}, 0, len(list))
		for i := range list {
			payload = append(payload, articleSummary(accounts, &list[i]))
		}
		respondWithJSON(w, http.StatusOK, payload)
	}
}

func handleGetArticle(articles store.ArticlesStore, accounts store.AccountsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondWithMsg(w, http.StatusNotFound, "Article not found")
			return
		}

		article, err := articles.ByID(id)
		if err != nil {
			if errors.Is(err, store.ErrArticleNotFound) {
				respondWithMsg(w, http.StatusNotFound, "Article not found")
				return
			}
			internalError(w)
			return
		}

		content := article.Content
		if r.URL.Query().Get("format") == "html" {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(article.Content), &buf); err != nil {
				internalError(w)
				return
			}
			content = buf.String()
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"id":          article.ID,
			"title":       article.Title,
			"content":     content,
			"author":      authorName(accounts, article.OwnerID),
			"created_at":  isoTime(article.CreatedAt),
			"cover_image": article.CoverImage,
			"category":    article.Category,
		})
	}
}

type postNewsRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Category   string `json:"category"`
}

func handlePostNews(articles store.ArticlesStore, auditLog *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req postNewsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Content == "" {
			respondWithMsg(w, http.StatusBadRequest, "Missing title or content")
			return
		}

		article := &model.Article{
			Title:      req.Title,
			Content:    req.Content,
			OwnerID:    id.AccountID,
			CoverImage: req.CoverImage,
			Category:   req.Category,
		}
		if err := articles.Create(article); err != nil {
			auditLog.Log(audit.PublishEvent{
				ReporterID:   id.AccountID,
				Title:        req.Title,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: err.Error(),
			})
			internalError(w)
			return
		}

		auditLog.Log(audit.PublishEvent{
			ReporterID: id.AccountID,
			ArticleID:  article.ID,
			Title:      article.Title,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		respondWithMsg(w, http.StatusOK, "News posted")
	}
}

func handleDeleteArticle(articles store.ArticlesStore, auditLog *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		articleID, err := pathID(r)
		if err != nil {
			respondWithMsg(w, http.StatusNotFound, "Article not found")
			return
		}

		if err := articles.Delete(articleID); err != nil {
			if errors.Is(err, store.ErrArticleNotFound) {
				respondWithMsg(w, http.StatusNotFound, "Article not found")
				return
			}
			internalError(w)
			return
		}

		auditLog.Log(audit.DeleteEvent{
			AccountID: id.AccountID,
			ArticleID: articleID,
			ClientIP:  clientIP(r),
			Success:   true,
		})
		respondWithMsg(w, http.StatusOK, "Article deleted.")
	}
}
