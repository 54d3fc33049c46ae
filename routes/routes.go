package routes

import (
	"net/http"
	"strings"

	"bookstore/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, h http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

func postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"Not found"}`))
}

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	cartHandler *handlers.CartHandler,
	imageHandler *handlers.ImageHandler,
) {
	// Auth routes
	handle("/api/auth/register", authHandler.Register)
	handle("/api/auth/login", authHandler.Login)
	handle("/api/auth/verify-token", authHandler.VerifyToken)
	handle("/api/auth/forgot-password", authHandler.ForgotPassword)
	handle("/api/auth/reset-password", authHandler.ResetPassword)

	handle("/api/auth/profile", authHandler.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		authHandler.Profile(w, r)
	}))

	// Reset token verification: GET /api/auth/reset-password/{token}
	handle("/api/auth/reset-password/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		token := strings.TrimPrefix(r.URL.Path, "/api/auth/reset-password/")
		if token == "" {
			notFound(w)
			return
		}
		authHandler.VerifyResetToken(w, r, token)
	})

	// Catalog routes
	handle("/api/categories", catalogHandler.GetCategories)
	handle("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/categories/"), "/")
		switch {
		case len(pathParts) == 1 && pathParts[0] != "":
			catalogHandler.GetCategory(w, r, pathParts[0])
		case len(pathParts) == 2 && pathParts[1] == "products":
			catalogHandler.GetCategoryProducts(w, r, pathParts[0])
		default:
			notFound(w)
		}
	})

	handle("/api/products/featured", catalogHandler.GetFeaturedProducts)
	handle("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/products/")
		if id == "" || strings.Contains(id, "/") {
			notFound(w)
			return
		}
		switch r.Method {
		case http.MethodGet:
			catalogHandler.GetProduct(w, r, id)
		case http.MethodPut:
			authHandler.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				catalogHandler.UpdateProduct(w, r, id)
			})(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Cart routes
	handle("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		cartHandler.GetCart(w, r)
	})
	handle("/api/cart/add", postOnly(cartHandler.AddToCart))
	handle("/api/cart/update", postOnly(cartHandler.UpdateCart))
	handle("/api/cart/checkout", postOnly(cartHandler.Checkout))
	handle("/api/cart/remove/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		itemID := strings.TrimPrefix(r.URL.Path, "/api/cart/remove/")
		if itemID == "" {
			notFound(w)
			return
		}
		cartHandler.RemoveFromCart(w, r, itemID)
	})

	// Book cover images
	handle("/api/images/books/", func(w http.ResponseWriter, r *http.Request) {
		filename := strings.TrimPrefix(r.URL.Path, "/api/images/books/")
		imageHandler.ServeBookImage(w, r, filename)
	})

	// Anything else is an unknown route; the SPA handles its own paths.
	handle("/", func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	})
}
