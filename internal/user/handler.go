package user

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
	"golang.org/x/oauth2"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	userinfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type Handler struct {
	service     UserService
	oauthConfig *oauth2.Config
}

func NewHandler(service UserService, oauthConfig *oauth2.Config) *Handler {
	return &Handler{service: service, oauthConfig: oauthConfig}
}

type googleUserinfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin exchanges an OAuth authorization code, upserts the user record and
// issues access/refresh JWT cookies.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Code == "" {
		config.Error(w, http.StatusBadRequest, "code is required")
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), payload.Code)
	if err != nil {
		log.WithError(err).Warn("OAuth code exchange failed")
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		log.WithError(err).Error("Failed to fetch userinfo")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer resp.Body.Close()

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.ID == "" {
		log.WithError(err).Error("Invalid userinfo response")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	u, err := h.service.UpsertFromLogin(r.Context(), info.ID, info.Email, info.Name, token.RefreshToken)
	if err != nil {
		log.WithError(err).Error("Failed to upsert user on login")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.issueCookies(w, u); err != nil {
		log.WithError(err).Error("Failed to issue session tokens")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

// RefreshToken re-issues the access cookie from a valid refresh cookie.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_jwt")
	if err != nil || cookie.Value == "" {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.service.FindBySubject(r.Context(), claims.SubjectID)
	if err != nil {
		config.Error(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.issueCookies(w, u); err != nil {
		log.WithError(err).Error("Failed to re-issue session tokens")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "token refreshed"})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.service.FindBySubject(r.Context(), claims.SubjectID)
	if err != nil {
		if err == ErrUserNotFound {
			config.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.WithError(err).Error("Failed to load current user")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

func (h *Handler) issueCookies(w http.ResponseWriter, u *User) error {
	access, err := auth.GenerateJWT(u.SubjectID, u.Email, u.Name, accessTokenTTL)
	if err != nil {
		return err
	}
	refresh, err := auth.GenerateJWT(u.SubjectID, u.Email, u.Name, refreshTokenTTL)
	if err != nil {
		return err
	}

	secure := os.Getenv("COOKIE_INSECURE") != "true"
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    access,
		Path:     "/",
		MaxAge:   int(accessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_jwt",
		Value:    refresh,
		Path:     "/auth",
		MaxAge:   int(refreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
	return nil
}
