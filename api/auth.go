package api

import (
	"crypto/subtle"
	"strings"

	"financas/config"
	"financas/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler autenticação do usuário único do sistema
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler cria o handler de autenticação
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest requisição de login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse resposta de login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login autentica o usuário e emite um token de sessão
// @Summary Login
// @Description Autentica com as credenciais configuradas e devolve um token JWT
// @Tags autenticação
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credenciais"
// @Success 200 {object} Response{data=LoginResponse} "login efetuado"
// @Failure 400 {object} Response "parâmetros inválidos"
// @Failure 401 {object} Response "usuário ou senha incorretos"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	if req.Username != h.cfg.Auth.Username || !passwordMatches(h.cfg.Auth.Password, req.Password) {
		Unauthorized(c, "usuário ou senha incorretos")
		return
	}

	token, err := middleware.GenerateToken(req.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "falha ao gerar o token")
		return
	}

	Success(c, LoginResponse{
		Token:    token,
		Username: req.Username,
	})
}

// passwordMatches compara a senha informada com a configurada, que pode
// ser um hash bcrypt ou texto puro.
func passwordMatches(configured, provided string) bool {
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) == 1
}
