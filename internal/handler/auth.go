package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// PinLogin godoc
// @Summary      Login de empleado por PIN
// @Description  Valida el PIN contra verify_employee_pin y emite un JWT con empleado, local y rol.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.PinLoginRequest true "Local y PIN"
// @Success      200 {object} dto.PinLoginResponse
// @Failure      401 {object} apierror.APIError
// @Router       /v1/auth/pin [post]
func (h *AuthHandler) PinLogin(c *gin.Context) {
	var req dto.PinLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.LoginWithPin(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("pin invalido"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
